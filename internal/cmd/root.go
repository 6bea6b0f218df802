// SPDX-License-Identifier: MIT

// Package cmd implements the sascalc command line.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsas/model"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sascalc",
	Short: "Small-angle scattering model calculator",
	Long: `sascalc evaluates small-angle scattering models (sphere, cylinder) for
jobs described in HCL files, prints the resulting curves or detector images,
and optionally records them in a DuckDB database.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = zap.L().Sync()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setupLogger installs a production logger, or a development logger at debug
// level with --verbose, as the global and model loggers.
func setupLogger(*cobra.Command, []string) error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	model.SetLogger(logger)

	return nil
}
