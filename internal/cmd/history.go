// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsas/internal/store"
)

var (
	historyDB     string
	historyPoints int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List runs recorded in a database",
	Long: `List the runs recorded by "sascalc run --db". With --points, print the
points of one run instead.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyDB, "db", "", "DuckDB database written by run --db")
	historyCmd.Flags().Int64Var(&historyPoints, "points", 0, "Print the points of this run id")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyDB == "" {
		return errors.New("--db is required")
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	// store.Open would create a missing file; history only reads
	if _, err := os.Stat(historyDB); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	db, err := store.Open(historyDB)
	if err != nil {
		return err
	}
	defer db.Close()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if historyPoints != 0 {
		pts, err := db.Points(ctx, historyPoints)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "q\tqx\tqy\tI")
		for _, p := range pts {
			fmt.Fprintf(w, "%g\t%g\t%g\t%g\n", p.Q, p.QX, p.QY, p.IQ)
		}

		return w.Flush()
	}

	runs, err := db.Runs(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "ID\tMODEL\tKIND\tPOINTS\tER\tVR\tCREATED\tSOURCE")
	for _, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%g\t%g\t%s\t%s\n",
			r.ID, r.Model, r.Kind, r.NPoints, r.ER, r.VR, r.Created.Format("2006-01-02 15:04:05"), r.Source)
	}

	return w.Flush()
}
