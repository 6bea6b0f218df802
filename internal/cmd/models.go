// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsas/model"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the available models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPARAMETERS\tDESCRIPTION")
		for _, name := range model.Names() {
			p, err := model.Lookup(name)
			if err != nil {
				return err
			}
			info := p.Info()
			fmt.Fprintf(w, "%s\t%d\t%s\n", name, info.Count(), info.Description())
		}

		return w.Flush()
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <model>",
	Short: "Show a model's parameters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := model.Lookup(args[0])
		if err != nil {
			return err
		}
		info := p.Info()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (API %d): %s\n\n", info.Name(), info.Version(), info.Description())

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tUNIT\tDEFAULT\tMIN\tMAX\tFLAGS\tDISPERSABLE")
		for i, pi := range info.Parameters() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%g\t%s\t%s\t%s\t%t\n",
				i, pi.Name, pi.Unit, pi.Default, bound(pi.Min), bound(pi.Max), pi.Flags, p.Dispersable(pi.Name))
		}

		return w.Flush()
	},
}

// bound renders infinite bounds as "-" so tables stay narrow.
func bound(v float64) string {
	if math.IsInf(v, 0) {
		return "-"
	}

	return fmt.Sprintf("%g", v)
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(infoCmd)
}
