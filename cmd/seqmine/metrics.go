package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/seqmine/cluster"
	"github.com/viant/seqmine/sequence"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List supported metrics and strategies",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "metrics:")
		for _, m := range sequence.Metrics {
			fmt.Fprintf(out, "  %s\n", m)
		}
		fmt.Fprintln(out, "strategies:")
		for _, name := range cluster.Names {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}
