package main

import (
	"fmt"
	"text/tabwriter"

	"idioms/internal/demo"

	"github.com/spf13/cobra"
)

// listCmd prints the available demos
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demos in run order",
	Args:  cobra.NoArgs,
	RunE:  listScenarios,
}

func listScenarios(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, s := range demo.NewRunner(cfg).List() {
		fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Title)
	}
	return tw.Flush()
}
