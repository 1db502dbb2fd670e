package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/depgraph/manifest"
)

// newCheckCmd validates a manifest's graph. A cycle fails the command
// with the full cycle path in the error.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <manifest>",
		Short: "Validate the graph and report cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := manifest.LoadGraph(args[0])
			if err != nil {
				return err
			}
			if _, err = g.OverallOrder(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d nodes, no cycles\n", g.Size())

			return nil
		},
	}
}
