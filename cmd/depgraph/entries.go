package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/depgraph/manifest"
)

// newEntriesCmd prints the graph's entry nodes.
func newEntriesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "entries <manifest>",
		Short: "Print the entry nodes (nothing depends on them)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := manifest.LoadGraph(args[0])
			if err != nil {
				return err
			}

			return renderIDs(cmd.OutOrStdout(), flags.format, g.EntryNodes())
		},
	}
}
