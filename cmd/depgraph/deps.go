package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/depgraph"
)

// newDepsCmd prints what a node depends on.
func newDepsCmd(flags *rootFlags) *cobra.Command {
	var direct, leavesOnly, circular bool

	cmd := &cobra.Command{
		Use:   "deps <manifest> <node>",
		Short: "Print the dependencies of a node",
		Long: `Print everything the node depends on, dependency-first, never
including the node itself. With --direct only the immediate dependency
set is printed, in declaration order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0], circular)
			if err != nil {
				return err
			}

			var ids []string
			if direct {
				ids, err = g.DirectDependenciesOf(args[1])
			} else {
				var opts []depgraph.TraverseOption
				if leavesOnly {
					opts = append(opts, depgraph.WithLeavesOnly())
				}
				ids, err = g.DependenciesOf(args[1], opts...)
			}
			if err != nil {
				return err
			}

			return renderIDs(cmd.OutOrStdout(), flags.format, ids)
		},
	}
	cmd.Flags().BoolVar(&direct, "direct", false, "only the immediate dependencies")
	cmd.Flags().BoolVar(&leavesOnly, "leaves", false, "only leaf dependencies (ignored with --direct)")
	cmd.Flags().BoolVar(&circular, "circular", false, "tolerate dependency cycles instead of failing")

	return cmd
}
