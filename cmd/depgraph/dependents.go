package main

import (
	"github.com/spf13/cobra"
)

// newDependentsCmd prints what depends on a node, the invalidation set
// for incremental rebuilds.
func newDependentsCmd(flags *rootFlags) *cobra.Command {
	var direct, circular bool

	cmd := &cobra.Command{
		Use:   "dependents <manifest> <node>",
		Short: "Print the nodes depending on a node",
		Long: `Print everything that depends on the node, directly or transitively,
never including the node itself. With --direct only the immediate
dependants are printed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0], circular)
			if err != nil {
				return err
			}

			var ids []string
			if direct {
				ids, err = g.DirectDependantsOf(args[1])
			} else {
				ids, err = g.DependantsOf(args[1])
			}
			if err != nil {
				return err
			}

			return renderIDs(cmd.OutOrStdout(), flags.format, ids)
		},
	}
	cmd.Flags().BoolVar(&direct, "direct", false, "only the immediate dependants")
	cmd.Flags().BoolVar(&circular, "circular", false, "tolerate dependency cycles instead of failing")

	return cmd
}
