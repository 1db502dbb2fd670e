package main

import (
	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/depgraph"
)

// newOrderCmd prints the overall processing order of a manifest's graph.
func newOrderCmd(flags *rootFlags) *cobra.Command {
	var leavesOnly, circular bool

	cmd := &cobra.Command{
		Use:   "order <manifest>",
		Short: "Print the overall processing order",
		Long: `Print a topological order across the whole graph, disconnected
subgraphs included: every node appears after all of its dependencies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0], circular)
			if err != nil {
				return err
			}
			log.Debug("manifest loaded", "path", args[0], "nodes", g.Size())

			var opts []depgraph.TraverseOption
			if leavesOnly {
				opts = append(opts, depgraph.WithLeavesOnly())
			}
			order, err := g.OverallOrder(opts...)
			if err != nil {
				return err
			}

			return renderIDs(cmd.OutOrStdout(), flags.format, order)
		},
	}
	cmd.Flags().BoolVar(&leavesOnly, "leaves", false, "print only leaf nodes (nodes that depend on nothing)")
	cmd.Flags().BoolVar(&circular, "circular", false, "tolerate dependency cycles instead of failing")

	return cmd
}
