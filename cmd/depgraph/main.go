// Command depgraph resolves dependency-graph manifests: overall
// processing order, transitive dependency and dependant queries, entry
// nodes, and cycle checking.
//
// Usage:
//
//	depgraph order graph.yaml
//	depgraph deps graph.yaml app --direct
//	depgraph dependents graph.hcl std
//	depgraph entries graph.yaml --format json
//	depgraph check graph.hcl
package main

import (
	"os"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/depgraph"
	"github.com/katalvlaran/depgraph/manifest"
)

// rootFlags carries the global flag values shared by every subcommand.
type rootFlags struct {
	format  string
	verbose bool
}

// newRootCmd assembles the command tree. Every call builds a fresh tree
// so tests can execute commands in isolation.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "depgraph",
		Short: "Resolve dependency graphs from manifests",
		Long: `depgraph loads a dependency-graph manifest (YAML or HCL) and answers
the three questions a scheduler needs: what does a node depend on, what
depends on a node, and in what order must everything be processed so
that every dependency precedes its dependants.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.format, "format", formatText, "output format: text or json")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(
		newOrderCmd(flags),
		newDepsCmd(flags),
		newDependentsCmd(flags),
		newEntriesCmd(flags),
		newCheckCmd(),
	)

	return root
}

// loadGraph resolves a manifest into a graph. With circular set the
// graph tolerates dependency cycles regardless of what the manifest
// declares.
func loadGraph(path string, circular bool) (*depgraph.Graph, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	if circular {
		m.Circular = true
	}

	return m.Build()
}

func main() {
	log.SetOutput(os.Stderr)
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
