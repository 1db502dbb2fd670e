// This file declares Graph, its functional options, sentinel errors,
// and the New constructor.

package depgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an unregistered node.
	ErrNodeNotFound = errors.New("depgraph: node does not exist")

	// ErrCycleDetected indicates a dependency cycle was discovered while
	// traversing a graph built without WithCircular.
	ErrCycleDetected = errors.New("depgraph: dependency cycle detected")
)

// notFound wraps ErrNodeNotFound with the offending identity.
func notFound(id string) error {
	return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
}

// Graph is a directed dependency graph over string node identities.
//
// Every edge from → to means "from depends on to" and is indexed in both
// directions, so dependency and dependant lookups are equally cheap.
// Nodes carry an arbitrary payload, defaulting to the identity itself.
//
// Graph methods are not safe for concurrent use.
type Graph struct {
	circular bool // tolerate cycles instead of reporting them

	// Storage
	nodes    map[string]any      // identity → payload
	order    []string            // identities in registration order
	outgoing map[string][]string // identity → identities it depends on
	incoming map[string][]string // identity → identities depending on it
}

// Option configures behavior of a Graph at construction.
type Option func(g *Graph)

// WithCircular makes the graph tolerate dependency cycles: traversals
// skip back-edges instead of failing, and every reachable identity still
// appears exactly once in query output.
func WithCircular() Option {
	return func(g *Graph) { g.circular = true }
}

// NodeOption configures a single node as it is registered.
type NodeOption func(*nodeConfig)

// nodeConfig collects per-node registration settings.
type nodeConfig struct {
	data any
}

// WithData attaches a payload to the node being registered. Without it
// the identity string itself is stored as the payload.
func WithData(data any) NodeOption {
	return func(c *nodeConfig) { c.data = data }
}

// TraverseOption configures a single traversal-driving query.
type TraverseOption func(*traverseConfig)

// traverseConfig collects per-call traversal settings.
type traverseConfig struct {
	leavesOnly bool
}

// WithLeavesOnly restricts traversal output to leaf identities, those
// whose edge set under the walked index half is empty.
func WithLeavesOnly() TraverseOption {
	return func(c *traverseConfig) { c.leavesOnly = true }
}

// applyTraverseOptions folds opts over a zero traverseConfig.
func applyTraverseOptions(opts []TraverseOption) traverseConfig {
	var cfg traverseConfig
	var fn TraverseOption
	for _, fn = range opts {
		fn(&cfg)
	}

	return cfg
}

// New creates an empty Graph. By default a discovered cycle is an error;
// pass WithCircular to tolerate cycles instead.
// Complexity: O(1)
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes:    make(map[string]any),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
