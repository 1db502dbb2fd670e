package depgraph

// Clone returns an independent graph: same circular-tolerance, same
// identities in the same registration order, and copies of both edge
// index halves, so edge mutations on either side stay invisible to the
// other. Payloads are shared by reference, not deep-copied; callers that
// mutate payload contents see the change through both graphs.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		circular: g.circular,
		nodes:    make(map[string]any, len(g.nodes)),
		order:    snapshotIDs(g.order),
		outgoing: make(map[string][]string, len(g.outgoing)),
		incoming: make(map[string][]string, len(g.incoming)),
	}

	for id, data := range g.nodes {
		clone.nodes[id] = data
	}
	for id, targets := range g.outgoing {
		clone.outgoing[id] = snapshotIDs(targets)
	}
	for id, sources := range g.incoming {
		clone.incoming[id] = snapshotIDs(sources)
	}

	return clone
}
