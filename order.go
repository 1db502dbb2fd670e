package depgraph

// DependenciesOf returns every identity id depends on, directly or
// transitively, in dependency-first order and never including id itself.
// WithLeavesOnly keeps only leaf dependencies. Returns ErrNodeNotFound
// when id is not registered, and *CycleError when a cycle is reachable
// and the graph is not circular-tolerant.
func (g *Graph) DependenciesOf(id string, opts ...TraverseOption) ([]string, error) {
	return g.transitive(g.outgoing, id, opts)
}

// DependantsOf returns every identity depending on id, directly or
// transitively, in dependant-first order and never including id itself.
// WithLeavesOnly keeps only identities nothing else depends on. Returns
// ErrNodeNotFound when id is not registered, and *CycleError when a
// cycle is reachable and the graph is not circular-tolerant.
func (g *Graph) DependantsOf(id string, opts ...TraverseOption) ([]string, error) {
	return g.transitive(g.incoming, id, opts)
}

// DependentsOf is a spelling alias for DependantsOf.
func (g *Graph) DependentsOf(id string, opts ...TraverseOption) ([]string, error) {
	return g.DependantsOf(id, opts...)
}

// transitive runs one traversal from id over the chosen index half and
// strips id from its own result.
func (g *Graph) transitive(edges map[string][]string, id string, opts []TraverseOption) ([]string, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, notFound(id)
	}

	w := newWalker(edges, g.circular, applyTraverseOptions(opts))
	if err := w.run(id); err != nil {
		return nil, err
	}

	// The queried identity never reports itself.
	return removeID(w.result, id), nil
}

// EntryNodes returns the identities nothing depends on (empty incoming
// set), in registration order.
func (g *Graph) EntryNodes() []string {
	entries := make([]string, 0, len(g.order))
	var id string
	for _, id = range g.order {
		if len(g.incoming[id]) == 0 {
			entries = append(entries, id)
		}
	}

	return entries
}

// OverallOrder returns a processing order covering the whole graph,
// disconnected subgraphs included: every identity appears exactly once,
// after all of its dependencies. WithLeavesOnly keeps only leaf
// identities, in discovery order. An empty graph yields an empty order.
// Unless the graph is circular-tolerant, any cycle fails with
// *CycleError, including cycles in which every node has an incoming edge.
func (g *Graph) OverallOrder(opts ...TraverseOption) ([]string, error) {
	// 1. An empty graph has a trivial order and nothing to detect.
	if len(g.nodes) == 0 {
		return []string{}, nil
	}

	entries := g.EntryNodes()

	// 2. Cycle sweep: walk every identity discarding output, entry nodes
	//    first so a cycle behind an entry point is reported from that
	//    entry, then the rest in registration order so a cycle with no
	//    entry node at all is still found.
	if !g.circular {
		sweep := newWalker(g.outgoing, false, traverseConfig{})
		for _, id := range entries {
			if err := sweep.run(id); err != nil {
				return nil, err
			}
		}
		for _, id := range g.order {
			if err := sweep.run(id); err != nil {
				return nil, err
			}
		}
	}

	// 3. Ordering pass from the natural starting points, one shared
	//    result with cross-start dedup.
	w := newWalker(g.outgoing, g.circular, applyTraverseOptions(opts))
	for _, id := range entries {
		if err := w.run(id); err != nil {
			return nil, err
		}
	}

	// 4. A circular-tolerant graph may hold subgraphs no entry node
	//    reaches (a detached cycle has no entry); cover them from the
	//    remaining identities in registration order.
	if g.circular {
		for _, id := range g.order {
			if err := w.run(id); err != nil {
				return nil, err
			}
		}
	}

	return w.result, nil
}
