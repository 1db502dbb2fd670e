package depgraph

// AddNode registers id with empty outgoing and incoming edge sets.
// Without WithData the identity itself becomes the payload. Registering
// an already present identity is a complete no-op: the original payload
// and all existing edges are preserved, even if a different payload is
// supplied.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, opts ...NodeOption) {
	// 1. Existing identity: leave payload and edges untouched.
	if _, ok := g.nodes[id]; ok {
		return
	}

	// 2. Resolve the payload, defaulting to the identity.
	cfg := nodeConfig{data: id}
	var fn NodeOption
	for _, fn = range opts {
		fn(&cfg)
	}

	// 3. Register and allocate both edge-index entries.
	g.nodes[id] = cfg.data
	g.order = append(g.order, id)
	g.outgoing[id] = nil
	g.incoming[id] = nil
}

// RemoveNode deletes id together with its edge-index entries and strips
// id from every other node's edge sets, so no surviving edge references
// it. Absent identities are a silent no-op.
// Complexity: O(degree(id) + nodes) for the registration-order upkeep.
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		return
	}

	// Cascade through the paired index: incoming[id] names exactly the
	// nodes whose outgoing set holds id, and outgoing[id] the reverse.
	for _, source := range g.incoming[id] {
		g.outgoing[source] = removeID(g.outgoing[source], id)
	}
	for _, target := range g.outgoing[id] {
		g.incoming[target] = removeID(g.incoming[target], id)
	}

	delete(g.nodes, id)
	delete(g.outgoing, id)
	delete(g.incoming, id)
	g.order = removeID(g.order, id)
}

// HasNode reports whether id is registered.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Size returns the number of registered nodes.
func (g *Graph) Size() int {
	return len(g.nodes)
}

// GetData returns the payload stored for id, or ErrNodeNotFound naming
// id when it is not registered.
func (g *Graph) GetData(id string) (any, error) {
	data, ok := g.nodes[id]
	if !ok {
		return nil, notFound(id)
	}

	return data, nil
}

// SetData replaces the payload stored for id. Returns ErrNodeNotFound
// naming id when it is not registered.
func (g *Graph) SetData(id string, data any) error {
	if _, ok := g.nodes[id]; !ok {
		return notFound(id)
	}
	g.nodes[id] = data

	return nil
}
