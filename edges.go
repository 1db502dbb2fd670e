package depgraph

// AddDependency records that from depends on to, inserting the edge into
// both index halves as a pair. Re-adding an existing edge changes
// nothing. Edges never register nodes: if either endpoint is missing the
// call fails with ErrNodeNotFound naming that endpoint.
func (g *Graph) AddDependency(from, to string) error {
	// 1. Validate both endpoints.
	if _, ok := g.nodes[from]; !ok {
		return notFound(from)
	}
	if _, ok := g.nodes[to]; !ok {
		return notFound(to)
	}

	// 2. Insert into both halves together so they cannot diverge.
	if !containsID(g.outgoing[from], to) {
		g.outgoing[from] = append(g.outgoing[from], to)
		g.incoming[to] = append(g.incoming[to], from)
	}

	return nil
}

// RemoveDependency deletes the from → to edge from both index halves.
// Missing nodes or a missing edge are a silent no-op.
func (g *Graph) RemoveDependency(from, to string) {
	if _, ok := g.nodes[from]; ok {
		g.outgoing[from] = removeID(g.outgoing[from], to)
	}
	if _, ok := g.nodes[to]; ok {
		g.incoming[to] = removeID(g.incoming[to], from)
	}
}

// DirectDependenciesOf returns the identities id depends on directly, in
// edge declaration order. The slice is a fresh snapshot, never a live
// view. Returns ErrNodeNotFound when id is not registered.
func (g *Graph) DirectDependenciesOf(id string) ([]string, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, notFound(id)
	}

	return snapshotIDs(g.outgoing[id]), nil
}

// DirectDependantsOf returns the identities depending on id directly, in
// edge declaration order. The slice is a fresh snapshot, never a live
// view. Returns ErrNodeNotFound when id is not registered.
func (g *Graph) DirectDependantsOf(id string) ([]string, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, notFound(id)
	}

	return snapshotIDs(g.incoming[id]), nil
}

// DirectDependentsOf is a spelling alias for DirectDependantsOf.
func (g *Graph) DirectDependentsOf(id string) ([]string, error) {
	return g.DirectDependantsOf(id)
}

// containsID reports whether ids holds id.
func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}

// removeID filters every occurrence of id out of ids in place.
func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}

	return out
}

// snapshotIDs returns an independent copy of ids.
func snapshotIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)

	return out
}
