// This file implements the iterative depth-first traversal engine behind
// the transitive queries and the overall order.

package depgraph

// frame is one unit of traversal work. expanded flips once the node's
// relations have been pushed, so its second visit finalizes the node.
type frame struct {
	node     string
	expanded bool
}

// walker drives depth-first traversal over one half of the edge index.
// A walker serves exactly one logical operation; visited is shared
// across its start nodes, so repeated starts skip finished subgraphs
// instead of re-walking them.
type walker struct {
	edges      map[string][]string // active index half: outgoing or incoming
	leavesOnly bool                // keep only nodes whose active edge set is empty
	circular   bool                // skip back-edges instead of failing
	visited    map[string]struct{} // fully explored identities
	result     []string            // accumulated output, relation-first order
}

// newWalker prepares a traversal over the given index half.
func newWalker(edges map[string][]string, circular bool, cfg traverseConfig) *walker {
	return &walker{
		edges:      edges,
		leavesOnly: cfg.leavesOnly,
		circular:   circular,
		visited:    make(map[string]struct{}, len(edges)),
	}
}

// run walks depth-first from start, appending each finished identity to
// w.result exactly once, after all of its relations. Re-entering a node
// that is on the active descent path aborts with *CycleError unless the
// walker is circular-tolerant.
func (w *walker) run(start string) error {
	// Finished in an earlier start: nothing left to discover.
	if _, done := w.visited[start]; done {
		return nil
	}

	// onPath and path track the active descent for this start only.
	onPath := make(map[string]struct{}, len(w.edges))
	path := make([]string, 0, len(w.edges))
	stack := []frame{{node: start}}

	var top frame
	for len(stack) > 0 {
		top = stack[len(stack)-1]

		// 1. Second visit: relations are done, finalize the node.
		if top.expanded {
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
			delete(onPath, top.node)
			w.visited[top.node] = struct{}{}
			if !w.leavesOnly || len(w.edges[top.node]) == 0 {
				w.result = append(w.result, top.node)
			}

			continue
		}

		// 2. Finished through another path: skip the duplicate frame.
		if _, done := w.visited[top.node]; done {
			stack = stack[:len(stack)-1]

			continue
		}

		// 3. Back-edge onto the active path: a cycle.
		if _, active := onPath[top.node]; active {
			if w.circular {
				stack = stack[:len(stack)-1]

				continue
			}
			cycle := make([]string, len(path)+1)
			copy(cycle, path)
			cycle[len(path)] = top.node

			return &CycleError{Path: cycle}
		}

		// 4. First visit: descend. Relations are pushed in reverse so
		//    they are processed in edge declaration order.
		onPath[top.node] = struct{}{}
		path = append(path, top.node)
		stack[len(stack)-1].expanded = true
		targets := w.edges[top.node]
		for i := len(targets) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: targets[i]})
		}
	}

	return nil
}
