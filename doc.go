// Package depgraph implements a directed dependency graph over string
// node identities: payload-carrying node storage, a dual edge index,
// transitive dependency and dependant queries, topological overall
// ordering, and cycle detection with full-path reporting.
//
// What:
//
//   - Nodes: registered explicitly, each with an arbitrary payload
//     (defaulting to the identity itself); re-registering an identity is
//     a no-op that preserves its payload and edges.
//   - Edges: from → to means "from depends on to"; both endpoints must
//     already exist; the outgoing and incoming index halves are updated
//     as a pair and never diverge.
//   - Queries: DependenciesOf / DependantsOf walk the transitive closure
//     dependency-first with cross-path deduplication; the Direct variants
//     return one-hop snapshots; EntryNodes lists identities nothing
//     depends on.
//   - OverallOrder: a full topological order across disconnected
//     subgraphs, with an optional leaves-only filter.
//   - Cycles: reported as *CycleError carrying the exact walk that closed
//     the cycle, or tolerated silently under WithCircular.
//
// Why:
//   - Resolve processing order for build targets, tasks, and packages
//   - Answer "what must be rebuilt when X changes" via dependant queries
//   - Reject circular dependencies with a path a human can read, or
//     deliberately tolerate them
//
// Traversal is strictly iterative over an explicit frame stack, so deep
// graphs cannot overflow the call stack, and repeated starts within one
// operation share a single visited set, keeping whole-graph queries near
// linear.
//
// Complexity:
//
//   - Mutations:     O(1) amortized; RemoveNode O(degree + nodes)
//   - Queries:       O(V + E) over the reachable subgraph
//   - OverallOrder:  O(V + E)
//
// Errors:
//
//   - ErrNodeNotFound   operation referenced an unregistered identity
//   - ErrCycleDetected  cycle found while the graph is not circular-tolerant
//     (surfaced as *CycleError carrying the offending path)
//
// The zero Graph is not usable; construct with New.
//
// A Graph is not safe for concurrent use. Callers needing shared access
// serialize externally or hand read-only copies around via Clone.
package depgraph
