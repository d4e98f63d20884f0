// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links and visit order, plus a
// shortest-path query from one source to the nearest member of a target set.
//
// What
//
//   - BFS(g, start, opts...) explores nodes in non-decreasing distance (edge
//     count) from start and returns a Result (Order, Depth, Parent).
//   - ShortestPathToSet(g, source, targets, opts...) stops at the first target
//     dequeued and returns the node sequence source → target.
//   - Directed graphs are followed along arc direction only.
//
// Determinism
//
//	core.Graph.NeighborIDs returns sorted IDs and neighbours are enqueued in
//	that order, so visit order and returned paths are reproducible.
//
// Complexity (V = |V|, E = |E|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx)       cancellation, checked once per dequeue.
//   - WithMaxDepth(d)        stop exploring beyond depth d (>0); 0 means no limit.
//   - WithFilterNeighbor(fn) skip arcs for which fn(curr, nbr) == false.
//   - WithOnVisit(fn)        hook during visit; returning an error aborts.
//
// Errors
//
//   - ErrGraphNil             the graph pointer is nil.
//   - ErrStartVertexNotFound  the start node does not exist.
//   - ErrOptionViolation      invalid option (e.g. negative MaxDepth).
//   - ErrNoPath               ShortestPathToSet reached no target.
//   - Wrapped hook errors from OnVisit.
package bfs
