// Package dfs implements iterative depth-first search (single-source and
// forest) on core.Graph, and connected-component discovery built on it.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root, or the full forest via WithFullTraversal.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts.
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count.
//   - Cancellation via context.Context.
//   - ConnectedComponents(g): node sets of the components of an undirected graph.
//
// The traversal keeps an explicit stack of frames instead of recursing, so
// long paths do not grow the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters.
//   - Memory: O(V) for the frame stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
