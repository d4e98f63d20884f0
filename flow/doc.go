// Package flow computes maximum flows on unit-capacity networks given as
// directed *core.Graph values, and uses them to size maximum matchings of
// bipartite graphs.
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Time:   O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V + E) for the residual map, levels and recursion state.
//
//   - Bipartition / BipartiteMatchingSize
//
//   - Method: 2-colouring by BFS depth parity, then Dinic on
//     source → left → right → sink.
//
//   - Used as an independent oracle for the blossom engine on bipartite
//     graphs too large for exhaustive search.
//
// Every arc of a network has capacity 1. Cancellation is checked once per
// phase through FlowOptions.Ctx.
package flow
