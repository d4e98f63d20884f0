// Package multicut is the maximum-matching workbench used by the
// "Multicut in Trees" experiments: an Edmonds blossom engine over simple
// undirected graphs, the graph primitives it runs on, and the tooling that
// generates instances and measures the engine on them.
//
// Layout:
//
//	core/       - Graph, NodeID, Edge: thread-safe adjacency sets
//	bfs/        - breadth-first search and shortest path to a target set
//	dfs/        - iterative depth-first search and connected components
//	builder/    - deterministic instance generators (G(n,p), G(n,m), trees, shapes)
//	matching/   - Matching, augmenting-path search, blossom contraction/expansion,
//	              FindMaximumMatching and HasMatchingOfAtLeast
//	counter/    - operation counters, optionally exported to Prometheus
//	flow/       - unit-capacity Dinic, used as a bipartite matching oracle
//	experiment/ - YAML-configured batch runner with CSV output
//	cmd/matchbench - CLI over experiment and matching
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, builder.Cycle(5))
//	m, _ := matching.FindMaximumMatching(g)
//	fmt.Println(m.Size()) // 2
//
//	go install github.com/katalvlaran/multicut/cmd/matchbench@latest
package multicut
