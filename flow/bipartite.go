package flow

import (
	"github.com/katalvlaran/multicut/bfs"
	"github.com/katalvlaran/multicut/core"
)

// Bipartition 2-colours the undirected graph g by BFS depth parity and
// returns the set of nodes on the even side.
// Returns ErrNotBipartite if some edge joins two nodes of equal parity.
func Bipartition(g *core.Graph) (map[core.NodeID]bool, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	left := make(map[core.NodeID]bool, g.NodeCount())
	seen := make(map[core.NodeID]bool, g.NodeCount())
	for _, root := range g.Nodes() {
		if seen[root] {
			continue
		}
		res, err := bfs.BFS(g, root)
		if err != nil {
			return nil, err
		}
		for v, d := range res.Depth {
			seen[v] = true
			left[v] = d%2 == 0
		}
	}
	for _, e := range g.Edges() {
		if left[e.From] == left[e.To] {
			return nil, ErrNotBipartite
		}
	}

	return left, nil
}

// BipartiteMatchingSize returns the size of a maximum matching of the
// bipartite graph g by running Dinic on source → left → right → sink.
func BipartiteMatchingSize(g *core.Graph, opts FlowOptions) (int, error) {
	left, err := Bipartition(g)
	if err != nil {
		return 0, err
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return 0, nil
	}
	source := nodes[len(nodes)-1] + 1
	sink := source + 1

	net := core.NewGraph(core.WithDirected(true))
	net.AddNodes(source, sink)
	for _, v := range nodes {
		if left[v] {
			err = net.AddEdge(source, v)
		} else {
			err = net.AddEdge(v, sink)
		}
		if err != nil {
			return 0, err
		}
	}
	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if !left[u] {
			u, v = v, u
		}
		if err = net.AddEdge(u, v); err != nil {
			return 0, err
		}
	}

	return Dinic(net, source, sink, opts)
}
