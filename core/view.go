// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating copies of a graph.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

// Clone returns a deep copy of g with the same directedness.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	return g.InducedSubgraph(nil)
}

// InducedSubgraph returns a new graph holding only the nodes in keep and
// the edges with both endpoints kept. A nil keep keeps every node.
// Complexity: O(V + E)
func (g *Graph) InducedSubgraph(keep map[NodeID]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(WithDirected(g.directed))
	for u, nbrs := range g.adjacency {
		if keep != nil && !keep[u] {
			continue
		}
		cp := out.ensureNode(u)
		for v := range nbrs {
			if keep != nil && !keep[v] {
				continue
			}
			cp[v] = struct{}{}
			if g.directed || u < v {
				out.edgeCount++
			}
		}
	}

	return out
}
