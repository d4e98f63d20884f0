// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and queries.
// Determinism:
//   - Nodes() returns IDs sorted ascending.

package core

import "sort"

// AddNode inserts id if it is not present yet. Adding an existing node is a no-op.
// Complexity: O(1)
func (g *Graph) AddNode(id NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id)
}

// AddNodes inserts every id in ids.
func (g *Graph) AddNodes(ids ...NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		g.ensureNode(id)
	}
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// RemoveNode deletes id together with every edge incident to it.
//
// Complexity: O(deg(id)) for undirected graphs, O(V) for directed graphs
// (incoming arcs are found by scanning every adjacency set).
func (g *Graph) RemoveNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	out, ok := g.adjacency[id]
	if !ok {
		return ErrNodeNotFound
	}
	if g.directed {
		g.edgeCount -= len(out)
		for u, nbrs := range g.adjacency {
			if _, ok = nbrs[id]; ok && u != id {
				delete(nbrs, id)
				g.edgeCount--
			}
		}
	} else {
		for v := range out {
			delete(g.adjacency[v], id)
			g.edgeCount--
		}
	}
	delete(g.adjacency, id)

	return nil
}

// Nodes returns every node ID in ascending order.
// Complexity: O(V log V)
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]NodeID, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sortIDs(ids)

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of neighbours of id (out-degree for directed graphs).
func (g *Graph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(nbrs), nil
}

// ensureNode must be called with mu held for writing.
func (g *Graph) ensureNode(id NodeID) map[NodeID]struct{} {
	nbrs, ok := g.adjacency[id]
	if !ok {
		nbrs = make(map[NodeID]struct{})
		g.adjacency[id] = nbrs
	}

	return nbrs
}

func sortIDs(ids []NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
