// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle, edge queries and neighbourhoods.
// Determinism:
//   - Edges() is sorted by (From, To); undirected edges are reported normalized.
//   - NeighborIDs() is sorted ascending.

package core

import "sort"

// AddEdge inserts the edge from–to (an arc from→to in a directed graph),
// creating missing endpoints first.
//
// Errors:
//   - ErrLoopNotAllowed if from == to.
//   - ErrEdgeExists if the edge is already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID) error {
	if from == to {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := g.ensureNode(from)
	in := g.ensureNode(to)
	if _, ok := out[to]; ok {
		return ErrEdgeExists
	}
	out[to] = struct{}{}
	if !g.directed {
		in[from] = struct{}{}
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the edge from–to exists (the arc from→to for directed graphs).
func (g *Graph) HasEdge(from, to NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// RemoveEdge deletes the edge from–to. Returns ErrEdgeNotFound if absent.
func (g *Graph) RemoveEdge(from, to NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[from], to)
	if !g.directed {
		delete(g.adjacency[to], from)
	}
	g.edgeCount--

	return nil
}

// Edges returns every edge of g sorted by (From, To). Undirected edges are
// reported once, normalized small→large.
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if !g.directed && v < u {
				continue
			}
			edges = append(edges, Edge{From: u, To: v})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// NeighborIDs returns the neighbours of id in ascending order; for directed
// graphs these are the heads of arcs leaving id.
//
// Errors:
//   - ErrNodeNotFound if id is not a node of g.
//
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	ids := make([]NodeID, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sortIDs(ids)

	return ids, nil
}
