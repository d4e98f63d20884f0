// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards nodes and adjacency; every exported method takes it.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates a parallel edge was attempted.
	ErrEdgeExists = errors.New("core: edge already exists")
)

// NodeID is the stable numeric identity of a node. Two nodes are equal
// iff their IDs are equal.
type NodeID int

// Edge is an unordered pair of node IDs in an undirected graph, or an
// ordered arc From→To in a directed one. Edges are values: compare them
// with == after Normalize when direction does not matter.
type Edge struct {
	From NodeID
	To   NodeID
}

// NewEdge is shorthand for Edge{From: from, To: to}.
func NewEdge(from, to NodeID) Edge {
	return Edge{From: from, To: to}
}

// Normalize returns the edge with its endpoints ordered small→large.
func (e Edge) Normalize() Edge {
	if e.From > e.To {
		return Edge{From: e.To, To: e.From}
	}

	return e
}

// Reversed returns the edge with swapped endpoints.
func (e Edge) Reversed() Edge {
	return Edge{From: e.To, To: e.From}
}

// Has reports whether v is an endpoint of e.
func (e Edge) Has(v NodeID) bool {
	return e.From == v || e.To == v
}

// Other returns the endpoint of e opposite to v. The second result is false
// if v is not an endpoint.
func (e Edge) Other(v NodeID) (NodeID, bool) {
	switch v {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	}

	return 0, false
}

// String renders the edge as "(from,to)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.From, e.To)
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are arcs (true) or undirected pairs (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a simple graph over NodeIDs.
//
// adjacency[u] holds the out-neighbours of u; undirected edges are stored
// in both directions. edgeCount counts logical edges (an undirected edge
// counts once).
type Graph struct {
	mu sync.RWMutex

	directed bool

	adjacency map[NodeID]map[NodeID]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[NodeID]map[NodeID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges of g are arcs.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
