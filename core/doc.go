// SPDX-License-Identifier: MIT

// Package core provides the simple, thread-safe in-memory graph used across
// multicut: nodes with stable numeric identities and edges as value pairs.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected by default; WithDirected(true) turns every edge into an arc
//     (used for auxiliary digraphs built by the matching engine).
//   - Simple: self-loops are rejected (ErrLoopNotAllowed) and a second edge
//     between the same endpoints is rejected (ErrEdgeExists).
//   - Deterministic iteration: Nodes(), Edges() and NeighborIDs() are sorted.
//   - One sync.RWMutex guards nodes and adjacency together.
//
// Nodes never own edges; degree is derived from the adjacency sets.
// Edges are pure data (Edge{From, To}) with structural equality; for
// undirected graphs Edge.Normalize() yields the canonical small→large form.
//
// Core methods:
//
//	AddNode(id) / AddNodes(ids...) / HasNode(id) / RemoveNode(id)
//	AddEdge(from, to) / HasEdge(from, to) / RemoveEdge(from, to)
//	Nodes() / Edges() / NeighborIDs(id) / Degree(id)
//	NodeCount() / EdgeCount() / Directed()
//	Clone() / InducedSubgraph(keep)
//
// Errors:
//
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop rejected.
//	ErrEdgeExists     - parallel edge rejected.
package core
