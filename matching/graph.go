// SPDX-License-Identifier: MIT

package matching

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/multicut/core"
)

// Graph is the read-only view of an undirected simple graph the engine
// needs. *core.Graph satisfies it.
type Graph interface {
	Nodes() []core.NodeID
	NeighborIDs(id core.NodeID) ([]core.NodeID, error)
}

// isNil reports whether g is nil, including a typed nil *core.Graph.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	cg, ok := g.(*core.Graph)

	return ok && cg == nil
}

// snapshot copies g into a private undirected core.Graph, validating it
// along the way. The engine only ever reads the copy.
func snapshot(g Graph) (*core.Graph, error) {
	if isNil(g) {
		return nil, ErrNilGraph
	}
	if cg, ok := g.(*core.Graph); ok && cg.Directed() {
		return nil, errors.Wrap(ErrInvalidGraph, "directed graph")
	}

	nodes := g.Nodes()
	out := core.NewGraph()
	out.AddNodes(nodes...)
	for _, u := range nodes {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidGraph, "neighbours of %d: %v", u, err)
		}
		for _, v := range nbrs {
			if v == u {
				return nil, errors.Wrapf(ErrInvalidGraph, "self-loop at %d", u)
			}
			if !out.HasNode(v) {
				return nil, errors.Wrapf(ErrInvalidGraph, "neighbour %d of %d is not a node", v, u)
			}
			if out.HasEdge(u, v) {
				continue
			}
			if err = out.AddEdge(u, v); err != nil {
				return nil, errors.Wrapf(ErrInvalidGraph, "edge (%d,%d): %v", u, v, err)
			}
		}
	}

	return out, nil
}

// maxNodeID returns the largest node ID of g; ok is false for an empty graph.
func maxNodeID(g *core.Graph) (id core.NodeID, ok bool) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return 0, false
	}

	return nodes[len(nodes)-1], true
}
