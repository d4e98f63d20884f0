// SPDX-License-Identifier: MIT

package matching

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/multicut/bfs"
	"github.com/katalvlaran/multicut/core"
)

// BuildDigraph returns the auxiliary digraph D of g and m: D has the nodes
// of g and an arc u→v whenever u–w is a non-matching edge and w–v is a
// matching edge. The middle node w of an arc u→v is always mate(v).
//
// Complexity: O(V + E).
func BuildDigraph(g *core.Graph, m *Matching, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if m == nil {
		return nil, ErrNilMatching
	}

	return buildDigraph(g, m, resolve(opts))
}

func buildDigraph(g *core.Graph, m *Matching, o Options) (*core.Graph, error) {
	d := core.NewGraph(core.WithDirected(true))
	nodes := g.Nodes()
	d.AddNodes(nodes...)

	var arcs int64
	for _, v := range nodes {
		w, ok := m.Mate(v)
		if !ok {
			continue
		}
		nbrs, err := g.NeighborIDs(w)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidMatching, "mate %d of %d: %v", w, v, err)
		}
		for _, u := range nbrs {
			if u == v {
				continue
			}
			if err = d.AddEdge(u, v); err != nil {
				return nil, defect("digraph arc %d→%d: %v", u, v, err)
			}
			arcs++
		}
	}
	o.Counter.Add(OpArc, arcs)

	return d, nil
}

// FindAlternatingWalk searches g for an M-alternating walk that starts and
// ends at exposed nodes and has odd length. It returns nil when none exists,
// which means m is maximum.
//
// The walk is either an augmenting path or contains a blossom (see
// DetectBlossom). Steps:
//
//  1. U = exposed nodes, A = nodes adjacent to U.
//  2. An edge between two exposed nodes is returned directly.
//  3. For each s in U (ascending), a shortest path s=v0→v1→…→vt in D with
//     vt in A is unfolded into s, mate(v1), v1, …, mate(vt), vt, u where u is
//     the smallest exposed neighbour of vt other than s, or s itself.
func FindAlternatingWalk(g *core.Graph, m *Matching, opts ...Option) (Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if m == nil {
		return nil, ErrNilMatching
	}

	return findAlternatingWalk(g, m, resolve(opts))
}

func findAlternatingWalk(g *core.Graph, m *Matching, o Options) (Path, error) {
	o.Counter.Add(OpSearch, 1)

	exposed := m.exposed(g)
	if len(exposed) < 2 {
		return nil, nil
	}
	isExposed := make(map[core.NodeID]bool, len(exposed))
	for _, u := range exposed {
		isExposed[u] = true
	}

	targets := make(map[core.NodeID]bool)
	for _, s := range exposed {
		nbrs, err := g.NeighborIDs(s)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			if isExposed[v] {
				return Path{s, v}, nil
			}
			targets[v] = true
		}
	}
	if len(targets) == 0 {
		return nil, nil
	}

	d, err := buildDigraph(g, m, o)
	if err != nil {
		return nil, err
	}
	visit := bfs.WithOnVisit(func(core.NodeID, int) error {
		o.Counter.Add(OpBFSVisit, 1)
		return nil
	})
	for _, s := range exposed {
		dpath, err := bfs.ShortestPathToSet(d, s, targets, visit)
		if errors.Is(err, bfs.ErrNoPath) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return unfold(g, m, dpath, isExposed)
	}

	return nil, nil
}

// unfold turns a path of D into the walk it encodes in g.
func unfold(g *core.Graph, m *Matching, dpath []core.NodeID, isExposed map[core.NodeID]bool) (Path, error) {
	s := dpath[0]
	walk := make(Path, 0, 2*len(dpath))
	walk = append(walk, s)
	for _, v := range dpath[1:] {
		w, ok := m.Mate(v)
		if !ok {
			return nil, defect("digraph node %d on the path is exposed", v)
		}
		walk = append(walk, w, v)
	}

	last := dpath[len(dpath)-1]
	nbrs, err := g.NeighborIDs(last)
	if err != nil {
		return nil, err
	}
	end, found := core.NodeID(0), false
	for _, u := range nbrs {
		if !isExposed[u] {
			continue
		}
		if u != s {
			end, found = u, true
			break
		}
		if !found {
			end, found = u, true
		}
	}
	if !found {
		return nil, defect("target %d has no exposed neighbour", last)
	}

	return append(walk, end), nil
}
