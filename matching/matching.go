// SPDX-License-Identifier: MIT

package matching

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/multicut/core"
)

// Matching is a set of edges no two of which share an endpoint, stored as
// a symmetric mate map. The zero value is an empty matching ready to use.
// A Matching is not safe for concurrent mutation.
type Matching struct {
	mate map[core.NodeID]core.NodeID
}

// NewMatching returns a matching holding edges.
// Returns ErrNodeAlreadyMatched if two edges share an endpoint.
func NewMatching(edges ...core.Edge) (*Matching, error) {
	m := &Matching{mate: make(map[core.NodeID]core.NodeID, 2*len(edges))}
	for _, e := range edges {
		if err := m.Add(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Size returns the number of matched edges.
func (m *Matching) Size() int {
	return len(m.mate) / 2
}

// Mate returns the node matched to v.
func (m *Matching) Mate(v core.NodeID) (core.NodeID, bool) {
	u, ok := m.mate[v]

	return u, ok
}

// IsMatched reports whether v is covered by the matching.
func (m *Matching) IsMatched(v core.NodeID) bool {
	_, ok := m.mate[v]

	return ok
}

// Contains reports whether u–v is a matching edge.
func (m *Matching) Contains(u, v core.NodeID) bool {
	w, ok := m.mate[u]

	return ok && w == v
}

// Add inserts u–v. Both endpoints must be exposed.
func (m *Matching) Add(u, v core.NodeID) error {
	if u == v {
		return errors.Wrapf(core.ErrLoopNotAllowed, "matching: add (%d,%d)", u, v)
	}
	if m.IsMatched(u) || m.IsMatched(v) {
		return errors.Wrapf(ErrNodeAlreadyMatched, "add (%d,%d)", u, v)
	}
	if m.mate == nil {
		m.mate = make(map[core.NodeID]core.NodeID)
	}
	m.mate[u] = v
	m.mate[v] = u

	return nil
}

// Remove deletes u–v and reports whether it was present.
func (m *Matching) Remove(u, v core.NodeID) bool {
	if !m.Contains(u, v) {
		return false
	}
	delete(m.mate, u)
	delete(m.mate, v)

	return true
}

// Edges returns the matching edges normalized (From < To) and sorted.
func (m *Matching) Edges() []core.Edge {
	out := make([]core.Edge, 0, m.Size())
	for u, v := range m.mate {
		if u < v {
			out = append(out, core.NewEdge(u, v))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Clone returns an independent copy of m.
func (m *Matching) Clone() *Matching {
	c := &Matching{mate: make(map[core.NodeID]core.NodeID, len(m.mate))}
	for u, v := range m.mate {
		c.mate[u] = v
	}

	return c
}

// Validate checks that every matching edge is an edge of g.
// Returns ErrNilGraph or ErrInvalidMatching.
func (m *Matching) Validate(g Graph) error {
	if isNil(g) {
		return ErrNilGraph
	}
	adjacent := make(map[core.NodeID]map[core.NodeID]bool)
	for _, u := range g.Nodes() {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return errors.Wrapf(ErrInvalidGraph, "neighbours of %d: %v", u, err)
		}
		set := make(map[core.NodeID]bool, len(nbrs))
		for _, v := range nbrs {
			set[v] = true
		}
		adjacent[u] = set
	}
	for _, e := range m.Edges() {
		if !adjacent[e.From][e.To] && !adjacent[e.To][e.From] {
			return errors.Wrapf(ErrInvalidMatching, "edge %s is not in the graph", e)
		}
	}

	return nil
}

// exposed returns the nodes of g the matching leaves uncovered, ascending.
func (m *Matching) exposed(g *core.Graph) []core.NodeID {
	var out []core.NodeID
	for _, v := range g.Nodes() {
		if !m.IsMatched(v) {
			out = append(out, v)
		}
	}

	return out
}
