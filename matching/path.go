// SPDX-License-Identifier: MIT

package matching

import "github.com/katalvlaran/multicut/core"

// Path is a walk given by its node sequence; consecutive nodes are joined
// by an edge.
type Path []core.NodeID

// Len returns the number of edges of p.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Edges returns the edges of p in walk order, each oriented along p.
func (p Path) Edges() []core.Edge {
	out := make([]core.Edge, 0, p.Len())
	for i := 1; i < len(p); i++ {
		out = append(out, core.NewEdge(p[i-1], p[i]))
	}

	return out
}

// Reversed returns a reversed copy of p.
func (p Path) Reversed() Path {
	out := make(Path, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}

	return out
}

// IsSimple reports whether no node occurs twice in p.
func (p Path) IsSimple() bool {
	seen := make(map[core.NodeID]bool, len(p))
	for _, v := range p {
		if seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

func (p Path) indexOf(v core.NodeID) int {
	for i, u := range p {
		if u == v {
			return i
		}
	}

	return -1
}
