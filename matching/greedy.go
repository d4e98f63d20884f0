// SPDX-License-Identifier: MIT

package matching

import "github.com/katalvlaran/multicut/core"

// GreedyMatching returns a maximal matching of g: nodes are scanned in
// ascending order and each exposed node is matched to its smallest exposed
// neighbour.
//
// Complexity: O(V log V + E).
func GreedyMatching(g Graph) (*Matching, error) {
	snap, err := snapshot(g)
	if err != nil {
		return nil, err
	}

	return greedy(snap)
}

func greedy(g *core.Graph) (*Matching, error) {
	m := &Matching{mate: make(map[core.NodeID]core.NodeID)}
	for _, u := range g.Nodes() {
		if m.IsMatched(u) {
			continue
		}
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			if !m.IsMatched(v) {
				m.mate[u] = v
				m.mate[v] = u
				break
			}
		}
	}

	return m, nil
}
