package dfs

import (
	"sort"

	"github.com/katalvlaran/multicut/core"
)

// ConnectedComponents returns the connected components of the undirected
// graph g. Each component is sorted ascending, and components are ordered
// by their smallest node.
//
// Complexity: O(V log V + E).
func ConnectedComponents(g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var (
		components [][]core.NodeID
		current    []core.NodeID
	)
	collect := WithOnVisit(func(id core.NodeID) error {
		current = append(current, id)
		return nil
	})
	seen := make(map[core.NodeID]bool, g.NodeCount())
	for _, root := range g.Nodes() {
		if seen[root] {
			continue
		}
		current = nil
		res, err := DFS(g, root, collect)
		if err != nil {
			return nil, err
		}
		for id := range res.Visited {
			seen[id] = true
		}
		sort.Slice(current, func(i, j int) bool { return current[i] < current[j] })
		components = append(components, current)
	}

	return components, nil
}
