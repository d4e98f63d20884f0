// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/multicut/core"
	"github.com/katalvlaran/multicut/dfs"
)

// ConnectComponents returns a Constructor that makes the graph built so far
// connected: for every pair of components i < j (ordered by smallest node)
// it joins their smallest nodes. This is the fixture used to turn a sparse
// random graph into a connected instance.
//
// Complexity: O(V + E + c²) for c components.
func ConnectComponents() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		comps, err := dfs.ConnectedComponents(g)
		if err != nil {
			return builderErrorf(methodConnectComponents, "components", err)
		}
		for i := 0; i < len(comps)-1; i++ {
			for j := i + 1; j < len(comps); j++ {
				if err = addEdge(g, methodConnectComponents, comps[i][0], comps[j][0]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
