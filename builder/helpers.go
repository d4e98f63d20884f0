// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/multicut/core"
)

// Canonical constructor names used as error prefixes.
const (
	methodErdosRenyi        = "ErdosRenyi"
	methodGNM               = "GNM"
	methodPruferTree        = "PruferTree"
	methodCaterpillar       = "Caterpillar"
	methodBinaryTree        = "BinaryTree"
	methodStar              = "Star"
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodComplete          = "Complete"
	methodEdgeList          = "EdgeList"
	methodConnectComponents = "ConnectComponents"
)

// builderErrorf prefixes err with the constructor name and a formatted
// detail, keeping err reachable through errors.Is.
func builderErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}

// addNodes inserts nodes 0..n-1.
func addNodes(g *core.Graph, n int) {
	for i := 0; i < n; i++ {
		g.AddNode(core.NodeID(i))
	}
}

// addEdge inserts u–v and converts core failures into ErrConstructFailed.
func addEdge(g *core.Graph, method string, u, v core.NodeID) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %v: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}
