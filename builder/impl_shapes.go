// SPDX-License-Identifier: MIT
// Package: multicut/builder
//
// impl_shapes.go - deterministic fixtures: Path, Cycle, Star, Complete, EdgeList.

package builder

import (
	"fmt"

	"github.com/katalvlaran/multicut/core"
)

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarLeaves    = 1
	minCompleteNodes = 1
)

// Path returns a Constructor for the path 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, fmt.Sprintf("n=%d < min=%d", n, minPathNodes), ErrTooFewVertices)
		}
		addNodes(g, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, core.NodeID(i-1), core.NodeID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring 0–1–…–(n-1)–0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return builderErrorf(methodCycle, fmt.Sprintf("n=%d < min=%d", n, minCycleNodes), ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}

		return addEdge(g, methodCycle, core.NodeID(n-1), 0)
	}
}

// Star returns a Constructor for a hub 0 joined to leaves 1..leaves.
func Star(leaves int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if leaves < minStarLeaves {
			return builderErrorf(methodStar, fmt.Sprintf("leaves=%d < min=%d", leaves, minStarLeaves), ErrTooFewVertices)
		}
		g.AddNode(0)
		for i := 1; i <= leaves; i++ {
			if err := addEdge(g, methodStar, 0, core.NodeID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return builderErrorf(methodComplete, fmt.Sprintf("n=%d < min=%d", n, minCompleteNodes), ErrTooFewVertices)
		}
		addNodes(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, core.NodeID(i), core.NodeID(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// EdgeList returns a Constructor that inserts the given edges in order.
// Loops and repeated edges fail with ErrConstructFailed.
func EdgeList(edges []core.Edge) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, e := range edges {
			if err := addEdge(g, methodEdgeList, e.From, e.To); err != nil {
				return err
			}
		}

		return nil
	}
}
