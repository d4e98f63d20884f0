// SPDX-License-Identifier: MIT
// Package: multicut/builder
//
// impl_tree.go - random and deterministic tree constructors.
//
//   - PruferTree(n):  uniform random labelled tree, n ≥ 3.
//   - Caterpillar(n): random caterpillar, n ≥ 4.
//   - BinaryTree(n):  breadth-first unrooted binary tree, n ≥ 1.

package builder

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/multicut/core"
)

const (
	minPruferNodes      = 3
	minCaterpillarNodes = 4
	minBinaryTreeNodes  = 1
)

// PruferTree returns a Constructor that decodes a uniformly random Prüfer
// sequence of length n-2 into a labelled tree on nodes 0..n-1.
//
// Complexity: O(n²) for the decoding scan.
func PruferTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPruferNodes {
			return builderErrorf(methodPruferTree, fmt.Sprintf("n=%d < min=%d", n, minPruferNodes), ErrTooFewVertices)
		}
		rng, err := cfg.requireRNG(methodPruferTree)
		if err != nil {
			return err
		}

		seq := make([]int, n-2)
		for i := range seq {
			seq[i] = rng.Intn(n)
		}

		addNodes(g, n)
		// remaining[k] counts the occurrences of k still ahead in seq; -1 marks used leaves.
		remaining := make([]int, n)
		for _, v := range seq {
			remaining[v]++
		}
		for _, v := range seq {
			for k := 0; k < n; k++ {
				if remaining[k] != 0 {
					continue
				}
				remaining[k] = -1
				if err = addEdge(g, methodPruferTree, core.NodeID(k), core.NodeID(v)); err != nil {
					return err
				}
				remaining[v]--
				break
			}
		}

		last := make([]core.NodeID, 0, 2)
		for k := 0; k < n; k++ {
			if remaining[k] == 0 {
				last = append(last, core.NodeID(k))
			}
		}
		if len(last) != 2 {
			return builderErrorf(methodPruferTree, fmt.Sprintf("%d nodes left after decoding", len(last)), ErrConstructFailed)
		}

		return addEdge(g, methodPruferTree, last[0], last[1])
	}
}

// Caterpillar returns a Constructor that builds a random caterpillar: a
// backbone path whose two ends each carry one private leaf, with the
// remaining nodes hung as leaves on uniformly chosen backbone nodes.
//
// Numbering: 0 and 1 are the backbone ends, 2..k+1 the inner backbone,
// then the two end leaves, then the random leaves. The inner backbone
// length k is uniform in [0, n-4].
func Caterpillar(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCaterpillarNodes {
			return builderErrorf(methodCaterpillar, fmt.Sprintf("n=%d < min=%d", n, minCaterpillarNodes), ErrTooFewVertices)
		}
		rng, err := cfg.requireRNG(methodCaterpillar)
		if err != nil {
			return err
		}

		inner := rng.Intn(n - minCaterpillarNodes + 1)
		leaves := n - minCaterpillarNodes - inner
		addNodes(g, n)

		const left, right core.NodeID = 0, 1
		backbone := []core.NodeID{left, right}
		prev := left
		next := core.NodeID(2)
		for i := 0; i < inner; i++ {
			if err = addEdge(g, methodCaterpillar, prev, next); err != nil {
				return err
			}
			backbone = append(backbone, next)
			prev = next
			next++
		}
		if err = addEdge(g, methodCaterpillar, prev, right); err != nil {
			return err
		}
		for _, end := range []core.NodeID{left, right} {
			if err = addEdge(g, methodCaterpillar, end, next); err != nil {
				return err
			}
			next++
		}
		for i := 0; i < leaves; i++ {
			if err = addEdge(g, methodCaterpillar, backbone[rng.Intn(len(backbone))], next); err != nil {
				return err
			}
			next++
		}

		return nil
	}
}

// BinaryTree returns a Constructor that grows a tree breadth-first: node 0
// gets one child, then every node taken from the queue gets up to two
// children, so internal nodes end with degree three.
func BinaryTree(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minBinaryTreeNodes {
			return builderErrorf(methodBinaryTree, fmt.Sprintf("n=%d < min=%d", n, minBinaryTreeNodes), ErrTooFewVertices)
		}

		g.AddNode(0)
		parents := linkedlistqueue.New()
		parents.Enqueue(core.NodeID(0))
		next := core.NodeID(1)
		if int(next) < n {
			if err := addEdge(g, methodBinaryTree, 0, next); err != nil {
				return err
			}
			parents.Enqueue(next)
			next++
		}
		for !parents.Empty() && int(next) < n {
			raw, _ := parents.Dequeue()
			parent := raw.(core.NodeID)
			for c := 0; c < 2 && int(next) < n; c++ {
				if err := addEdge(g, methodBinaryTree, parent, next); err != nil {
					return err
				}
				parents.Enqueue(next)
				next++
			}
		}

		return nil
	}
}
