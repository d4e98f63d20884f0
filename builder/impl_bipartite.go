// SPDX-License-Identifier: MIT
// Package: multicut/builder
//
// impl_bipartite.go - Bipartite(left, right, p) random bipartite constructor.
//
// Contract:
//   - left ≥ 1 and right ≥ 1 (else ErrTooFewVertices).
//   - Left side is 0..left-1, right side is left..left+right-1.
//   - One Bernoulli trial per cross pair in (i asc, j asc) order; the RNG is
//     only required when 0 < p < 1. p == 1 yields K_{left,right}.
//
// Complexity: O(left·right).

package builder

import (
	"fmt"

	"github.com/katalvlaran/multicut/core"
)

const (
	methodBipartite  = "Bipartite"
	minPartitionSize = 1
)

// Bipartite returns a Constructor for a random bipartite graph with the
// given side sizes and cross-edge probability p.
func Bipartite(left, right int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if left < minPartitionSize || right < minPartitionSize {
			return builderErrorf(methodBipartite,
				fmt.Sprintf("left=%d, right=%d (each must be ≥ %d)", left, right, minPartitionSize), ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return builderErrorf(methodBipartite, fmt.Sprintf("p=%.6f not in [0,1]", p), ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return builderErrorf(methodBipartite, "rng is required", ErrNeedRandSource)
		}

		addNodes(g, left+right)
		if p == probMin {
			return nil
		}
		for i := 0; i < left; i++ {
			for j := left; j < left+right; j++ {
				if stochastic && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, methodBipartite, core.NodeID(i), core.NodeID(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
