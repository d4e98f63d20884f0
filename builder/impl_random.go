// SPDX-License-Identifier: MIT
// Package: multicut/builder
//
// impl_random.go - ErdosRenyi(n, p) and GNM(n, m).
//
// Contract:
//   - Nodes are 0..n-1.
//   - ErdosRenyi runs one Bernoulli trial per unordered pair {i,j}, i<j, in
//     ascending (i, j) order; the RNG is only required when 0 < p < 1.
//   - GNM shuffles all n(n-1)/2 pairs and keeps the first min(m, n(n-1)/2).
//
// Complexity: O(n²) time for both; GNM also uses O(n²) space for the pairs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/multicut/core"
)

const (
	minRandomVertices = 1
	probMin           = 0.0
	probMax           = 1.0
)

// ErdosRenyi returns a Constructor that samples G(n,p): every pair of
// distinct nodes is joined independently with probability p.
func ErdosRenyi(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return builderErrorf(methodErdosRenyi, fmt.Sprintf("n=%d < min=%d", n, minRandomVertices), ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return builderErrorf(methodErdosRenyi, fmt.Sprintf("p=%.6f not in [0,1]", p), ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return builderErrorf(methodErdosRenyi, "rng is required", ErrNeedRandSource)
		}

		addNodes(g, n)
		if p == probMin {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if stochastic && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, methodErdosRenyi, core.NodeID(i), core.NodeID(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// GNM returns a Constructor that samples G(n,m): m distinct edges chosen
// uniformly among all pairs. If m exceeds the number of pairs, the result
// is the complete graph.
func GNM(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return builderErrorf(methodGNM, fmt.Sprintf("n=%d < min=%d", n, minRandomVertices), ErrTooFewVertices)
		}
		if m < 0 {
			return builderErrorf(methodGNM, fmt.Sprintf("m=%d < 0", m), ErrTooFewVertices)
		}
		rng, err := cfg.requireRNG(methodGNM)
		if err != nil {
			return err
		}

		addNodes(g, n)
		pairs := make([]core.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, core.NewEdge(core.NodeID(i), core.NodeID(j)))
			}
		}
		rng.Shuffle(len(pairs), func(a, b int) { pairs[a], pairs[b] = pairs[b], pairs[a] })
		if m > len(pairs) {
			m = len(pairs)
		}
		for _, e := range pairs[:m] {
			if err = addEdge(g, methodGNM, e.From, e.To); err != nil {
				return err
			}
		}

		return nil
	}
}
