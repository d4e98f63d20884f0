// SPDX-License-Identifier: MIT
// Package: multicut/builder
//
// api.go - the single orchestrator for the builder package.
//
// Design contract:
//   - BuildGraph(bopts, cons...) creates g, resolves cfg, runs cons in order.
//   - Same options, same seed and same constructor order give identical graphs.
//   - Never panics at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/multicut/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before mutating g
// and return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new undirected core.Graph, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
