// SPDX-License-Identifier: MIT

// Package builder produces deterministic graph fixtures and random problem
// instances for the matching engine and the experiment harness.
//
// What:
//
//   - BuildGraph(bopts, cons...) creates a fresh undirected *core.Graph and
//     applies each Constructor in order.
//   - Random models: ErdosRenyi (G(n,p)), GNM (G(n,m)), PruferTree,
//     Caterpillar.
//   - Deterministic shapes: Path, Cycle, Star, Complete, BinaryTree,
//     EdgeList.
//   - Post-processing: ConnectComponents joins every pair of components.
//
// Why:
//
//   - Tests and benchmarks need graphs that are identical for the same
//     seed and the same constructor order.
//
// Determinism:
//
//   - Node IDs are 0..n-1 in insertion order; random constructors draw from
//     the *rand.Rand resolved by WithSeed or WithRand and never from the
//     global source.
//
// Errors:
//
//   - ErrTooFewVertices      n below the constructor's minimum.
//   - ErrInvalidProbability  p outside [0,1].
//   - ErrNeedRandSource      random constructor without WithSeed/WithRand.
//   - ErrConstructFailed     nil constructor or an unexpected core error.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.ErdosRenyi(500, 0.1),
//		builder.ConnectComponents(),
//	)
package builder
