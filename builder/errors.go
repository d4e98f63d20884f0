// SPDX-License-Identifier: MIT
// Package: multicut/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w, never by formatting sentinels.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, leaves, edges) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not complete: a nil
// constructor was passed or the graph rejected an insertion.
var ErrConstructFailed = errors.New("builder: construction failed")
