// SPDX-License-Identifier: MIT

// Package matching computes maximum-cardinality matchings in general
// undirected graphs with Edmonds' blossom algorithm.
//
// Pipeline of one call:
//
//  1. GreedyMatching seeds a maximal matching.
//  2. FindAlternatingWalk builds the auxiliary digraph D (BuildDigraph) and
//     searches it for an M-alternating walk between exposed nodes.
//  3. DetectBlossom inspects the walk; an odd cycle is shrunk by Contract and
//     the search repeats on the contracted graph. Contraction levels are kept
//     on an explicit stack, never on the call stack.
//  4. Once the walk is a path, Expand undoes the contractions bottom-up.
//  5. Augment flips the path into the matching (|M| grows by exactly one).
//
// FindMaximumMatching repeats 2–5 until no augmenting path is left;
// HasMatchingOfAtLeast stops as soon as the matching is large enough.
//
// Input graphs are read through the Graph interface and never mutated.
// All scratch state is local to a call, so concurrent calls on the same
// graph are safe. The engine does not poll for cancellation; wrap whole
// calls if a deadline is needed.
//
// Errors:
//
//   - ErrNilGraph, ErrNilMatching, ErrInvalidGraph, ErrInvalidMatching for bad input.
//   - ErrNotAugmentingPath from Augment on a path that is not augmenting.
//   - ErrInvariantViolation for internal defects; these carry a stack trace.
package matching
