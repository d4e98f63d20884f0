// SPDX-License-Identifier: MIT

package matching

import "github.com/pkg/errors"

var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrNilMatching is returned when a required matching is nil.
	ErrNilMatching = errors.New("matching: matching is nil")

	// ErrInvalidGraph reports a graph the engine cannot work on: directed,
	// with a self-loop, or with a neighbour that is not one of its nodes.
	ErrInvalidGraph = errors.New("matching: invalid graph")

	// ErrInvalidMatching reports a matching that is not a matching of the
	// given graph.
	ErrInvalidMatching = errors.New("matching: invalid matching")

	// ErrNodeAlreadyMatched is returned by Matching.Add when an endpoint is
	// already covered.
	ErrNodeAlreadyMatched = errors.New("matching: node already matched")

	// ErrNotAugmentingPath is returned by Augment for a path that is not
	// augmenting with respect to the matching.
	ErrNotAugmentingPath = errors.New("matching: not an augmenting path")

	// ErrInvariantViolation marks an internal defect: a walk, blossom or
	// expanded path that contradicts the algorithm's invariants.
	ErrInvariantViolation = errors.New("matching: invariant violation")
)

// defect wraps ErrInvariantViolation with a formatted message and the
// current stack.
func defect(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvariantViolation, format, args...)
}
