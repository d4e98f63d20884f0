// SPDX-License-Identifier: MIT

package matching

import (
	"github.com/pkg/errors"
)

// IsAugmentingPath reports whether p is an augmenting path for m: a simple
// path of odd length between two exposed nodes whose edges alternate
// non-matching, matching, …, non-matching (edge i is in m iff i is odd).
func IsAugmentingPath(p Path, m *Matching) bool {
	if m == nil || p.Len()%2 == 0 {
		return false
	}
	if m.IsMatched(p[0]) || m.IsMatched(p[len(p)-1]) {
		return false
	}
	if !p.IsSimple() {
		return false
	}
	for i := 1; i < len(p); i++ {
		if m.Contains(p[i-1], p[i]) != (i%2 == 0) {
			return false
		}
	}

	return true
}

// Augment replaces m by its symmetric difference with p, growing it by
// exactly one edge. Returns ErrNotAugmentingPath if p is not augmenting.
func Augment(m *Matching, p Path) error {
	if m == nil {
		return ErrNilMatching
	}
	if !IsAugmentingPath(p, m) {
		return errors.Wrapf(ErrNotAugmentingPath, "path %v", p)
	}

	for i := 2; i < len(p); i += 2 {
		m.Remove(p[i-1], p[i])
	}
	for i := 1; i < len(p); i += 2 {
		if err := m.Add(p[i-1], p[i]); err != nil {
			return defect("augment edge (%d,%d): %v", p[i-1], p[i], err)
		}
	}

	return nil
}
