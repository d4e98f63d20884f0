// SPDX-License-Identifier: MIT

package matching

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/multicut/core"
)

// level is one contraction step: the graph and matching before the
// blossom was shrunk.
type level struct {
	graph    *core.Graph
	matching *Matching
	blossom  Blossom
}

// engine runs searches against one validated snapshot of the input graph.
type engine struct {
	graph *core.Graph
	opts  Options
}

func newEngine(g Graph, opts []Option) (*engine, error) {
	snap, err := snapshot(g)
	if err != nil {
		return nil, err
	}

	return &engine{graph: snap, opts: resolve(opts)}, nil
}

// FindAugmentingPath returns an augmenting path of g with respect to m, or
// nil if m is maximum. m is not modified.
func FindAugmentingPath(g Graph, m *Matching, opts ...Option) (Path, error) {
	if m == nil {
		return nil, ErrNilMatching
	}
	e, err := newEngine(g, opts)
	if err != nil {
		return nil, err
	}
	if err = m.Validate(e.graph); err != nil {
		return nil, err
	}

	return e.augmentingPath(m)
}

// augmentingPath searches, contracting blossoms level by level until the
// walk found is a path, then expands it back through every level.
func (e *engine) augmentingPath(m *Matching) (Path, error) {
	levels := arraystack.New()
	cur, curM := e.graph, m

	var path Path
	for {
		walk, err := findAlternatingWalk(cur, curM, e.opts)
		if err != nil {
			return nil, err
		}
		if walk == nil {
			return nil, nil
		}

		top, _ := maxNodeID(cur)
		b, found := DetectBlossom(walk, top+1)
		if !found {
			path = walk
			break
		}
		next, nextM, err := contract(cur, curM, b, e.opts)
		if err != nil {
			return nil, err
		}
		levels.Push(level{graph: cur, matching: curM, blossom: b})
		cur, curM = next, nextM
	}

	if !IsAugmentingPath(path, curM) {
		return nil, defect("search returned %v, not augmenting", path)
	}
	for !levels.Empty() {
		raw, _ := levels.Pop()
		lv := raw.(level)
		expanded, err := expand(lv.graph, lv.matching, lv.blossom, path, e.opts)
		if err != nil {
			return nil, err
		}
		path = expanded
	}

	for i := 1; i < len(path); i++ {
		if !e.graph.HasEdge(path[i-1], path[i]) {
			return nil, defect("expanded path uses missing edge (%d,%d)", path[i-1], path[i])
		}
	}

	return path, nil
}

// grow augments m in place until it is maximum or done(size) holds.
func (e *engine) grow(m *Matching, done func(size int) bool) error {
	for !done(m.Size()) {
		path, err := e.augmentingPath(m)
		if err != nil {
			return err
		}
		if path == nil {
			return nil
		}
		before := m.Size()
		if err = Augment(m, path); err != nil {
			return errors.Wrap(ErrInvariantViolation, err.Error())
		}
		if m.Size() != before+1 {
			return defect("augmentation changed size from %d to %d", before, m.Size())
		}
		e.opts.Counter.Add(OpAugmentation, 1)
		e.opts.Logger.Debug("matching augmented",
			zap.Int("size", m.Size()),
			zap.Int("path_len", path.Len()),
		)
	}

	return nil
}

func never(int) bool { return false }

// FindMaximumMatching returns a maximum matching of g, seeded greedily.
//
// Errors: ErrNilGraph, ErrInvalidGraph, ErrInvariantViolation.
func FindMaximumMatching(g Graph, opts ...Option) (*Matching, error) {
	e, err := newEngine(g, opts)
	if err != nil {
		return nil, err
	}
	m, err := greedy(e.graph)
	if err != nil {
		return nil, err
	}
	if err = e.grow(m, never); err != nil {
		return nil, err
	}

	return m, nil
}

// MaximizeMatching grows a copy of m into a maximum matching of g and
// returns it; m itself is left untouched.
//
// Errors: ErrNilGraph, ErrNilMatching, ErrInvalidGraph, ErrInvalidMatching,
// ErrInvariantViolation.
func MaximizeMatching(g Graph, m *Matching, opts ...Option) (*Matching, error) {
	if m == nil {
		return nil, ErrNilMatching
	}
	e, err := newEngine(g, opts)
	if err != nil {
		return nil, err
	}
	if err = m.Validate(e.graph); err != nil {
		return nil, err
	}
	out := m.Clone()
	if err = e.grow(out, never); err != nil {
		return nil, err
	}

	return out, nil
}

// HasMatchingOfAtLeast reports whether g has a matching with at least k
// edges. It stops augmenting as soon as the matching reaches k. k <= 0 is
// always true; k above min(|E|, ⌊|V|/2⌋) is false without searching.
func HasMatchingOfAtLeast(g Graph, k int, opts ...Option) (bool, error) {
	e, err := newEngine(g, opts)
	if err != nil {
		return false, err
	}
	if k <= 0 {
		return true, nil
	}
	if k > e.graph.EdgeCount() || k > e.graph.NodeCount()/2 {
		return false, nil
	}
	m, err := greedy(e.graph)
	if err != nil {
		return false, err
	}
	reached := func(size int) bool { return size >= k }
	if err = e.grow(m, reached); err != nil {
		return false, err
	}

	return reached(m.Size()), nil
}
