// SPDX-License-Identifier: MIT

package counter

import (
	"sort"
	"sync"
)

// Op names an elementary operation, e.g. "matching.contraction".
type Op string

// Sink receives operation counts.
type Sink interface {
	Add(op Op, delta int64)
}

// Counter accumulates totals per operation in memory.
// The zero value is ready to use.
type Counter struct {
	mu     sync.Mutex
	totals map[Op]int64
}

// New returns an empty Counter.
func New() *Counter {
	return &Counter{}
}

// Add increments op by delta.
func (c *Counter) Add(op Op, delta int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.totals == nil {
		c.totals = make(map[Op]int64)
	}
	c.totals[op] += delta
}

// Value returns the current total of op (0 if never reported).
func (c *Counter) Value(op Op) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.totals[op]
}

// Snapshot returns a copy of all totals.
func (c *Counter) Snapshot() map[Op]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[Op]int64, len(c.totals))
	for op, v := range c.totals {
		out[op] = v
	}

	return out
}

// Ops returns the reported operations in lexical order.
func (c *Counter) Ops() []Op {
	c.mu.Lock()
	defer c.mu.Unlock()

	ops := make([]Op, 0, len(c.totals))
	for op := range c.totals {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })

	return ops
}

// Reset clears all totals.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totals = nil
}

type discard struct{}

func (discard) Add(Op, int64) {}

// Discard is a Sink that drops every report.
var Discard Sink = discard{}

type multi []Sink

func (m multi) Add(op Op, delta int64) {
	for _, s := range m {
		s.Add(op, delta)
	}
}

// Multi returns a Sink that forwards every report to each non-nil sink.
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}

	return out
}
