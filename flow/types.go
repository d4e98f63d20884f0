package flow

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned for a nil network or graph.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrNotDirected is returned when Dinic receives an undirected graph.
	ErrNotDirected = errors.New("flow: network must be directed")

	// ErrNotBipartite is returned when a graph has an odd cycle.
	ErrNotBipartite = errors.New("flow: graph is not bipartite")
)

// FlowOptions configures the max-flow routines.
//   - Ctx: checked once per phase; defaults to context.Background().
type FlowOptions struct {
	Ctx context.Context
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}
