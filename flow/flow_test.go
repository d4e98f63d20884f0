package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multicut/builder"
	"github.com/katalvlaran/multicut/core"
	"github.com/katalvlaran/multicut/flow"
)

func TestDinic_Errors(t *testing.T) {
	_, err := flow.Dinic(nil, 0, 1, flow.FlowOptions{})
	require.ErrorIs(t, err, flow.ErrGraphNil)

	_, err = flow.Dinic(core.NewGraph(), 0, 1, flow.FlowOptions{})
	require.ErrorIs(t, err, flow.ErrNotDirected)

	d := core.NewGraph(core.WithDirected(true))
	d.AddNode(0)
	_, err = flow.Dinic(d, 5, 0, flow.FlowOptions{})
	require.ErrorIs(t, err, flow.ErrSourceNotFound)
	_, err = flow.Dinic(d, 0, 5, flow.FlowOptions{})
	require.ErrorIs(t, err, flow.ErrSinkNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.AddEdge(0, 1))
	_, err = flow.Dinic(d, 0, 1, flow.FlowOptions{Ctx: ctx})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDinic_UnitNetwork(t *testing.T) {
	// Three routes into 9; the cross arc 1→4 adds no capacity.
	d := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]core.NodeID{
		{0, 1}, {1, 9}, {0, 2}, {2, 9}, {0, 3}, {3, 4}, {4, 9}, {1, 4},
	} {
		require.NoError(t, d.AddEdge(e[0], e[1]))
	}
	f, err := flow.Dinic(d, 0, 9, flow.FlowOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, f)

	f, err = flow.Dinic(d, 9, 0, flow.FlowOptions{})
	require.NoError(t, err)
	require.Zero(t, f)
}

func TestBipartition(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(6))
	require.NoError(t, err)
	left, err := flow.Bipartition(g)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		require.NotEqual(t, left[e.From], left[e.To])
	}

	odd, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	_, err = flow.Bipartition(odd)
	require.ErrorIs(t, err, flow.ErrNotBipartite)
}

func TestBipartiteMatchingSize(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(7))
	require.NoError(t, err)
	size, err := flow.BipartiteMatchingSize(g, flow.FlowOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, size)

	g, err = builder.BuildGraph(nil, builder.Path(9))
	require.NoError(t, err)
	size, err = flow.BipartiteMatchingSize(g, flow.FlowOptions{})
	require.NoError(t, err)
	require.Equal(t, 4, size)

	size, err = flow.BipartiteMatchingSize(core.NewGraph(), flow.FlowOptions{})
	require.NoError(t, err)
	require.Zero(t, size)
}
