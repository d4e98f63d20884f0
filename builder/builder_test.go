// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multicut/builder"
	"github.com/katalvlaran/multicut/core"
	"github.com/katalvlaran/multicut/dfs"
)

func seeded(seed int64) []builder.BuilderOption {
	return []builder.BuilderOption{builder.WithSeed(seed)}
}

// requireTree asserts g is connected with exactly n-1 edges.
func requireTree(t *testing.T, g *core.Graph, n int) {
	t.Helper()
	require.Equal(t, n, g.NodeCount())
	require.Equal(t, n-1, g.EdgeCount())
	comps, err := dfs.ConnectedComponents(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"er-n", seeded(1), builder.ErdosRenyi(0, 0.5), builder.ErrTooFewVertices},
		{"er-p", seeded(1), builder.ErdosRenyi(5, 1.5), builder.ErrInvalidProbability},
		{"er-rng", nil, builder.ErdosRenyi(5, 0.5), builder.ErrNeedRandSource},
		{"gnm-m", seeded(1), builder.GNM(5, -1), builder.ErrTooFewVertices},
		{"gnm-rng", nil, builder.GNM(5, 3), builder.ErrNeedRandSource},
		{"prufer-n", seeded(1), builder.PruferTree(2), builder.ErrTooFewVertices},
		{"caterpillar-n", seeded(1), builder.Caterpillar(3), builder.ErrTooFewVertices},
		{"caterpillar-rng", nil, builder.Caterpillar(10), builder.ErrNeedRandSource},
		{"binary-n", nil, builder.BinaryTree(0), builder.ErrTooFewVertices},
		{"path-n", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"cycle-n", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"star-n", nil, builder.Star(0), builder.ErrTooFewVertices},
		{"complete-n", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"edgelist-loop", nil, builder.EdgeList([]core.Edge{core.NewEdge(1, 1)}), builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.opts, tc.con)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestErdosRenyi_Extremes(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.ErdosRenyi(6, 0))
	require.NoError(t, err)
	require.Equal(t, 6, g.NodeCount())
	require.Zero(t, g.EdgeCount())

	g, err = builder.BuildGraph(nil, builder.ErdosRenyi(6, 1))
	require.NoError(t, err)
	require.Equal(t, 15, g.EdgeCount())
}

func TestErdosRenyi_Deterministic(t *testing.T) {
	a, err := builder.BuildGraph(seeded(7), builder.ErdosRenyi(40, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(7)))}, builder.ErdosRenyi(40, 0.2))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())
}

func TestGNM(t *testing.T) {
	g, err := builder.BuildGraph(seeded(3), builder.GNM(10, 12))
	require.NoError(t, err)
	require.Equal(t, 10, g.NodeCount())
	require.Equal(t, 12, g.EdgeCount())

	g, err = builder.BuildGraph(seeded(3), builder.GNM(5, 100))
	require.NoError(t, err)
	require.Equal(t, 10, g.EdgeCount())
}

func TestTrees(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g, err := builder.BuildGraph(seeded(seed), builder.PruferTree(25))
		require.NoError(t, err)
		requireTree(t, g, 25)

		g, err = builder.BuildGraph(seeded(seed), builder.Caterpillar(25))
		require.NoError(t, err)
		requireTree(t, g, 25)
		d0, _ := g.Degree(0)
		require.GreaterOrEqual(t, d0, 2)
	}

	g, err := builder.BuildGraph(nil, builder.BinaryTree(10))
	require.NoError(t, err)
	requireTree(t, g, 10)
	d0, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 3, d0)
}

func TestShapes(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)
	requireTree(t, g, 5)

	g, err = builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.EdgeCount())
	require.True(t, g.HasEdge(4, 0))

	g, err = builder.BuildGraph(nil, builder.Star(99))
	require.NoError(t, err)
	requireTree(t, g, 100)
	d0, _ := g.Degree(0)
	require.Equal(t, 99, d0)

	g, err = builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	require.Equal(t, 6, g.EdgeCount())

	_, err = builder.BuildGraph(nil, builder.EdgeList([]core.Edge{core.NewEdge(0, 1), core.NewEdge(1, 0)}))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestConnectComponents(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		builder.EdgeList([]core.Edge{core.NewEdge(0, 1), core.NewEdge(2, 3), core.NewEdge(4, 5)}),
		builder.ConnectComponents(),
	)
	require.NoError(t, err)
	require.True(t, g.HasEdge(0, 2))
	require.True(t, g.HasEdge(0, 4))
	require.True(t, g.HasEdge(2, 4))
	require.Equal(t, 6, g.EdgeCount())

	g, err = builder.BuildGraph(seeded(11), builder.ErdosRenyi(200, 0.005), builder.ConnectComponents())
	require.NoError(t, err)
	comps, err := dfs.ConnectedComponents(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
}

func TestBipartite(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Bipartite(3, 4, 1))
	require.NoError(t, err)
	require.Equal(t, 7, g.NodeCount())
	require.Equal(t, 12, g.EdgeCount())
	for _, e := range g.Edges() {
		require.Less(t, int(e.From), 3)
		require.GreaterOrEqual(t, int(e.To), 3)
	}

	_, err = builder.BuildGraph(nil, builder.Bipartite(3, 4, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, builder.Bipartite(0, 4, 1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, builder.Bipartite(2, 2, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	g, err = builder.BuildGraph(seeded(11), builder.Bipartite(20, 30, 0.1))
	require.NoError(t, err)
	require.Equal(t, 50, g.NodeCount())
	for _, e := range g.Edges() {
		require.Less(t, int(e.From), 20)
		require.GreaterOrEqual(t, int(e.To), 20)
	}
}
