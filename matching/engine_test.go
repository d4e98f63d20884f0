// SPDX-License-Identifier: MIT

package matching_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/multicut/builder"
	"github.com/katalvlaran/multicut/core"
	"github.com/katalvlaran/multicut/counter"
	"github.com/katalvlaran/multicut/flow"
	"github.com/katalvlaran/multicut/matching"
)

// adjacency is a minimal Graph implementation backed by a map.
type adjacency map[core.NodeID][]core.NodeID

func (a adjacency) Nodes() []core.NodeID {
	out := make([]core.NodeID, 0, len(a))
	for v := range a {
		out = append(out, v)
	}
	return out
}

func (a adjacency) NeighborIDs(id core.NodeID) ([]core.NodeID, error) {
	nbrs, ok := a[id]
	if !ok {
		return nil, errors.New("unknown node")
	}
	return nbrs, nil
}

// nineNodes is the 9-node fixture whose maximum matching has 4 edges.
func nineNodes(t testing.TB) *core.Graph {
	return graphOf(t,
		[2]core.NodeID{0, 1}, [2]core.NodeID{0, 3}, [2]core.NodeID{1, 2}, [2]core.NodeID{1, 3},
		[2]core.NodeID{1, 4}, [2]core.NodeID{2, 5}, [2]core.NodeID{3, 4}, [2]core.NodeID{3, 6},
		[2]core.NodeID{3, 7}, [2]core.NodeID{4, 5}, [2]core.NodeID{4, 7}, [2]core.NodeID{4, 8},
		[2]core.NodeID{6, 7}, [2]core.NodeID{7, 8},
	)
}

// sixteenNodes is a 16-node fixture with a perfect matching.
func sixteenNodes(t testing.TB) *core.Graph {
	return graphOf(t,
		[2]core.NodeID{0, 1}, [2]core.NodeID{0, 13}, [2]core.NodeID{1, 4}, [2]core.NodeID{1, 15},
		[2]core.NodeID{2, 13}, [2]core.NodeID{2, 3}, [2]core.NodeID{2, 6}, [2]core.NodeID{3, 4},
		[2]core.NodeID{3, 5}, [2]core.NodeID{4, 5}, [2]core.NodeID{6, 7}, [2]core.NodeID{7, 8},
		[2]core.NodeID{7, 14}, [2]core.NodeID{8, 11}, [2]core.NodeID{8, 12}, [2]core.NodeID{9, 14},
		[2]core.NodeID{9, 10}, [2]core.NodeID{10, 12}, [2]core.NodeID{11, 12},
	)
}

// bruteForce returns the maximum matching size of g by exhaustive search.
func bruteForce(g *core.Graph) int {
	nodes := g.Nodes()
	used := make(map[core.NodeID]bool, len(nodes))
	var best func(i int) int
	best = func(i int) int {
		for i < len(nodes) && used[nodes[i]] {
			i++
		}
		if i >= len(nodes) {
			return 0
		}
		v := nodes[i]
		used[v] = true
		res := best(i + 1)
		nbrs, _ := g.NeighborIDs(v)
		for _, u := range nbrs {
			if used[u] {
				continue
			}
			used[u] = true
			if r := 1 + best(i+1); r > res {
				res = r
			}
			used[u] = false
		}
		used[v] = false
		return res
	}
	return best(0)
}

// requireValid asserts m is a matching of g.
func requireValid(t *testing.T, g *core.Graph, m *matching.Matching) {
	t.Helper()
	require.NoError(t, m.Validate(g))
	seen := make(map[core.NodeID]bool)
	for _, e := range m.Edges() {
		require.False(t, seen[e.From], "node %d matched twice", e.From)
		require.False(t, seen[e.To], "node %d matched twice", e.To)
		seen[e.From], seen[e.To] = true, true
	}
}

func TestFindMaximumMatching_Fixtures(t *testing.T) {
	star, err := builder.BuildGraph(nil, builder.Star(99))
	require.NoError(t, err)

	cases := []struct {
		name string
		g    *core.Graph
		want int
	}{
		{"nine nodes", nineNodes(t), 4},
		{"star with 99 leaves", star, 1},
		{"sixteen nodes", sixteenNodes(t), 8},
		{"empty", core.NewGraph(), 0},
		{"isolated nodes", func() *core.Graph { g := core.NewGraph(); g.AddNodes(1, 2, 3); return g }(), 0},
		{"pentagon", func() *core.Graph {
			g, err := builder.BuildGraph(nil, builder.Cycle(5))
			require.NoError(t, err)
			return g
		}(), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matching.FindMaximumMatching(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Size())
			requireValid(t, tc.g, m)
		})
	}
}

func TestFindMaximumMatching_Errors(t *testing.T) {
	_, err := matching.FindMaximumMatching(nil)
	require.ErrorIs(t, err, matching.ErrNilGraph)

	var typedNil *core.Graph
	_, err = matching.FindMaximumMatching(typedNil)
	require.ErrorIs(t, err, matching.ErrNilGraph)

	_, err = matching.FindMaximumMatching(core.NewGraph(core.WithDirected(true)))
	require.ErrorIs(t, err, matching.ErrInvalidGraph)

	_, err = matching.FindMaximumMatching(adjacency{0: {0}})
	require.ErrorIs(t, err, matching.ErrInvalidGraph)

	_, err = matching.FindMaximumMatching(adjacency{0: {1}})
	require.ErrorIs(t, err, matching.ErrInvalidGraph)

	_, err = matching.HasMatchingOfAtLeast(nil, 1)
	require.ErrorIs(t, err, matching.ErrNilGraph)

	_, err = matching.MaximizeMatching(nineNodes(t), nil)
	require.ErrorIs(t, err, matching.ErrNilMatching)

	_, err = matching.FindAugmentingPath(nineNodes(t), nil)
	require.ErrorIs(t, err, matching.ErrNilMatching)
}

func TestFindMaximumMatching_GraphInterface(t *testing.T) {
	// Pentagon given as a plain adjacency map, neighbours unsorted.
	g := adjacency{
		0: {4, 1}, 1: {2, 0}, 2: {1, 3}, 3: {4, 2}, 4: {3, 0},
	}
	m, err := matching.FindMaximumMatching(g)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())
	require.NoError(t, m.Validate(g))
}

func TestMaximizeMatching(t *testing.T) {
	g := nineNodes(t)
	// 1-3 and 4-7 block a greedy extension.
	start := matchingOf(t, [2]core.NodeID{1, 3}, [2]core.NodeID{4, 7})

	m, err := matching.MaximizeMatching(g, start)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Size())
	requireValid(t, g, m)
	assert.Equal(t, 2, start.Size(), "input matching must be left untouched")

	_, err = matching.MaximizeMatching(g, matchingOf(t, [2]core.NodeID{0, 8}))
	require.ErrorIs(t, err, matching.ErrInvalidMatching)
}

func TestHasMatchingOfAtLeast(t *testing.T) {
	g := nineNodes(t)
	for k, want := range map[int]bool{-3: true, 0: true, 1: true, 4: true, 5: false} {
		got, err := matching.HasMatchingOfAtLeast(g, k)
		require.NoError(t, err)
		assert.Equal(t, want, got, "k=%d", k)
	}
}

func TestHasMatchingOfAtLeast_StopsEarly(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(10))
	require.NoError(t, err)

	// Greedy already covers the path perfectly: no search needed.
	ops := counter.New()
	ok, err := matching.HasMatchingOfAtLeast(g, 3, matching.WithCounter(ops))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, ops.Value(matching.OpSearch))

	// Beyond ⌊|V|/2⌋: answered without seeding or searching.
	ops.Reset()
	ok, err = matching.HasMatchingOfAtLeast(g, 6, matching.WithCounter(ops))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, ops.Snapshot())
}

func TestHasMatchingOfAtLeast_FalseAfterExhaustion(t *testing.T) {
	star, err := builder.BuildGraph(nil, builder.Star(5))
	require.NoError(t, err)

	ops := counter.New()
	ok, err := matching.HasMatchingOfAtLeast(star, 2, matching.WithCounter(ops))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(1), ops.Value(matching.OpSearch))
	assert.Zero(t, ops.Value(matching.OpAugmentation))
}

// oracleSuite compares the engine against exhaustive search on small
// random graphs.
type oracleSuite struct {
	suite.Suite
}

func TestOracleSuite(t *testing.T) {
	suite.Run(t, new(oracleSuite))
}

func (s *oracleSuite) TestAgainstBruteForce() {
	for seed := int64(0); seed < 150; seed++ {
		n := 2 + int(seed%11)
		p := []float64{0.15, 0.3, 0.5, 0.8}[seed%4]
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.ErdosRenyi(n, p))
		s.Require().NoError(err)

		m, err := matching.FindMaximumMatching(g)
		s.Require().NoError(err, "seed %d", seed)
		s.Equal(bruteForce(g), m.Size(), "seed %d n=%d p=%.2f", seed, n, p)
		s.Require().NoError(m.Validate(g))

		path, err := matching.FindAugmentingPath(g, m)
		s.Require().NoError(err)
		s.Nil(path, "maximum matching must have no augmenting path (seed %d)", seed)
	}
}

func (s *oracleSuite) TestTreesAgainstBruteForce() {
	for seed := int64(0); seed < 30; seed++ {
		for _, con := range []builder.Constructor{builder.PruferTree(12), builder.Caterpillar(12)} {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, con)
			s.Require().NoError(err)
			m, err := matching.FindMaximumMatching(g)
			s.Require().NoError(err)
			s.Equal(bruteForce(g), m.Size(), "seed %d", seed)
		}
	}
}

func (s *oracleSuite) TestMonotonicAugmentation() {
	for seed := int64(0); seed < 40; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.ErdosRenyi(12, 0.35))
		s.Require().NoError(err)

		m, err := matching.NewMatching()
		s.Require().NoError(err)
		for {
			path, err := matching.FindAugmentingPath(g, m)
			s.Require().NoError(err)
			if path == nil {
				break
			}
			s.True(matching.IsAugmentingPath(path, m))
			for _, e := range path.Edges() {
				s.True(g.HasEdge(e.From, e.To), "path edge %s not in graph", e)
			}
			before := m.Size()
			s.Require().NoError(matching.Augment(m, path))
			s.Equal(before+1, m.Size())
		}
		s.Equal(bruteForce(g), m.Size(), "seed %d", seed)
	}
}

func (s *oracleSuite) TestBipartiteAgainstFlow() {
	cons := []builder.Constructor{
		builder.Bipartite(40, 55, 0.05),
		builder.Bipartite(60, 60, 0.03),
		builder.PruferTree(150),
		builder.Caterpillar(120),
		builder.BinaryTree(127),
	}
	for seed := int64(0); seed < 8; seed++ {
		for i, con := range cons {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, con)
			s.Require().NoError(err)

			want, err := flow.BipartiteMatchingSize(g, flow.FlowOptions{})
			s.Require().NoError(err)
			m, err := matching.FindMaximumMatching(g)
			s.Require().NoError(err)
			s.Equal(want, m.Size(), "constructor %d seed %d", i, seed)
			s.Require().NoError(m.Validate(g))
		}
	}
}

func TestLargeRandomGraphs(t *testing.T) {
	if testing.Short() {
		t.Skip("large instances")
	}
	connected := func(n int, p float64, seed int64) *core.Graph {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)},
			builder.ErdosRenyi(n, p), builder.ConnectComponents())
		require.NoError(t, err)
		return g
	}

	ok, err := matching.HasMatchingOfAtLeast(connected(500, 0.2, 3), 150)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matching.HasMatchingOfAtLeast(connected(500, 0.1, 3), 300)
	require.NoError(t, err)
	assert.False(t, ok)

	for _, seed := range []int64{1, 2} {
		t.Run(fmt.Sprintf("perfect/%d", seed), func(t *testing.T) {
			g := connected(200, 0.3, seed)
			m, err := matching.FindMaximumMatching(g)
			require.NoError(t, err)
			assert.Equal(t, 100, m.Size())
			requireValid(t, g, m)
		})
	}

	sparse := connected(300, 0.008, 5)
	m, err := matching.FindMaximumMatching(sparse)
	require.NoError(t, err)
	requireValid(t, sparse, m)
	path, err := matching.FindAugmentingPath(sparse, m)
	require.NoError(t, err)
	assert.Nil(t, path)
}
