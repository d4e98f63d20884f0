// SPDX-License-Identifier: MIT

package matching

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/multicut/core"
)

// Blossom is an odd M-alternating cycle shrunk into the pseudo-node ID.
//
// Cycle lists the members in cycle order starting at the base:
// Cycle[0] == Base, Cycle[2k-1]–Cycle[2k] are matching edges, and both
// cycle edges at the base (to Cycle[1] and Cycle[len-1]) are not.
type Blossom struct {
	ID    core.NodeID
	Base  core.NodeID
	Cycle []core.NodeID
}

// Contains reports whether v is a member of b.
func (b Blossom) Contains(v core.NodeID) bool {
	for _, u := range b.Cycle {
		if u == v {
			return true
		}
	}

	return false
}

// DetectBlossom looks for the first node that occurs twice in walk. If
// walk[j] repeats walk[i] (i < j), the members walk[i:j] form a blossom with
// base walk[i], which becomes pseudo-node id. ok is false for a simple walk.
//
// For walks produced by FindAlternatingWalk, i is even and j-i is odd.
func DetectBlossom(walk Path, id core.NodeID) (b Blossom, ok bool) {
	first := make(map[core.NodeID]int, len(walk))
	for j, v := range walk {
		i, seen := first[v]
		if !seen {
			first[v] = j
			continue
		}
		cycle := make([]core.NodeID, j-i)
		copy(cycle, walk[i:j])

		return Blossom{ID: id, Base: walk[i], Cycle: cycle}, true
	}

	return Blossom{}, false
}

// validate checks b against g and m.
func (b Blossom) validate(g *core.Graph, m *Matching) error {
	n := len(b.Cycle)
	if n < 3 || n%2 == 0 {
		return defect("blossom %d has %d members, want an odd count >= 3", b.ID, n)
	}
	if b.Cycle[0] != b.Base {
		return defect("blossom %d: cycle starts at %d, base is %d", b.ID, b.Cycle[0], b.Base)
	}
	if g.HasNode(b.ID) {
		return defect("blossom id %d is already a node", b.ID)
	}
	for i, v := range b.Cycle {
		next := b.Cycle[(i+1)%n]
		if !g.HasEdge(v, next) {
			return defect("blossom %d: no edge (%d,%d)", b.ID, v, next)
		}
		if i%2 == 1 && !m.Contains(v, next) {
			return defect("blossom %d: (%d,%d) should be matched", b.ID, v, next)
		}
	}
	if mate, ok := m.Mate(b.Base); ok && b.Contains(mate) {
		return defect("blossom %d: base %d matched inside the cycle", b.ID, b.Base)
	}

	return nil
}

// Contract shrinks b in g. Every edge with an endpoint in b is redirected
// to b.ID; self-loops and duplicate edges are dropped. The induced matching
// drops the matching edges inside b and moves the base's outer matching
// edge, if any, to b.ID. g and m are not modified.
//
// Complexity: O(V + E).
func Contract(g *core.Graph, m *Matching, b Blossom, opts ...Option) (*core.Graph, *Matching, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if m == nil {
		return nil, nil, ErrNilMatching
	}

	return contract(g, m, b, resolve(opts))
}

func contract(g *core.Graph, m *Matching, b Blossom, o Options) (*core.Graph, *Matching, error) {
	if err := b.validate(g, m); err != nil {
		return nil, nil, err
	}

	inside := make(map[core.NodeID]bool, len(b.Cycle))
	for _, v := range b.Cycle {
		inside[v] = true
	}
	rename := func(v core.NodeID) core.NodeID {
		if inside[v] {
			return b.ID
		}
		return v
	}

	out := core.NewGraph()
	out.AddNode(b.ID)
	for _, v := range g.Nodes() {
		if !inside[v] {
			out.AddNode(v)
		}
	}
	for _, e := range g.Edges() {
		u, v := rename(e.From), rename(e.To)
		if u == v || out.HasEdge(u, v) {
			continue
		}
		if err := out.AddEdge(u, v); err != nil {
			return nil, nil, defect("contract edge %s: %v", e, err)
		}
	}

	induced := &Matching{mate: make(map[core.NodeID]core.NodeID, len(m.mate))}
	for _, e := range m.Edges() {
		u, v := rename(e.From), rename(e.To)
		if u == v {
			continue
		}
		if err := induced.Add(u, v); err != nil {
			return nil, nil, defect("induced matching edge %s: %v", e, err)
		}
	}

	o.Counter.Add(OpContraction, 1)
	o.Logger.Debug("blossom contracted",
		zap.Int("pseudo_node", int(b.ID)),
		zap.Int("base", int(b.Base)),
		zap.Int("members", len(b.Cycle)),
		zap.Int("nodes_after", out.NodeCount()),
	)

	return out, induced, nil
}

// Expand replaces the pseudo-node b.ID in path, an augmenting path of the
// graph contracted from g, by a walk through the blossom, yielding an
// augmenting path of g with respect to m (the matching before contraction).
// A path that does not visit b.ID is returned as a copy.
//
// The entry node y outside the blossom attaches to z, the first member in
// cycle order adjacent to y. From z = Cycle[k] the walk goes to the base
// backwards (Cycle[k], …, Cycle[0]) when k is even and forwards
// (Cycle[k], …, Cycle[len-1], Cycle[0]) when k is odd, so that it starts
// with a matching edge and has even length.
//
//   - b.ID at an end: the base must be exposed; the walk ends at the base.
//   - b.ID inside: one neighbour on the path is mate(base); the walk is
//     spliced in so that base–mate(base) follows it.
func Expand(g *core.Graph, m *Matching, b Blossom, path Path, opts ...Option) (Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if m == nil {
		return nil, ErrNilMatching
	}

	return expand(g, m, b, path, resolve(opts))
}

func expand(g *core.Graph, m *Matching, b Blossom, path Path, o Options) (Path, error) {
	idx := path.indexOf(b.ID)
	if idx < 0 {
		out := make(Path, len(path))
		copy(out, path)
		return out, nil
	}
	if len(path) < 2 {
		return nil, defect("path %v through blossom %d is too short", path, b.ID)
	}

	reversed := false
	flip := func() {
		path = path.Reversed()
		idx = len(path) - 1 - idx
		reversed = !reversed
	}
	if idx == 0 {
		flip()
	}

	mate, baseMatched := m.Mate(b.Base)
	atEnd := idx == len(path)-1
	if atEnd {
		if baseMatched {
			return nil, defect("blossom %d ends the path but base %d is matched to %d", b.ID, b.Base, mate)
		}
	} else {
		if !baseMatched {
			return nil, defect("blossom %d inside the path but base %d is exposed", b.ID, b.Base)
		}
		if path[idx-1] == mate {
			flip()
		}
		if path[idx+1] != mate {
			return nil, defect("blossom %d: neither path neighbour is mate %d of base %d", b.ID, mate, b.Base)
		}
	}

	y := path[idx-1]
	k := -1
	for i, v := range b.Cycle {
		if g.HasEdge(y, v) {
			k = i
			break
		}
	}
	if k < 0 {
		return nil, defect("blossom %d: entry node %d has no neighbour in the cycle", b.ID, y)
	}

	out := make(Path, 0, len(path)+len(b.Cycle))
	out = append(out, path[:idx]...)
	out = append(out, walkToBase(b.Cycle, k)...)
	if !atEnd {
		out = append(out, path[idx+1:]...)
	}
	if reversed {
		out = out.Reversed()
	}

	if !IsAugmentingPath(out, m) {
		return nil, defect("expanding blossom %d gave %v, not augmenting", b.ID, out)
	}
	o.Counter.Add(OpExpansion, 1)
	o.Logger.Debug("blossom expanded",
		zap.Int("pseudo_node", int(b.ID)),
		zap.Bool("at_end", atEnd),
		zap.Int("path_len", out.Len()),
	)

	return out, nil
}

// walkToBase returns the even-length walk from cycle[k] to cycle[0] that
// starts with a matching edge.
func walkToBase(cycle []core.NodeID, k int) []core.NodeID {
	out := make([]core.NodeID, 0, len(cycle))
	if k%2 == 0 {
		for i := k; i >= 0; i-- {
			out = append(out, cycle[i])
		}
		return out
	}
	out = append(out, cycle[k:]...)

	return append(out, cycle[0])
}
