package flow

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/multicut/core"
)

// residual holds remaining capacities; reverse arcs start at 0.
type residual map[core.NodeID]map[core.NodeID]int

// Dinic computes the maximum flow from source to sink in the directed
// unit-capacity network g.
//
// Steps:
//  1. Build a residual map with capacity 1 per arc and 0 per reverse arc.
//  2. BFS from source assigns levels; stop when sink is unreachable.
//  3. DFS pushes blocking flow along level-increasing arcs, remembering a
//     per-node cursor so dead arcs are not retried within a phase.
//
// Errors: ErrGraphNil, ErrNotDirected, ErrSourceNotFound, ErrSinkNotFound,
// or the context error.
func Dinic(g *core.Graph, source, sink core.NodeID, opts FlowOptions) (int, error) {
	opts.normalize()
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.Directed() {
		return 0, ErrNotDirected
	}
	if !g.HasNode(source) {
		return 0, ErrSourceNotFound
	}
	if !g.HasNode(sink) {
		return 0, ErrSinkNotFound
	}
	if source == sink {
		return 0, nil
	}

	res := make(residual, g.NodeCount())
	for _, v := range g.Nodes() {
		res[v] = make(map[core.NodeID]int)
	}
	for _, e := range g.Edges() {
		res[e.From][e.To]++
		if _, ok := res[e.To][e.From]; !ok {
			res[e.To][e.From] = 0
		}
	}
	order := make(map[core.NodeID][]core.NodeID, len(res))
	for u, nbrs := range res {
		for v := range nbrs {
			order[u] = append(order[u], v)
		}
	}

	total := 0
	for {
		if err := opts.Ctx.Err(); err != nil {
			return total, err
		}
		level := levels(res, source)
		if _, ok := level[sink]; !ok {
			return total, nil
		}
		iter := make(map[core.NodeID]int, len(level))
		for {
			pushed := push(res, order, level, iter, source, sink)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}
}

// levels assigns BFS distances from source over arcs with spare capacity.
func levels(res residual, source core.NodeID) map[core.NodeID]int {
	level := map[core.NodeID]int{source: 0}
	queue := linkedlistqueue.New()
	queue.Enqueue(source)
	for !queue.Empty() {
		raw, _ := queue.Dequeue()
		u := raw.(core.NodeID)
		for v, c := range res[u] {
			if _, seen := level[v]; c > 0 && !seen {
				level[v] = level[u] + 1
				queue.Enqueue(v)
			}
		}
	}

	return level
}

// push sends one unit along a level-increasing path, or returns 0.
func push(res residual, order map[core.NodeID][]core.NodeID, level map[core.NodeID]int,
	iter map[core.NodeID]int, u, sink core.NodeID) int {
	if u == sink {
		return 1
	}
	for ; iter[u] < len(order[u]); iter[u]++ {
		v := order[u][iter[u]]
		lv, ok := level[v]
		if res[u][v] <= 0 || !ok || lv != level[u]+1 {
			continue
		}
		if push(res, order, level, iter, v, sink) > 0 {
			res[u][v]--
			res[v][u]++
			return 1
		}
	}

	return 0
}
