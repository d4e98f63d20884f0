// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/multicut/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue *linkedlistqueue.Queue
	res   *Result

	// targets, when non-nil, stops the walk at the first dequeued member.
	targets map[core.NodeID]bool
	hit     core.NodeID
	found   bool
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, startID core.NodeID, opts ...Option) (*Result, error) {
	w, err := newWalker(g, startID, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// newWalker validates input, resolves options and seeds the queue with startID.
func newWalker(g *core.Graph, startID core.NodeID, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: linkedlistqueue.New(),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	w.res.Depth[startID] = 0
	w.queue.Enqueue(queueItem{id: startID})

	return w, nil
}

// loop processes the queue until empty, a target is hit, an error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v, _ := w.queue.Dequeue()
		item := v.(queueItem)
		if err := w.visit(item); err != nil {
			return err
		}
		if w.found {
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the node in Order, calls OnVisit and checks the target set.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	if item.depth > 0 && w.targets[item.id] {
		w.hit, w.found = item.id, true
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Depth[nbr] = nextDepth
		w.res.Parent[nbr] = item.id
		w.queue.Enqueue(queueItem{id: nbr, depth: nextDepth})
	}

	return nil
}
