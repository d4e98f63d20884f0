package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/multicut/core"
)

// frame is one node on the explicit DFS stack together with its
// neighbour cursor.
type frame struct {
	id    core.NodeID
	depth int
	nbrs  []core.NodeID
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack *arraystack.Stack
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components in ascending root order; otherwise,
// it starts only from startID.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, startID core.NodeID, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !dopts.FullTraversal && !g.HasNode(startID) {
		return nil, ErrStartVertexNotFound
	}

	nodes := g.Nodes()
	res := &DFSResult{
		Order:   make([]core.NodeID, 0, len(nodes)),
		Depth:   make(map[core.NodeID]int, len(nodes)),
		Parent:  make(map[core.NodeID]core.NodeID, len(nodes)),
		Visited: make(map[core.NodeID]bool, len(nodes)),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res, stack: arraystack.New()}

	if dopts.FullTraversal {
		for _, v := range nodes {
			if res.Visited[v] {
				continue
			}
			if err := walker.traverse(v); err != nil {
				return res, err
			}
		}
	} else if err := walker.traverse(startID); err != nil {
		return res, err
	}
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse explores the tree rooted at root.
func (w *dfsWalker) traverse(root core.NodeID) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}
	for !w.stack.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			w.stack.Clear()
			return w.opts.Ctx.Err()
		default:
		}

		top, _ := w.stack.Peek()
		f := top.(*frame)
		if f.next == len(f.nbrs) {
			w.stack.Pop()
			if err := w.finish(f.id); err != nil {
				return err
			}
			continue
		}
		nid := f.nbrs[f.next]
		f.next++
		if w.res.Visited[nid] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.opts.MaxDepth >= 0 && f.depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nid] = f.id
		if err := w.discover(nid, f.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// discover marks id visited, runs the pre-order hook and pushes its frame.
func (w *dfsWalker) discover(id core.NodeID, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			w.stack.Clear()
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}
	nbrs, err := w.graph.NeighborIDs(id)
	if err != nil {
		w.res.Order = nil
		w.stack.Clear()
		return fmt.Errorf("dfs: NeighborIDs(%d): %w", id, err)
	}
	w.stack.Push(&frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}

// finish runs the post-order hook and records id in Order.
func (w *dfsWalker) finish(id core.NodeID) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			w.stack.Clear()
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
