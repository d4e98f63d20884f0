package bfs

import (
	"fmt"

	"github.com/katalvlaran/multicut/core"
)

// ShortestPathToSet returns a shortest unweighted path from source to the
// nearest node of targets, as the node sequence source, ..., target.
// The source itself never counts as a target, so the returned path has at
// least one edge. On directed graphs only arcs are followed forward.
//
// Among equally short paths the one found first in sorted-neighbour order wins.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNoPath when no target is reachable, or a wrapped OnVisit error.
//
// Complexity: O(V + E) time, O(V) memory.
func ShortestPathToSet(g *core.Graph, source core.NodeID, targets map[core.NodeID]bool, opts ...Option) ([]core.NodeID, error) {
	w, err := newWalker(g, source, opts)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: empty target set", ErrNoPath)
	}
	w.targets = targets
	if err = w.loop(); err != nil {
		return nil, err
	}
	if !w.found {
		return nil, fmt.Errorf("%w: from %d", ErrNoPath, source)
	}

	return w.res.PathTo(w.hit)
}
