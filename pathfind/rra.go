package pathfind

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/evacplan/grid"
)

// RRA is a Reverse Resumable A* search rooted at a fixed start cell. Each
// call to Distance retargets the same underlying frontier at a new cell and
// resumes the search instead of restarting it: once a cell is closed its
// distance is an O(1) lookup for the lifetime of the RRA, and cells explored
// while answering one Distance call are reused by every later call. This
// amortizes the true-distance heuristic WHCA* needs at every expansion.
type RRA struct {
	g      *grid.Grid
	start  Cell
	open   cellPQ
	closed map[Cell]bool
	gCost  map[Cell]int
	pred   map[Cell]Cell
	goal   Cell
}

// NewRRA constructs an RRA search rooted at start. No search work happens
// until the first call to Distance.
func NewRRA(g *grid.Grid, start Cell) *RRA {
	r := &RRA{
		g:      g,
		start:  start,
		closed: make(map[Cell]bool),
		gCost:  map[Cell]int{start: 0},
		pred:   make(map[Cell]Cell),
		goal:   start,
	}
	heap.Push(&r.open, pqItem{cell: start, f: 0})

	return r
}

// Distance returns the shortest-path distance from r's start cell to target.
// If target has not yet been closed, the search resumes from wherever it
// left off, until target is closed or the frontier is exhausted. Nodes
// pushed from then on are weighted toward target; entries already queued
// keep the f-cost they were pushed with.
func (r *RRA) Distance(target Cell) (int, error) {
	if !r.closed[target] {
		r.goal = target
		if !r.resume() {
			return 0, fmt.Errorf("%w: %v from %v", ErrUnreachable, target, r.start)
		}
	}

	return r.gCost[target], nil
}

// resume drains the shared frontier until r.goal is closed or the frontier
// is empty. Previously closed cells and their g-costs are never revisited;
// only the as-yet-unexplored suffix of the search is actually done here.
func (r *RRA) resume() bool {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(pqItem)
		curr := item.cell
		if r.closed[curr] {
			continue
		}
		r.closed[curr] = true

		// Expand before the goal check so a closed goal still feeds its
		// neighbors into the frontier that later calls resume from.
		for _, n := range r.g.Neighbors(curr) {
			if r.closed[n] {
				continue
			}
			candidate := r.gCost[curr] + 1
			if old, seen := r.gCost[n]; seen && candidate >= old {
				continue
			}
			r.gCost[n] = candidate
			r.pred[n] = curr
			heap.Push(&r.open, pqItem{cell: n, f: candidate + r.g.ManhattanDistance(n, r.goal)})
		}
		if curr == r.goal {
			return true
		}
	}

	return false
}
