// Package pathfind provides single-agent search over a grid.Grid: plain A*
// (C3), a resumable reverse search for amortized true-distance heuristics
// (RRA*, C4), and a multi-source search to the nearest frontier cell (C5).
//
// All three share one priority-queue idiom: a container/heap min-heap keyed
// by f-cost, with lazy decrease-key (stale entries are pushed rather than
// updated in place, and skipped on pop once their cell is closed) — the same
// approach used throughout this module's graph search code.
package pathfind

import (
	"errors"

	"github.com/katalvlaran/evacplan/grid"
)

// Cell aliases grid.Cell so callers of this package need not import grid
// directly just to name a cell id.
type Cell = grid.Cell

// ErrUnreachable is returned by RRA.Distance when no path exists from the
// search's start cell to the requested target.
var ErrUnreachable = errors.New("pathfind: target unreachable from start")

// ErrNoFrontier reports that the grid has no frontier cells, or none is
// reachable from the agent's position. ClosestFrontier itself signals this
// with ok == false; its callers return ErrNoFrontier.
var ErrNoFrontier = errors.New("pathfind: no reachable frontier cell")

// pqItem is one entry in a cellPQ: a grid.Cell and its current f-cost.
type pqItem struct {
	cell Cell
	f    int
}

// cellPQ is a min-heap of pqItem ordered by ascending f-cost. Decrease-key is
// lazy: callers push a fresh entry with the improved f-cost and leave the
// stale one in place; it is discarded when popped if its cell is already
// closed.
type cellPQ []pqItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// reconstructPath walks pred backwards from goal until a cell with no
// recorded predecessor (the search's source), then reverses the result.
// Shared by AStar and ClosestFrontier: in both cases the source cell(s)
// are seeded into pred-less, so this single walk serves both.
func reconstructPath(pred map[Cell]Cell, goal Cell) []Cell {
	path := []Cell{goal}
	curr := goal
	for {
		p, ok := pred[curr]
		if !ok {
			break
		}
		path = append(path, p)
		curr = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
