// Package whca implements Windowed Cooperative A* (C6): a bounded-depth
// space-time search that finds an agent's next depth moves subject to the
// shared reservation table, guided by a true-distance heuristic (RRA*) to
// the agent's current goal cell.
//
// Unlike plain A*, the search space here is space-time nodes (STN), not
// cells: a node is only a valid neighbor if both the arrival tick and the
// tick after it are reservable by the searching agent, which is what
// guarantees the resulting path is not just collision-free at arrival but
// also leaves a one-tick buffer for the agent already occupying a cell to
// clear it — the "double reservation" rule from package reservation.
package whca

import (
	"errors"

	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/reservation"
)

// ErrNoWindow is returned when no sequence of depth reservable moves exists
// from start, even accounting for the self-preemption fallback.
var ErrNoWindow = errors.New("whca: no reservable path within window")

type stnItem struct {
	stn reservation.STN
	f   int
}

type stnPQ []stnItem

func (pq stnPQ) Len() int            { return len(pq) }
func (pq stnPQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq stnPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *stnPQ) Push(x interface{}) { *pq = append(*pq, x.(stnItem)) }
func (pq *stnPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

func reconstructPath(pred map[reservation.STN]reservation.STN, last reservation.STN) []reservation.STN {
	path := []reservation.STN{last}
	curr := last
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

func toCell(pos int) grid.Cell { return grid.Cell(pos) }
