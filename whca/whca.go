package whca

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/pathfind"
	"github.com/katalvlaran/evacplan/reservation"
)

// Search runs Windowed Cooperative A* from start for exactly depth ticks,
// returning the space-time path start..start+depth (inclusive, so depth+1
// nodes long). g and table ground the search in the shared grid and the
// reservations every agent writes into; rra supplies the admissible,
// consistent true-distance estimate to goal that makes the search efficient
// (see package pathfind's RRA). currentPos is the agent's actual present
// cell: per the neighbor rule below, an agent may always break another
// agent's reservation of the cell it is physically standing on, at a cost
// penalty, since staying in place can never collide with anyone who has not
// already moved off that cell.
func Search(g *grid.Grid, table *reservation.Table, agentID, priority int, rra *pathfind.RRA, start reservation.STN, goal grid.Cell, depth int, currentPos grid.Cell) ([]reservation.STN, error) {
	h0, err := rra.Distance(toCell(start.Pos))
	if err != nil {
		return nil, err
	}

	open := stnPQ{{stn: start, f: h0}}
	heap.Init(&open)
	closed := make(map[reservation.STN]bool)
	gCost := map[reservation.STN]int{start: 0}
	pred := make(map[reservation.STN]reservation.STN)

	targetT := start.T + depth

	for open.Len() > 0 {
		item := heap.Pop(&open).(stnItem)
		curr := item.stn
		if closed[curr] {
			continue
		}
		closed[curr] = true
		if curr.T == targetT {
			return reconstructPath(pred, curr), nil
		}

		for _, step := range neighbors(g, table, agentID, priority, currentPos, curr) {
			if closed[step.stn] {
				continue
			}
			candidate := gCost[curr] + step.cost
			if old, seen := gCost[step.stn]; seen && candidate >= old {
				continue
			}
			gCost[step.stn] = candidate
			pred[step.stn] = curr
			h, err := rra.Distance(toCell(step.stn.Pos))
			if err != nil {
				return nil, err
			}
			heap.Push(&open, stnItem{stn: step.stn, f: candidate + h})
		}
	}

	return nil, fmt.Errorf("%w: agent %d from %v depth %d", ErrNoWindow, agentID, start, depth)
}

type neighborStep struct {
	stn  reservation.STN
	cost int
}

// neighbors enumerates the space-time successors of n reservable by agent
// at priority: moving to an adjacent cell costs 1 and requires both the
// arrival node and the node one tick after it (the buffer for whoever is
// there now to clear it) to be reservable. Waiting in place costs 1 under
// the same rule; if that is blocked but n's position is where the agent is
// physically standing right now, waiting is still allowed at cost 2 — the
// agent preempting its own current cell's reservation.
func neighbors(g *grid.Grid, table *reservation.Table, agentID, priority int, currentPos grid.Cell, n reservation.STN) []neighborStep {
	var out []neighborStep

	pos := toCell(n.Pos)
	for _, adj := range g.Neighbors(pos) {
		rn := reservation.STN{Pos: int(adj), T: n.T + 1}
		if table.ReservableBy(rn, agentID, priority) && table.ReservableBy(rn.Incremented(), agentID, priority) {
			out = append(out, neighborStep{stn: rn, cost: 1})
		}
	}

	wait := n.Incremented()
	if table.ReservableBy(wait, agentID, priority) && table.ReservableBy(wait.Incremented(), agentID, priority) {
		out = append(out, neighborStep{stn: wait, cost: 1})
	} else if pos == currentPos {
		out = append(out, neighborStep{stn: wait, cost: 2})
	}

	return out
}
