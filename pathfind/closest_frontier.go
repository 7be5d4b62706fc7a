package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/evacplan/grid"
)

// ClosestFrontier runs a multi-source A* seeded from every frontier cell of
// g simultaneously, searching toward agentPos. It returns the nearest
// reachable frontier cell, the path length from that cell to agentPos (in
// cells, counting both ends, so a path of length 1 means agentPos is itself
// a frontier cell), and whether any frontier cell was reachable at all.
//
// Seeding every frontier cell at g-cost 0 and searching toward a single
// target is equivalent to, and cheaper than, running a separate A* from
// agentPos to each frontier cell and keeping the minimum.
func ClosestFrontier(g *grid.Grid, agentPos Cell) (nearest Cell, steps int, ok bool) {
	frontier := g.Frontier()
	if len(frontier) == 0 {
		return 0, 0, false
	}

	open := make(cellPQ, 0, len(frontier))
	gCost := make(map[Cell]int, len(frontier))
	pred := make(map[Cell]Cell)
	closed := make(map[Cell]bool)
	for _, f := range frontier {
		gCost[f] = 0
		heap.Push(&open, pqItem{cell: f, f: g.ManhattanDistance(agentPos, f)})
	}

	for open.Len() > 0 {
		item := heap.Pop(&open).(pqItem)
		curr := item.cell
		if closed[curr] {
			continue
		}
		closed[curr] = true
		if curr == agentPos {
			path := reconstructPath(pred, agentPos)

			return path[0], len(path), true
		}

		for _, n := range g.Neighbors(curr) {
			if closed[n] {
				continue
			}
			candidate := gCost[curr] + 1
			if old, seen := gCost[n]; seen && candidate >= old {
				continue
			}
			gCost[n] = candidate
			pred[n] = curr
			heap.Push(&open, pqItem{cell: n, f: candidate + g.ManhattanDistance(n, agentPos)})
		}
	}

	return 0, 0, false
}
