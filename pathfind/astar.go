package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/evacplan/grid"
)

// AStar finds a shortest path from start to goal over g's 4-connected
// adjacency, using Manhattan distance as an admissible, consistent
// heuristic. Returns the path (inclusive of both ends), its length in
// edges, and whether goal was reached.
//
// Complexity: O(E log V) in the worst case, with lazy decrease-key pushing
// at most one heap entry per relaxed edge.
func AStar(g *grid.Grid, start, goal Cell) (path []Cell, cost int, ok bool) {
	if start == goal {
		return []Cell{start}, 0, true
	}

	open := make(cellPQ, 0, 16)
	heap.Push(&open, pqItem{cell: start, f: g.ManhattanDistance(start, goal)})
	gCost := map[Cell]int{start: 0}
	pred := make(map[Cell]Cell)
	closed := make(map[Cell]bool)

	for open.Len() > 0 {
		item := heap.Pop(&open).(pqItem)
		curr := item.cell
		if closed[curr] {
			continue
		}
		closed[curr] = true
		if curr == goal {
			return reconstructPath(pred, goal), gCost[goal], true
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
			heap.Push(&open, pqItem{cell: n, f: candidate + g.ManhattanDistance(n, goal)})
		}
	}

	return nil, 0, false
}
