package flowplan

import "github.com/katalvlaran/evacplan/grid"

// breakDeadlocks scans each tick for edge-swap collisions — two agents
// crossing the same grid edge in opposite directions — which the
// network's per-cell capacity constraint does not itself forbid, and
// resolves each by delaying the lower-indexed agent one tick: a wait is
// inserted at its current cell and the remainder of its path shifts out
// by one. Delaying one agent changes its later positions, which can create
// a swap with a pair the sweep has already compared, so the full scan
// repeats until a pass finds nothing left to fix. This is a best-effort
// pass, not guaranteed to find the shortest resolution, only a valid one;
// it is opt-in (see WithPostprocess) because the vast majority of
// scenarios never produce an edge-swap.
func breakDeadlocks(paths [][]grid.Cell) [][]grid.Cell {
	out := make([][]grid.Cell, len(paths))
	for i := range paths {
		out[i] = append([]grid.Cell(nil), paths[i]...)
	}

	for {
		changed := false
		for t := 0; t+1 < longest(out); t++ {
			for i := 0; i < len(out); i++ {
				for j := i + 1; j < len(out); j++ {
					if swaps(out[i], out[j], t) {
						out[i] = delayFrom(out[i], t)
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	return out
}

func longest(paths [][]grid.Cell) int {
	m := 0
	for _, p := range paths {
		if len(p) > m {
			m = len(p)
		}
	}

	return m
}

func at(path []grid.Cell, t int) grid.Cell {
	switch {
	case t < 0:
		return path[0]
	case t >= len(path):
		return path[len(path)-1]
	default:
		return path[t]
	}
}

func swaps(a, b []grid.Cell, t int) bool {
	return at(a, t) == at(b, t+1) && at(b, t) == at(a, t+1) && at(a, t) != at(a, t+1)
}

// delayFrom inserts one extra tick at path[t], holding the agent at its
// current cell before continuing along the rest of its original route.
func delayFrom(path []grid.Cell, t int) []grid.Cell {
	if t >= len(path) {
		return path
	}
	delayed := make([]grid.Cell, 0, len(path)+1)
	delayed = append(delayed, path[:t+1]...)
	delayed = append(delayed, path[t:]...)

	return delayed
}
