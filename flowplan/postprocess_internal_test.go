package flowplan

import "testing"

import "github.com/katalvlaran/evacplan/grid"

// TestBreakDeadlocksReachesFixedPoint uses three agents where agents 0 and
// 1 swap cells 5 and 4 at tick 0, which breakDeadlocks resolves by
// delaying agent 0 one tick. It asserts both that the returned paths carry
// no remaining edge-swap and that feeding the result back through
// breakDeadlocks changes nothing (the fixed-point property).
func TestBreakDeadlocksReachesFixedPoint(t *testing.T) {
	paths := [][]grid.Cell{
		{5, 4, 4, 4},
		{4, 5, 6, 7},
		{6, 7, 5, 4},
	}

	out := breakDeadlocks(paths)

	if remaining := countSwaps(out); remaining > 0 {
		t.Fatalf("breakDeadlocks left %d edge-swap(s) unresolved: %v", remaining, out)
	}

	again := breakDeadlocks(out)
	if !samePaths(out, again) {
		t.Fatalf("breakDeadlocks is not a fixed point: %v -> %v", out, again)
	}
}

func countSwaps(paths [][]grid.Cell) int {
	n := 0
	for t := 0; t+1 < longest(paths); t++ {
		for i := 0; i < len(paths); i++ {
			for j := i + 1; j < len(paths); j++ {
				if swaps(paths[i], paths[j], t) {
					n++
				}
			}
		}
	}

	return n
}

func samePaths(a, b [][]grid.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for k := range a[i] {
			if a[i][k] != b[i][k] {
				return false
			}
		}
	}

	return true
}
