package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/pathfind"
)

func openGrid(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, func(grid.Cell) bool { return true }, func(grid.Cell) bool { return false })
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}

	return g
}

func TestAStarSameCellIsTrivial(t *testing.T) {
	g := openGrid(t, 4, 4)
	path, cost, ok := pathfind.AStar(g, 5, 5)
	if !ok || cost != 0 || len(path) != 1 || path[0] != 5 {
		t.Fatalf("AStar(5,5) = %v, %d, %v; want [5], 0, true", path, cost, ok)
	}
}

func TestAStarStraightLine(t *testing.T) {
	g := openGrid(t, 4, 4)
	// cell 0 = (0,0), cell 3 = (0,3): straight row, Manhattan distance 3.
	path, cost, ok := pathfind.AStar(g, 0, 3)
	if !ok {
		t.Fatal("expected a path")
	}
	if cost != 3 || len(path) != 4 {
		t.Fatalf("cost=%d len(path)=%d; want cost=3 len=4", cost, len(path))
	}
	if path[0] != 0 || path[len(path)-1] != 3 {
		t.Fatalf("path endpoints = %d,%d; want 0,3", path[0], path[len(path)-1])
	}
}

func TestAStarUnreachableAcrossWalls(t *testing.T) {
	// 3x3 grid with the middle row entirely walled off, splitting it in two.
	g, err := grid.New(3, 3, func(c grid.Cell) bool { return c < 3 || c >= 6 }, func(grid.Cell) bool { return false })
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	_, _, ok := pathfind.AStar(g, 0, 8)
	if ok {
		t.Fatal("expected no path across a walled-off grid")
	}
}

func TestAStarGoesAroundObstacle(t *testing.T) {
	// 3x3 grid, middle cell (4) is a wall; path must detour.
	g, err := grid.New(3, 3, func(c grid.Cell) bool { return c != 4 }, func(grid.Cell) bool { return false })
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	path, cost, ok := pathfind.AStar(g, 0, 8)
	if !ok {
		t.Fatal("expected a detour path around the wall")
	}
	if cost != 4 {
		t.Fatalf("cost=%d; want 4 (shortest detour around a single obstacle)", cost)
	}
	for _, c := range path {
		if c == 4 {
			t.Fatal("path crosses the wall cell")
		}
	}
}
