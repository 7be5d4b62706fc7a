package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/pathfind"
)

func TestClosestFrontierFindsNearestDangerAdjacentCell(t *testing.T) {
	// 4x4 grid, danger is the top row (cells 0-3); frontier is row 1 (4-7).
	g, err := grid.New(4, 4, func(grid.Cell) bool { return true }, func(c grid.Cell) bool { return c < 4 })
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	// Agent at cell 14 (row 3, col 2): closest frontier cell is 6 (row 1, col 2), distance 2.
	nearest, steps, ok := pathfind.ClosestFrontier(g, 14)
	if !ok {
		t.Fatal("expected a reachable frontier cell")
	}
	if nearest != 6 {
		t.Errorf("nearest = %d; want 6", nearest)
	}
	if steps != 3 {
		t.Errorf("steps = %d; want 3 (path length in cells: 6,10,14)", steps)
	}
}

func TestClosestFrontierAgentAlreadyOnFrontier(t *testing.T) {
	g, err := grid.New(4, 4, func(grid.Cell) bool { return true }, func(c grid.Cell) bool { return c < 4 })
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	nearest, steps, ok := pathfind.ClosestFrontier(g, 5)
	if !ok || nearest != 5 || steps != 1 {
		t.Fatalf("ClosestFrontier(agent on frontier) = %d, %d, %v; want 5, 1, true", nearest, steps, ok)
	}
}

func TestClosestFrontierNoFrontierInGrid(t *testing.T) {
	// No danger anywhere: frontier is empty.
	g, err := grid.New(3, 3, func(grid.Cell) bool { return true }, func(grid.Cell) bool { return false })
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	if _, _, ok := pathfind.ClosestFrontier(g, 0); ok {
		t.Fatal("expected no frontier when there is no danger region")
	}
}
