package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/pathfind"
)

func TestRRADistanceMatchesAStar(t *testing.T) {
	g := openGrid(t, 5, 5)
	rra := pathfind.NewRRA(g, 0)
	for _, target := range []grid.Cell{0, 4, 12, 24} {
		want, _, ok := pathfind.AStar(g, 0, target)
		if !ok {
			t.Fatalf("AStar(0,%d) unexpectedly unreachable", target)
		}
		got, err := rra.Distance(target)
		if err != nil {
			t.Fatalf("Distance(%d): %v", target, err)
		}
		if got != len(want)-1 {
			t.Errorf("Distance(%d) = %d; want %d", target, got, len(want)-1)
		}
	}
}

func TestRRADistanceIsResumableAndRepeatable(t *testing.T) {
	g := openGrid(t, 5, 5)
	rra := pathfind.NewRRA(g, 0)
	// Querying a near cell first, then a far one, must not corrupt distances
	// already settled for the near cell.
	near, err := rra.Distance(1)
	if err != nil || near != 1 {
		t.Fatalf("Distance(1) = %d, %v; want 1, nil", near, err)
	}
	far, err := rra.Distance(24)
	if err != nil || far != 8 {
		t.Fatalf("Distance(24) = %d, %v; want 8, nil", far, err)
	}
	// Repeat query for the near cell must still be correct and cheap.
	again, err := rra.Distance(1)
	if err != nil || again != 1 {
		t.Fatalf("repeated Distance(1) = %d, %v; want 1, nil", again, err)
	}
}

func TestRRAUnreachableReturnsError(t *testing.T) {
	// Split 3x3 grid: row 1 entirely walled, isolating {0,1,2} from {6,7,8}.
	g, err := grid.New(3, 3, func(c grid.Cell) bool { return c < 3 || c >= 6 }, func(grid.Cell) bool { return false })
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	rra := pathfind.NewRRA(g, 0)
	if _, err := rra.Distance(8); err == nil {
		t.Fatal("expected ErrUnreachable for a cell across a wall")
	}
}
