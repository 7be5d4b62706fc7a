package grid

import "testing"

func allWalkable(rows, cols int) func(Cell) bool {
	return func(Cell) bool { return true }
}

func noDanger(Cell) bool { return false }

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New(0, 4, allWalkable(0, 4), noDanger); err != ErrEmptyGrid {
		t.Fatalf("New(0,4) error = %v; want ErrEmptyGrid", err)
	}
	if _, err := New(4, 0, allWalkable(4, 0), noDanger); err != ErrEmptyGrid {
		t.Fatalf("New(4,0) error = %v; want ErrEmptyGrid", err)
	}
}

func TestNewFromGridRejectsNonRectangular(t *testing.T) {
	_, err := NewFromGrid([][]bool{{true, true}, {true}}, nil)
	if err != ErrNonRectangular {
		t.Fatalf("error = %v; want ErrNonRectangular", err)
	}
}

// 4x4 all-walkable grid, danger = top row (cells 0..3).
func topRowDangerGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := New(4, 4, allWalkable(4, 4), func(c Cell) bool { return c < 4 })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestFrontierIsRowBelowDanger(t *testing.T) {
	g := topRowDangerGrid(t)
	want := map[Cell]bool{4: true, 5: true, 6: true, 7: true}
	got := g.Frontier()
	if len(got) != len(want) {
		t.Fatalf("frontier = %v; want cells {4,5,6,7}", got)
	}
	for _, c := range got {
		if !want[c] {
			t.Errorf("unexpected frontier cell %d", c)
		}
		if !g.IsFrontier(c) {
			t.Errorf("IsFrontier(%d) = false; want true", c)
		}
	}
	// No dangerous cell can be frontier.
	for c := Cell(0); c < 4; c++ {
		if g.IsFrontier(c) {
			t.Errorf("dangerous cell %d reported as frontier", c)
		}
	}
}

func TestNeighborsAreFourConnectedAndBounded(t *testing.T) {
	g := topRowDangerGrid(t)
	// Corner cell 0 (row0,col0): only E(1) and S(4) neighbors.
	ns := g.Neighbors(0)
	want := map[Cell]bool{1: true, 4: true}
	if len(ns) != 2 {
		t.Fatalf("Neighbors(0) = %v; want 2 elements", ns)
	}
	for _, n := range ns {
		if !want[n] {
			t.Errorf("unexpected neighbor %d of cell 0", n)
		}
	}
}

func TestIsSafeAndDangerous(t *testing.T) {
	g := topRowDangerGrid(t)
	if g.IsSafe(0) {
		t.Error("cell 0 is dangerous, IsSafe should be false")
	}
	if !g.Dangerous(0) {
		t.Error("cell 0 should be dangerous")
	}
	if !g.IsSafe(4) {
		t.Error("cell 4 should be safe")
	}
}

func TestWallsHaveNoNeighbors(t *testing.T) {
	// Single wall at cell 5 in a 4x4 grid.
	g, err := New(4, 4, func(c Cell) bool { return c != 5 }, noDanger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Walkable(5) {
		t.Fatal("cell 5 should be a wall")
	}
	if len(g.Neighbors(5)) != 0 {
		t.Errorf("wall cell should have no neighbors, got %v", g.Neighbors(5))
	}
	// Cell 1 (neighbor of 5) should not list 5 among its neighbors.
	for _, n := range g.Neighbors(1) {
		if n == 5 {
			t.Error("wall cell 5 should not appear as a neighbor")
		}
	}
}

func TestManhattanDistance(t *testing.T) {
	g := topRowDangerGrid(t)
	// cell 0 = (0,0), cell 15 = (3,3).
	if d := g.ManhattanDistance(0, 15); d != 6 {
		t.Errorf("ManhattanDistance(0,15) = %d; want 6", d)
	}
}

func TestCoordsRoundTrip(t *testing.T) {
	g := topRowDangerGrid(t)
	for c := Cell(0); c < 16; c++ {
		r, col := g.Coords(c)
		if g.CellAt(r, col) != c {
			t.Errorf("Coords/CellAt round trip failed for cell %d", c)
		}
	}
}
