// Package grid defines the static 4-connected level graph (C1): a walkable
// grid with a danger region and the derived frontier set of safe cells
// adjacent to danger. A Grid carries no mutable state after construction.
package grid

import "errors"

// Sentinel errors for grid construction and lookups.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrCellOutOfRange indicates a cell id outside [0, rows*cols).
	ErrCellOutOfRange = errors.New("grid: cell id out of range")
)

// Cell is a grid cell id: row*cols + col.
type Cell int

// neighborOffsets enumerates 4-connected (N,E,S,W) row/col deltas. Order is
// fixed so that neighbor iteration is deterministic wherever callers rely on
// it (tie-breaking in search, PRNG-independent agent orderings).
var neighborOffsets = [4][2]int{
	{-1, 0}, // N
	{0, 1},  // E
	{1, 0},  // S
	{0, -1}, // W
}

// Grid is the static, immutable level graph. walkable marks passable cells;
// danger marks the subset of walkable cells agents must evacuate from.
// frontier is derived at construction time: safe cells with at least one
// dangerous 4-neighbor.
type Grid struct {
	Rows, Cols int
	walkable   map[Cell]bool
	danger     map[Cell]bool
	frontier   map[Cell]bool
}
