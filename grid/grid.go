// Package grid provides the 4-connected level graph: walkable cells, a
// designated danger region, and the derived frontier of safe cells adjacent
// to danger.
//
// Cell ids are row-major: id = row*cols + col. Walls (non-walkable cells)
// have no neighbors. Edges are undirected, unit weight, implicit (no
// adjacency list is materialized — Neighbors computes them on demand from
// the rectangular walkable set).
package grid

// New constructs a Grid from explicit rows/cols and a walkable predicate
// over row-major cell ids, with danger marking the subset of walkable cells
// that are currently dangerous. Returns ErrEmptyGrid if rows or cols <= 0.
// Complexity: O(rows*cols).
func New(rows, cols int, walkable func(Cell) bool, danger func(Cell) bool) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Rows:     rows,
		Cols:     cols,
		walkable: make(map[Cell]bool, rows*cols),
		danger:   make(map[Cell]bool),
		frontier: make(map[Cell]bool),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := Cell(r*cols + c)
			if walkable(id) {
				g.walkable[id] = true
				if danger(id) {
					g.danger[id] = true
				}
			}
		}
	}
	g.computeFrontier()

	return g, nil
}

// NewFromGrid constructs a Grid from a rectangular boolean walkability
// matrix (values[row][col]) and a set of dangerous cell ids. Returns
// ErrEmptyGrid / ErrNonRectangular on malformed input.
// Complexity: O(rows*cols).
func NewFromGrid(values [][]bool, dangerCells map[Cell]bool) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	rows := len(values)

	return New(rows, cols, func(id Cell) bool {
		r, c := int(id)/cols, int(id)%cols
		return values[r][c]
	}, func(id Cell) bool {
		return dangerCells[id]
	})
}

// computeFrontier populates g.frontier: safe cells with at least one
// dangerous 4-neighbor. Invariant: c ∈ frontier ⇒ ¬dangerous(c) ∧
// ∃ n ∈ neighbors(c): dangerous(n).
func (g *Grid) computeFrontier() {
	for c := range g.walkable {
		if g.danger[c] {
			continue
		}
		for _, n := range g.Neighbors(c) {
			if g.danger[n] {
				g.frontier[c] = true
				break
			}
		}
	}
}

// InBounds reports whether (row,col) lies within the grid boundaries.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Coords converts a cell id to (row, col).
func (g *Grid) Coords(c Cell) (row, col int) {
	return int(c) / g.Cols, int(c) % g.Cols
}

// CellAt converts (row, col) back to a cell id.
func (g *Grid) CellAt(row, col int) Cell {
	return Cell(row*g.Cols + col)
}

// Walkable reports whether c is a passable cell.
func (g *Grid) Walkable(c Cell) bool {
	return g.walkable[c]
}

// Dangerous reports whether c is in the danger region. Cells outside
// walkable are neither dangerous nor safe.
func (g *Grid) Dangerous(c Cell) bool {
	return g.danger[c]
}

// IsSafe reports whether c is walkable and not dangerous.
func (g *Grid) IsSafe(c Cell) bool {
	return g.walkable[c] && !g.danger[c]
}

// Neighbors returns the 4-connected walkable neighbors of c, in fixed
// N,E,S,W order for determinism. Wall and out-of-bounds cells are excluded,
// and a wall cell itself has no neighbors.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	if !g.walkable[c] {
		return nil
	}
	row, col := g.Coords(c)
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		n := g.CellAt(nr, nc)
		if g.walkable[n] {
			out = append(out, n)
		}
	}

	return out
}

// Frontier returns the set of safe cells adjacent to at least one dangerous
// cell, as a sorted slice for deterministic iteration by callers (e.g. the
// closest-frontier multi-source search seed set).
func (g *Grid) Frontier() []Cell {
	out := make([]Cell, 0, len(g.frontier))
	for c := range g.frontier {
		out = append(out, c)
	}
	sortCells(out)

	return out
}

// IsFrontier reports whether c is in the frontier set.
func (g *Grid) IsFrontier(c Cell) bool {
	return g.frontier[c]
}

// ManhattanDistance computes the Manhattan distance between two cells'
// (row,col) coordinates. Admissible and consistent for a 4-connected grid
// with unit edge weight — used throughout as the A*/RRA* heuristic.
func (g *Grid) ManhattanDistance(a, b Cell) int {
	ar, ac := g.Coords(a)
	br, bc := g.Coords(b)

	return absInt(ar-br) + absInt(ac-bc)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// sortCells sorts a []Cell ascending with a hand-written insertion sort,
// avoiding the generic sort.Slice overhead for typically tiny frontier sets.
func sortCells(cells []Cell) {
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && cells[j] < cells[j-1]; j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}
}
