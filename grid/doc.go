// Package grid is the level graph: a 4-connected rectangular walkable grid
// with a danger region and its derived frontier (safe cells touching
// danger).
//
// What:
//
//   - Grid wraps a rectangular set of walkable cells plus a danger subset.
//   - Frontier() returns safe cells adjacent to at least one dangerous cell —
//     the evacuation targets for every strategy in package agent.
//   - Neighbors() is the 4-connected adjacency used by every search in
//     packages pathfind and whca.
//
// Complexity:
//
//   - New / NewFromGrid: O(rows*cols).
//   - Neighbors:          O(1) (bounded to 4 offsets).
//   - Frontier:           O(k²) per call for k frontier cells (copy plus
//     insertion sort); the set itself is computed once at construction.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellOutOfRange: a referenced cell id is outside [0, rows*cols).
package grid
