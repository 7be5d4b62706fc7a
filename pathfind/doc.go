// Package pathfind implements the single-agent searches the evacuation
// planner composes: plain A* for one-off point-to-point paths, RRA* for an
// amortized true-distance heuristic sampled many times against one source,
// and a multi-source search for the nearest frontier cell from a given
// position.
//
// Complexity:
//
//   - AStar:           O(E log V) worst case, one heap entry per relaxation.
//   - RRA.Distance:    O(E log V) amortized over the RRA's lifetime; a
//     repeat query against an already-closed cell is O(1).
//   - ClosestFrontier: O(E log V), seeded from every frontier cell at once.
//
// Errors:
//
//   - ErrUnreachable: RRA.Distance could not reach the requested target.
//   - ErrNoFrontier:  no reachable frontier cell; ClosestFrontier reports
//     this as ok == false and its callers return ErrNoFrontier.
package pathfind
