// See whca.go for the Search entry point.
//
// Complexity:
//
//   - Each expansion costs one RRA.Distance lookup, amortized O(1) once the
//     relevant cell has been closed by the underlying RRA search; the
//     window search itself is O(depth * branching) expansions in the
//     worst case.
//
// Errors:
//
//   - ErrNoWindow: the window search exhausted its frontier before reaching
//     tick start.T+depth, meaning every depth-tick continuation from start
//     is blocked by existing reservations.
package whca
