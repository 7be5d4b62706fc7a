// See map.go for ParseMap, scenario.go for ParseScenario/Load, solution.go
// for WriteSolution, and check.go for ReadSolution/Check.
//
// Errors:
//
//   - ErrParse wraps every malformed-input condition across all four
//     parsers; use errors.Is(err, scenario.ErrParse) to detect it.
//
// Options: none; all three file formats are fixed by the external
// interfaces they implement.
package scenario
