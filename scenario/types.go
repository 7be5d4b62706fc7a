// Package scenario parses map and scenario text files into a grid.Grid and
// a slice of lcmae.AgentSpec, writes solution files, and checks a solution
// against the properties a valid plan must satisfy.
package scenario

import "errors"

// ErrParse wraps every malformed-input condition from ParseMap and
// ParseScenario: a bad header line, a non-rectangular map, an unknown
// agent-type character, or a missing required goal cell.
var ErrParse = errors.New("scenario: parse error")

// Descriptor type characters, matched against the middle group of the
// agent regex (\d+)(.)(\d+)?.
const (
	charRetargeting     = 'r'
	charClosestFrontier = 'f'
	charStatic          = 's'
	charPanicked        = 'p'
)
