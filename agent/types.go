// Package agent implements per-agent evacuation strategies (C7) and the
// agent lifecycle that switches between them (C8).
//
// A Strategy is deliberately a narrow interface rather than a class
// hierarchy: Evacuating's four variants (closest-frontier, retargeting,
// fixed-target, panicked) share one engine (evacuatingCore) parameterized by
// a goal-finding function and a window-search function, composed rather than
// inherited; Surfing is unrelated enough (no goal, no RRA*, a different
// neighbor-cost rule) to stand on its own.
package agent

import "github.com/katalvlaran/evacplan/reservation"

// Type enumerates the scenario-declared agent kinds (scenario descriptor
// characters r/f/s/p).
type Type int

const (
	Retargeting Type = iota
	ClosestFrontier
	Static
	Panicked
)

func (t Type) String() string {
	switch t {
	case Retargeting:
		return "retargeting"
	case ClosestFrontier:
		return "closest_frontier"
	case Static:
		return "static"
	case Panicked:
		return "panicked"
	default:
		return "unknown"
	}
}

// Strategy is the behavior an Agent delegates stepping to. Step returns the
// agent's next space-time node; Name is the single-character log tag from
// the original debug format.
type Strategy interface {
	Step() (reservation.STN, error)
	Name() string
}
