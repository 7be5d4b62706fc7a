package agent

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/evacplan/grid"
)

// NewStrategy dispatches to the Evacuating variant matching typ. staticGoal
// is only consulted for Static; rng is only consulted for Panicked (and
// must be a caller-seeded source, never the package-global one).
func NewStrategy(a *Agent, typ Type, staticGoal grid.Cell, rng *rand.Rand) (Strategy, error) {
	switch typ {
	case Retargeting:
		return NewRetargeting(a)
	case ClosestFrontier:
		return NewClosestFrontier(a)
	case Static:
		return NewFixedTarget(a, staticGoal)
	case Panicked:
		return NewPanicked(a, rng)
	default:
		return nil, fmt.Errorf("agent: unknown strategy type %v", typ)
	}
}
