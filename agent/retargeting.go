package agent

import "github.com/katalvlaran/evacplan/reservation"

// Retargeting extends closest-frontier evacuation: if an agent has made no
// progress for twice its expected travel time, it abandons the current
// frontier goal and retargets to the next-nearest one, in case the original
// is contested.
type Retargeting struct {
	*evacuatingCore
}

// NewRetargeting builds a Retargeting strategy.
func NewRetargeting(a *Agent) (Strategy, error) {
	core, err := newEvacuatingCore(a, findClosestFrontier, whcaSearch, "r")
	if err != nil {
		return nil, err
	}

	return &Retargeting{evacuatingCore: core}, nil
}

// Step checks the stall condition before delegating to the shared engine:
// distanceWithGoal >= 2*distanceToGoal means progress has stalled for twice
// the expected travel time, so the agent gives up on the current goal.
func (r *Retargeting) Step() (reservation.STN, error) {
	if r.distanceWithGoal >= 2*r.distanceToGoal {
		oldGoal := r.goal
		if err := r.retarget(); err != nil {
			return reservation.STN{}, err
		}
		if r.goal != oldGoal {
			r.agent.logf("retargeted from %v to %v", oldGoal, r.goal)
		}
		if err := r.replan(); err != nil {
			return reservation.STN{}, err
		}
	}

	return r.evacuatingCore.Step()
}
