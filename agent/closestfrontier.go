package agent

import (
	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/pathfind"
)

// findClosestFrontier implements findGoalFunc via C5: the nearest reachable
// frontier cell to the agent's present position, and the node count of the
// path to it.
func findClosestFrontier(a *Agent) (grid.Cell, int, error) {
	nearest, steps, ok := pathfind.ClosestFrontier(a.Grid, a.Cell())
	if !ok {
		return 0, 0, pathfind.ErrNoFrontier
	}

	return nearest, steps, nil
}

// NewClosestFrontier builds an Evacuating agent whose goal is always the
// nearest reachable frontier cell (C5), fixed once at construction: the
// goal is never refreshed unless the driver replaces the whole strategy
// (e.g. on a safety transition back to Surfing and then back again).
func NewClosestFrontier(a *Agent) (Strategy, error) {
	core, err := newEvacuatingCore(a, findClosestFrontier, whcaSearch, "f")
	if err != nil {
		return nil, err
	}

	return core, nil
}
