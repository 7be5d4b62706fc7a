package agent

import (
	"fmt"

	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/pathfind"
)

// NewFixedTarget builds an Evacuating agent whose goal is the caller-supplied
// target cell, used for Static agents. distance_to_goal is taken from a
// plain A* path computed once at construction.
func NewFixedTarget(a *Agent, target grid.Cell) (Strategy, error) {
	findGoal := func(a *Agent) (grid.Cell, int, error) {
		path, _, ok := pathfind.AStar(a.Grid, a.Cell(), target)
		if !ok {
			return 0, 0, fmt.Errorf("agent %d: fixed target %v unreachable from %v", a.ID, target, a.Cell())
		}

		return target, len(path), nil
	}

	core, err := newEvacuatingCore(a, findGoal, whcaSearch, "x")
	if err != nil {
		return nil, err
	}

	return core, nil
}
