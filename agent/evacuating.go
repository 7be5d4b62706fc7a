package agent

import (
	"fmt"

	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/pathfind"
	"github.com/katalvlaran/evacplan/reservation"
	"github.com/katalvlaran/evacplan/whca"
)

// findGoalFunc resolves an Evacuating variant's target cell and the plain
// distance to it, evaluated fresh on every retarget.
type findGoalFunc func(a *Agent) (goal grid.Cell, distance int, err error)

// searchFunc produces the next lookahead-tick window from start toward
// goal. Every variant but panicked uses whcaSearch; panicked substitutes a
// random walk that ignores goal and rra entirely.
type searchFunc func(a *Agent, start reservation.STN, goal grid.Cell, depth int) ([]reservation.STN, error)

// evacuatingCore is the shared engine behind every Evacuating strategy
// variant (C7.1): retarget/replan/step exactly as spec'd, parameterized by
// how a variant picks its goal and how it searches for a route to it. The
// closest-frontier, fixed-target and panicked constructors return the
// *evacuatingCore itself as their Strategy; Retargeting embeds it and wraps
// Step to inject extra behavior before delegating.
type evacuatingCore struct {
	agent *Agent

	goal             grid.Cell
	distanceToGoal   int
	distanceWithGoal int
	rra              *pathfind.RRA

	findGoal findGoalFunc
	search   searchFunc
	nameTag  string
}

// newEvacuatingCore constructs the engine and immediately runs the
// constructor sequence every variant shares: retarget() then replan().
// makeSearch receives the not-yet-retargeted core so it can close over it —
// whcaSearch reads e.rra lazily, at call time inside replan(), by which
// point retarget() has already populated it.
func newEvacuatingCore(a *Agent, findGoal findGoalFunc, makeSearch func(e *evacuatingCore) searchFunc, nameTag string) (*evacuatingCore, error) {
	e := &evacuatingCore{agent: a, findGoal: findGoal, nameTag: nameTag}
	e.search = makeSearch(e)
	if err := e.retarget(); err != nil {
		return nil, err
	}
	if err := e.replan(); err != nil {
		return nil, err
	}

	return e, nil
}

// retarget re-evaluates the goal and rebuilds the RRA* heuristic rooted at
// it — a fresh RRA per goal, reused across every whcaSearch expansion until
// the next retarget.
func (e *evacuatingCore) retarget() error {
	goal, dist, err := e.findGoal(e.agent)
	if err != nil {
		return err
	}
	e.goal = goal
	e.distanceToGoal = dist
	e.distanceWithGoal = 0
	e.rra = pathfind.NewRRA(e.agent.Grid, goal)

	return nil
}

// replan cancels the agent's current reservations, searches a fresh
// lookahead window from the agent's present node, discards the window's
// first entry (the present node itself), adopts the rest as NextPath, and
// reserves all of it at Hard priority — the "double reservation" rule is
// enforced inside reserveNextPath.
func (e *evacuatingCore) replan() error {
	e.agent.cancelReservations()
	full, err := e.search(e.agent, e.agent.Pos(), e.goal, e.agent.Lookahead)
	if err != nil {
		return fmt.Errorf("agent %d replan: %w", e.agent.ID, err)
	}
	e.agent.NextPath = append([]reservation.STN(nil), full[1:]...)
	e.agent.logf("next: %v", e.agent.NextPath)

	priorities := make([]int, len(e.agent.NextPath))
	for i := range priorities {
		priorities[i] = reservation.Hard
	}
	e.agent.reserveNextPath(priorities)

	return nil
}

// Step implements the common Evacuating step rule: replan if the window has
// shrunk to half the lookahead or any reservation was preempted, advance the
// stall counter, and pop the next node.
func (e *evacuatingCore) Step() (reservation.STN, error) {
	if len(e.agent.NextPath) == e.agent.Lookahead/2 || !e.agent.checkReservations() {
		if err := e.replan(); err != nil {
			return reservation.STN{}, err
		}
	}
	e.distanceWithGoal++
	next := e.agent.NextPath[0]
	e.agent.NextPath = e.agent.NextPath[1:]

	return next, nil
}

func (e *evacuatingCore) Name() string { return e.nameTag }

// whcaSearch wraps whca.Search with the agent's own reservation identity,
// used by every Evacuating variant except panicked.
func whcaSearch(e *evacuatingCore) searchFunc {
	return func(a *Agent, start reservation.STN, goal grid.Cell, depth int) ([]reservation.STN, error) {
		return whca.Search(a.Grid, a.Table, a.ID, reservation.Hard, e.rra, start, goal, depth, a.Cell())
	}
}
