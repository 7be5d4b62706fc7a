package agent

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/reservation"
)

// DefaultLookahead is the WHCA*/Surfing window depth; New uses it when given
// a non-positive lookahead, and the lcmae driver always passes it.
const DefaultLookahead = 10

// Agent is one evacuation participant (C8): its position history, its
// planned-but-not-yet-taken moves, and the strategy currently driving it.
// The driver (package lcmae) owns the slice of Agents; an Agent owns its
// Strategy and swaps it on safety transitions, but never outlives the Grid
// or Table it was built with.
type Agent struct {
	ID        int
	Type      Type
	Lookahead int

	// StaticGoal is only consulted when Type == Static.
	StaticGoal grid.Cell
	// RNG is only consulted when Type == Panicked; must be a caller-seeded
	// source, never the package-global one, for run-to-run reproducibility.
	RNG *rand.Rand

	Grid  *grid.Grid
	Table *reservation.Table

	TakenPath []reservation.STN
	NextPath  []reservation.STN

	Strategy Strategy
	surfing  bool

	log *zap.SugaredLogger
}

// New constructs an Agent at origin with an empty taken path of one entry
// (STN(origin, 0)) and no strategy yet — the first call to Step assigns one
// once it sees whether the agent starts safe or endangered.
func New(id int, typ Type, origin grid.Cell, g *grid.Grid, table *reservation.Table, lookahead int, logger *zap.SugaredLogger) *Agent {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Agent{
		ID:        id,
		Type:      typ,
		Lookahead: lookahead,
		Grid:      g,
		Table:     table,
		TakenPath: []reservation.STN{{Pos: int(origin), T: 0}},
		log:       logger,
	}
}

// Pos returns the agent's current space-time node: the last entry of
// TakenPath.
func (a *Agent) Pos() reservation.STN {
	return a.TakenPath[len(a.TakenPath)-1]
}

// Cell returns the grid cell of Pos.
func (a *Agent) Cell() grid.Cell {
	return grid.Cell(a.Pos().Pos)
}

// IsSafe reports whether the agent's current cell is outside the danger
// region.
func (a *Agent) IsSafe() bool {
	return a.Grid.IsSafe(a.Cell())
}

// Step implements the C8 state machine: switch strategy on a safety
// transition (or on first call, when Strategy is still nil), then delegate
// to whichever strategy is now active and append its result to TakenPath.
func (a *Agent) Step() error {
	if err := a.maybeSwitchStrategy(); err != nil {
		return fmt.Errorf("agent %d strategy switch: %w", a.ID, err)
	}

	next, err := a.Strategy.Step()
	if err != nil {
		return fmt.Errorf("agent %d step: %w", a.ID, err)
	}
	a.TakenPath = append(a.TakenPath, next)

	return nil
}

// maybeSwitchStrategy implements the table from C8: a safe agent always
// runs Surfing; an endangered agent always runs its scenario-declared
// Evacuating variant. The strategy is rebuilt (and thus replans) only on an
// actual transition, or when none has been assigned yet.
func (a *Agent) maybeSwitchStrategy() error {
	safe := a.IsSafe()
	switch {
	case a.Strategy == nil && safe:
		return a.switchTo(true)
	case a.Strategy == nil && !safe:
		return a.switchTo(false)
	case !a.surfing && safe:
		return a.switchTo(true)
	case a.surfing && !safe:
		return a.switchTo(false)
	default:
		return nil
	}
}

func (a *Agent) switchTo(toSurfing bool) error {
	var strat Strategy
	var err error
	if toSurfing {
		strat, err = NewSurfing(a)
	} else {
		strat, err = NewStrategy(a, a.Type, a.StaticGoal, a.RNG)
	}
	if err != nil {
		return err
	}
	a.Strategy = strat
	a.surfing = toSurfing

	return nil
}

// Cells projects TakenPath onto plain grid cells, the shape the planner
// API returns per agent.
func (a *Agent) Cells() []grid.Cell {
	cells := make([]grid.Cell, len(a.TakenPath))
	for i, stn := range a.TakenPath {
		cells[i] = grid.Cell(stn.Pos)
	}

	return cells
}

// reserveNextPath writes Hard or Soft reservations (per priorities, indexed
// in lockstep with NextPath) for every node in NextPath and its (pos, t+1)
// twin — the double-reservation idiom that forbids head-on swaps. A missing
// priorities entry defaults to Hard, matching the common case (every
// Evacuating variant reserves its whole window at Hard).
func (a *Agent) reserveNextPath(priorities []int) {
	for i, stn := range a.NextPath {
		p := reservation.Hard
		if i < len(priorities) {
			p = priorities[i]
		}
		a.warnIfOverwriting(stn, p)
		a.warnIfOverwriting(stn.Incremented(), p)
		a.Table.Reserve(stn, reservation.Reservation{Agent: a.ID, Priority: p})
		a.Table.Reserve(stn.Incremented(), reservation.Reservation{Agent: a.ID, Priority: p})
	}
}

func (a *Agent) warnIfOverwriting(stn reservation.STN, p int) {
	r, ok := a.Table.Get(stn)
	if ok && r.Agent != a.ID && r.Priority >= p {
		a.log.Debugf("a=%d%s t=%d: overwriting reservation at %v", a.ID, a.strategyTag(), a.Pos().T, stn)
	}
}

// cancelReservations removes every reservation this agent owns at a node in
// NextPath or its (pos, t+1) twin, ahead of replanning.
func (a *Agent) cancelReservations() {
	for _, stn := range a.NextPath {
		a.cancelIfOwned(stn)
		a.cancelIfOwned(stn.Incremented())
	}
}

func (a *Agent) cancelIfOwned(stn reservation.STN) {
	if r, ok := a.Table.Get(stn); ok && r.Agent == a.ID {
		a.Table.Cancel(stn)
	}
}

// checkReservations reports whether every node in NextPath is still
// reservable by this agent — false means some other agent preempted part of
// the plan and a replan is due.
func (a *Agent) checkReservations() bool {
	for _, stn := range a.NextPath {
		if r, ok := a.Table.Get(stn); ok && r.Agent != a.ID {
			return false
		}
	}

	return true
}

func (a *Agent) strategyTag() string {
	if a.Strategy == nil {
		return ""
	}

	return a.Strategy.Name()
}

// logf emits one debug line in the original `a=<id><tag> t=<tick>: <msg>`
// format, now routed through zap instead of stderr printing.
func (a *Agent) logf(format string, args ...interface{}) {
	a.log.Debugf("a=%d%s t=%d: %s", a.ID, a.strategyTag(), a.Pos().T, fmt.Sprintf(format, args...))
}
