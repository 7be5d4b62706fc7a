package lcmae

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/evacplan/agent"
	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/reservation"
)

// ErrNoAgents is returned when Plan is called with an empty scenario.
var ErrNoAgents = errors.New("lcmae: no agents in scenario")

// Plan runs the decentralized cooperative driver (C9) to completion: it
// builds the shared reservation table, instantiates one Agent per spec,
// reserves each agent's initial lookahead window, then alternates
// randomized-order steps of endangered agents and safe agents until every
// agent is safe or the deadlock timer expires. It returns, for each agent in
// registration order, the cell projection of its taken path.
func Plan(g *grid.Grid, specs []AgentSpec, opts ...Option) ([][]grid.Cell, error) {
	if len(specs) == 0 {
		return nil, ErrNoAgents
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger()
	rng := rand.New(rand.NewSource(cfg.Seed))

	table := reservation.New()
	agents := make([]*agent.Agent, len(specs))
	for i, spec := range specs {
		a := agent.New(i, spec.Type, spec.Origin, g, table, agent.DefaultLookahead, logger)
		a.StaticGoal = spec.Goal
		a.RNG = rng
		for t := 0; t < a.Lookahead; t++ {
			stn := reservation.STN{Pos: int(spec.Origin), T: t}
			table.Reserve(stn, reservation.Reservation{Agent: a.ID, Priority: reservation.Hard})
			a.NextPath = append(a.NextPath, stn)
		}
		agents[i] = a
	}

	var safe, endangered []*agent.Agent
	for _, a := range agents {
		if a.IsSafe() {
			safe = append(safe, a)
		} else {
			endangered = append(endangered, a)
		}
	}

	deadlockTimer := 0
	for deadlockTimer < cfg.DeadlockLimit && len(endangered) > 0 {
		deadlockTimer++

		stillEndangered, newlySafe, err := stepGroup(rng, endangered)
		if err != nil {
			return nil, err
		}
		newlyEndangered, stillSafe, err := stepGroup(rng, safe)
		if err != nil {
			return nil, err
		}

		endangered = append(stillEndangered, newlyEndangered...)
		safe = append(stillSafe, newlySafe...)

		if anyMoved(endangered) || anyMoved(safe) {
			deadlockTimer = 0
		}
	}

	paths := make([][]grid.Cell, len(agents))
	for i, a := range agents {
		paths[i] = a.Cells()
	}

	return paths, nil
}

// stepGroup shuffles group in place with rng, steps every agent in the
// shuffled order, and partitions the result by current safety: notSafe holds
// agents that are still (or newly) endangered, safeNow holds agents that are
// still (or newly) safe. Partitioning by absolute safety rather than by the
// group's prior label lets the caller reassemble both the endangered and
// safe sets from either group's step.
func stepGroup(rng *rand.Rand, group []*agent.Agent) (notSafe, safeNow []*agent.Agent, err error) {
	rng.Shuffle(len(group), func(i, j int) { group[i], group[j] = group[j], group[i] })

	for _, a := range group {
		if stepErr := a.Step(); stepErr != nil {
			return nil, nil, fmt.Errorf("lcmae: agent %d: %w", a.ID, stepErr)
		}
		if a.IsSafe() {
			safeNow = append(safeNow, a)
		} else {
			notSafe = append(notSafe, a)
		}
	}

	return notSafe, safeNow, nil
}

// anyMoved reports whether any agent in group changed cell on its most
// recent step, the deadlock-timer reset condition.
func anyMoved(group []*agent.Agent) bool {
	for _, a := range group {
		n := len(a.TakenPath)
		if n >= 2 && a.TakenPath[n-1].Pos != a.TakenPath[n-2].Pos {
			return true
		}
	}

	return false
}
