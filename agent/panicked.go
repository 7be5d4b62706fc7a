package agent

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/reservation"
)

// NewPanicked builds an Evacuating agent with no goal and no RRA*: every
// window is a lookahead-long random walk, subject to the same
// double-reservation rule as every other strategy, at Hard priority. rng
// must be a caller-owned, seeded source (never the package-global one) so a
// whole run stays reproducible.
func NewPanicked(a *Agent, rng *rand.Rand) (Strategy, error) {
	findGoal := func(a *Agent) (grid.Cell, int, error) { return a.Cell(), 0, nil }
	search := func(e *evacuatingCore) searchFunc { return panickedWalk(rng) }

	core, err := newEvacuatingCore(a, findGoal, search, "p")
	if err != nil {
		return nil, err
	}

	return core, nil
}

// panickedWalk returns a searchFunc generating depth consecutive random
// moves from start: at each tick, candidates are every grid neighbor (plus
// waiting in place) whose arrival node and the node one tick after it are
// both reservable by the agent at Hard priority; one candidate is chosen
// uniformly at random. If no move is reservable, the agent waits anyway,
// breaking whatever reservation holds the cell it stands on at that point
// of the walk.
func panickedWalk(rng *rand.Rand) searchFunc {
	return func(a *Agent, start reservation.STN, goal grid.Cell, depth int) ([]reservation.STN, error) {
		path := []reservation.STN{start}
		for path[len(path)-1].T < start.T+depth {
			curr := path[len(path)-1]
			candidates := reservableMoves(a, curr)
			if len(candidates) == 0 {
				return nil, fmt.Errorf("agent %d: no reservable move from %v, even the self-preemption fallback", a.ID, curr)
			}
			path = append(path, candidates[rng.Intn(len(candidates))])
		}

		return path, nil
	}
}

// reservableMoves enumerates the space-time successors of curr reservable
// by a at Hard priority: every grid neighbor, plus waiting in place. When
// none of them is reservable, waiting in place is returned as the single
// candidate anyway.
func reservableMoves(a *Agent, curr reservation.STN) []reservation.STN {
	var out []reservation.STN

	pos := grid.Cell(curr.Pos)
	for _, adj := range a.Grid.Neighbors(pos) {
		rn := reservation.STN{Pos: int(adj), T: curr.T + 1}
		if a.Table.ReservableBy(rn, a.ID, reservation.Hard) && a.Table.ReservableBy(rn.Incremented(), a.ID, reservation.Hard) {
			out = append(out, rn)
		}
	}

	wait := curr.Incremented()
	if a.Table.ReservableBy(wait, a.ID, reservation.Hard) && a.Table.ReservableBy(wait.Incremented(), a.ID, reservation.Hard) {
		out = append(out, wait)
	}
	if len(out) == 0 {
		out = append(out, wait)
	}

	return out
}
