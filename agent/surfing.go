package agent

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/reservation"
)

// Surfing is the strategy for already-safe agents: it does not aim at any
// particular cell, only explores a lookahead-tick window and yields
// dynamically to evacuating agents needing its cells, while never drifting
// back into danger; revisiting recently occupied cells costs extra, which
// discourages thrashing between neighboring safe cells.
type Surfing struct {
	agent *Agent

	lookback       int
	lookbackSet    map[grid.Cell]bool
	reservationLen int
}

// NewSurfing builds a Surfing strategy and runs its first replan.
func NewSurfing(a *Agent) (Strategy, error) {
	s := &Surfing{
		agent:          a,
		lookback:       a.Lookahead / 2,
		lookbackSet:    make(map[grid.Cell]bool),
		reservationLen: a.Lookahead / 2,
	}
	if err := s.replan(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Surfing) Name() string { return "s" }

// Step replans under the same staleness rule as Evacuating, then upgrades
// the reservation at the rolling hard-claim horizon (index reservationLen)
// to Hard every tick — the near window must stay hard even as the agent
// consumes NextPath — before popping the next node.
func (s *Surfing) Step() (reservation.STN, error) {
	if len(s.agent.NextPath) == s.agent.Lookahead/2 || !s.agent.checkReservations() {
		if err := s.replan(); err != nil {
			return reservation.STN{}, err
		}
	}
	if s.reservationLen < len(s.agent.NextPath) {
		horizon := s.agent.NextPath[s.reservationLen]
		s.agent.Table.Reserve(horizon, reservation.Reservation{Agent: s.agent.ID, Priority: reservation.Hard})
	}
	next := s.agent.NextPath[0]
	s.agent.NextPath = s.agent.NextPath[1:]
	s.lookbackSet[grid.Cell(next.Pos)] = true

	return next, nil
}

func (s *Surfing) replan() error {
	s.agent.cancelReservations()
	full, err := s.search()
	if err != nil {
		return fmt.Errorf("agent %d surf replan: %w", s.agent.ID, err)
	}
	s.agent.NextPath = append([]reservation.STN(nil), full[1:]...)
	s.agent.logf("bp=%d next: %v", s.backpressure(), s.agent.NextPath)

	priorities := make([]int, len(s.agent.NextPath))
	for i := range priorities {
		if i < s.reservationLen {
			priorities[i] = reservation.Hard
		} else {
			priorities[i] = reservation.Soft
		}
	}
	s.agent.reserveNextPath(priorities)

	return nil
}

type surfPQItem struct {
	stn reservation.STN
	f   int
}
type surfPQ []surfPQItem

func (pq surfPQ) Len() int            { return len(pq) }
func (pq surfPQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq surfPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *surfPQ) Push(x interface{}) { *pq = append(*pq, x.(surfPQItem)) }
func (pq *surfPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// search runs the bounded-depth space-time A* that does not aim for a cell:
// it explores until any node at t = start.t + lookahead is popped, backed
// by a heuristic that simply prefers later exit ticks.
func (s *Surfing) search() ([]reservation.STN, error) {
	start := s.agent.Pos()
	exitT := start.T + s.agent.Lookahead
	bp := s.backpressure()

	open := surfPQ{{stn: start, f: 0}}
	heap.Init(&open)
	closed := make(map[reservation.STN]bool)
	gCost := map[reservation.STN]int{start: 0}
	pred := make(map[reservation.STN]reservation.STN)

	for open.Len() > 0 {
		item := heap.Pop(&open).(surfPQItem)
		curr := item.stn
		if closed[curr] {
			continue
		}
		closed[curr] = true
		if curr.T == exitT {
			return reconstructSurfPath(pred, curr), nil
		}

		bpFactor := bp - (curr.T - start.T)
		if bpFactor < 1 {
			bpFactor = 1
		}
		for _, step := range s.neighbors(curr, bpFactor) {
			if closed[step.stn] {
				continue
			}
			candidate := gCost[curr] + step.cost
			if old, seen := gCost[step.stn]; seen && candidate >= old {
				continue
			}
			gCost[step.stn] = candidate
			pred[step.stn] = curr
			f := candidate + (exitT - step.stn.T)
			heap.Push(&open, surfPQItem{stn: step.stn, f: f})
		}
	}

	return nil, fmt.Errorf("agent %d: surf window exhausted before reaching exit tick %d", s.agent.ID, exitT)
}

type surfStep struct {
	stn  reservation.STN
	cost int
}

// neighbors implements the surf cost rule: moving to a safe neighbor costs
// 2 (3 if recently visited, discouraging churn), waiting costs bpFactor
// (scaled down as the window looks further ahead, letting the agent settle)
// or 4*bpFactor if waiting would require preempting another agent's claim —
// still offered, since a surfing agent must always be able to hold its
// ground rather than get stuck with no candidate at all.
func (s *Surfing) neighbors(n reservation.STN, bpFactor int) []surfStep {
	var out []surfStep

	pos := grid.Cell(n.Pos)
	for _, adj := range s.agent.Grid.Neighbors(pos) {
		rn := reservation.STN{Pos: int(adj), T: n.T + 1}
		if s.reservableByAtSoft(rn) && s.reservableByAtSoft(rn.Incremented()) && s.agent.Grid.IsSafe(adj) {
			cost := 2
			if s.lookbackSet[adj] {
				cost = 3
			}
			out = append(out, surfStep{stn: rn, cost: cost})
		}
	}

	wait := n.Incremented()
	if s.reservableByAtSoft(wait) && s.reservableByAtSoft(wait.Incremented()) {
		out = append(out, surfStep{stn: wait, cost: 1 * bpFactor})
	} else {
		out = append(out, surfStep{stn: wait, cost: 4 * bpFactor})
	}

	return out
}

func (s *Surfing) reservableByAtSoft(stn reservation.STN) bool {
	return s.agent.Table.ReservableBy(stn, s.agent.ID, reservation.Soft)
}

// backpressure counts, over the last lookback ticks of taken_path, how many
// of the agent's own past positions are currently reserved by someone else
// at the present tick — an indicator of how hard evacuating agents are
// pressing on the space this agent has been occupying.
func (s *Surfing) backpressure() int {
	t := s.agent.Pos().T
	history := s.agent.TakenPath
	n := s.lookback + 1
	if n > len(history) {
		n = len(history)
	}
	reserved := 0
	for _, stn := range history[len(history)-n:] {
		if r, ok := s.agent.Table.Get(reservation.STN{Pos: stn.Pos, T: t}); ok && r.Agent != s.agent.ID {
			reserved++
		}
	}

	return reserved
}

func reconstructSurfPath(pred map[reservation.STN]reservation.STN, last reservation.STN) []reservation.STN {
	path := []reservation.STN{last}
	curr := last
	for {
		p, ok := pred[curr]
		if !ok {
			break
		}
		path = append(path, p)
		curr = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
