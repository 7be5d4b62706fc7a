// Package reservation implements the space-time reservation table (C2): a
// sparse map from space-time node to at most one Reservation, with a
// strict priority-preemption write policy.
//
// The table is the only state shared across agents in a single LC-MAE run.
// It is mutated only by the agent currently stepping, so no internal
// locking is needed — callers (package agent, package whca) serve that
// single-threaded contract.
package reservation

import "fmt"

// Priority levels, strict ordering (higher wins).
const (
	// Passive marks where an agent was, for backpressure accounting only.
	Passive int = 0
	// Soft is a yielding claim (a surfing agent's tail window); another
	// agent may take it only at a strictly higher priority (Hard).
	Soft int = 1
	// Hard is a committed claim; under ReservableBy only its owner can
	// take it.
	Hard int = 2
)

// STN is a space-time node: a cell at a tick. Equality and hashing use both
// fields (it is a plain comparable struct, usable directly as a map key).
// Pos is a grid.Cell id widened to int so this package has no dependency on
// package grid; callers convert with int(cell) / grid.Cell(stn.Pos).
type STN struct {
	Pos int
	T   int
}

// Incremented returns the STN one tick later at the same position — the
// "double reservation" idiom's second node.
func (s STN) Incremented() STN {
	return STN{Pos: s.Pos, T: s.T + 1}
}

// IncrementedBy returns the STN n ticks later at the same position.
func (s STN) IncrementedBy(n int) STN {
	return STN{Pos: s.Pos, T: s.T + n}
}

func (s STN) String() string {
	return fmt.Sprintf("(%d,%d)", s.Pos, s.T)
}

// Reservation claims an STN for an agent at a priority level.
type Reservation struct {
	Agent    int
	Priority int
}

// Table is the space-time reservation store. The zero value is not usable;
// use New().
type Table struct {
	m map[STN]Reservation
}

// New constructs an empty reservation table.
func New() *Table {
	return &Table{m: make(map[STN]Reservation)}
}

// Get returns the reservation at stn, if any.
func (t *Table) Get(stn STN) (Reservation, bool) {
	r, ok := t.m[stn]

	return r, ok
}

// Reserve unconditionally writes r at stn, overwriting any prior entry.
// Callers are responsible for enforcing the priority-preemption policy
// before calling Reserve (see ReservableBy).
func (t *Table) Reserve(stn STN, r Reservation) {
	t.m[stn] = r
}

// Cancel removes any reservation at stn. No-op if absent — agents may
// legitimately cancel the same STN twice when a replan leaves them in place.
func (t *Table) Cancel(stn STN) {
	delete(t.m, stn)
}

// ReservableBy reports whether agent may write a reservation of priority p
// at stn: the slot is free, already owned by agent, or held at a strictly
// lower priority than p. This is the single preemption rule every strategy
// (WHCA*, surfing, panicked) consults before proposing a move.
func (t *Table) ReservableBy(stn STN, agent int, p int) bool {
	r, ok := t.m[stn]
	if !ok {
		return true
	}

	return r.Agent == agent || r.Priority < p
}

// Len reports the number of live reservations (diagnostic / test use only).
func (t *Table) Len() int {
	return len(t.m)
}
