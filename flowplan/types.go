// Package flowplan computes evacuation routes as a time-expanded maximum
// flow problem (C10): agents are unit flow from a super source through a
// grid replicated once per tick, to a super sink reachable only from
// frontier cells. The minimal feasible makespan is found by binary search
// over a max-flow oracle, and the flow is decomposed back into one path
// per agent.
package flowplan

import "errors"

// ErrNoAgents is returned by Plan when called with no origins.
var ErrNoAgents = errors.New("flowplan: no agents to plan for")

// ErrInfeasible is returned by Plan when no feasible makespan is found
// within Options.MaxMakespan (if bounded).
var ErrInfeasible = errors.New("flowplan: no feasible evacuation plan within the makespan bound")

// Options configures Plan.
type Options struct {
	// MaxMakespan caps how far the binary search doubles looking for a
	// feasible makespan before giving up with ErrInfeasible. Zero means
	// unbounded.
	MaxMakespan int
	// Postprocess enables the deterministic deadlock-breaking pass over
	// decomposed paths (see breakDeadlocks). Off by default: the flow
	// network already forbids two agents sharing a cell at the same
	// tick: only edge-swaps (two agents crossing the same grid edge in
	// opposite directions) can still occur, and most scenarios never
	// produce one.
	Postprocess bool
}

// Option is a functional option for Plan.
type Option func(*Options)

func defaultOptions() Options {
	return Options{}
}

// WithMaxMakespan bounds the binary search's doubling phase.
func WithMaxMakespan(n int) Option {
	return func(o *Options) { o.MaxMakespan = n }
}

// WithPostprocess enables the deadlock-breaking post-processing pass.
func WithPostprocess() Option {
	return func(o *Options) { o.Postprocess = true }
}
