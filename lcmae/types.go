// Package lcmae implements the decentralized cooperative evacuation driver
// (C9): it owns the reservation table, instantiates one agent per scenario
// entry, and advances time by stepping agents in randomized order until
// every agent is safe or the deadlock timer expires.
package lcmae

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/evacplan/agent"
	"github.com/katalvlaran/evacplan/grid"
)

// DefaultSeed matches the source's default PRNG seed, required for
// reproducible output across runs.
const DefaultSeed = 42

// DefaultDeadlockLimit is the number of consecutive ticks without any
// agent moving before the driver gives up and returns.
const DefaultDeadlockLimit = 15

// AgentSpec is one scenario entry: the agent's declared type, its origin
// cell, and (for Static agents only) its fixed goal cell.
type AgentSpec struct {
	Type   agent.Type
	Origin grid.Cell
	Goal   grid.Cell
}

// Options configures a Plan run.
type Options struct {
	Seed          int64
	DeadlockLimit int
	Logger        *zap.SugaredLogger
}

// Option mutates an Options during construction.
type Option func(*Options)

func defaultOptions() Options {
	return Options{Seed: DefaultSeed, DeadlockLimit: DefaultDeadlockLimit}
}

// WithSeed overrides the PRNG seed driving both agent step order and
// Panicked agents' random walks.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithDeadlockLimit overrides the number of stalled ticks before the driver
// terminates (default DefaultDeadlockLimit).
func WithDeadlockLimit(n int) Option {
	return func(o *Options) { o.DeadlockLimit = n }
}

// WithLogger routes per-agent debug lines through logger instead of
// discarding them.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *Options) { o.Logger = logger }
}

func (o Options) logger() *zap.SugaredLogger {
	if o.Logger != nil {
		return o.Logger
	}

	return zap.NewNop().Sugar()
}
