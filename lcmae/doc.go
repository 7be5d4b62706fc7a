// See types.go for AgentSpec/Options and driver.go for Plan, the C9 driver
// entry point.
//
// Complexity: each tick steps every agent once; each step is bounded by the
// WHCA*/Surfing window search cost (see packages whca and pathfind). The
// driver terminates after at most DeadlockLimit consecutive ticks with no
// agent movement, or once every agent reports safe.
//
// Errors:
//
//   - ErrNoAgents when Plan is called with an empty scenario.
//   - Errors from Agent.Step (strategy construction or search failure)
//     propagate wrapped with the offending agent's ID.
//
// Options: WithSeed, WithDeadlockLimit, WithLogger.
package lcmae
