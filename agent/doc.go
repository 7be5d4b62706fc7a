// See types.go for the Strategy interface and Type enum, agent.go for the
// Agent lifecycle (C8), evacuating.go for the shared Evacuating engine, and
// closestfrontier.go/retargeting.go/fixedtarget.go/panicked.go/surfing.go
// for the five concrete strategies (C7).
//
// Errors:
//
//   - pathfind.ErrNoFrontier propagates out of NewClosestFrontier/
//     NewRetargeting when no safe cell is reachable at all.
//   - whca.ErrNoWindow propagates out of replan when the window search
//     cannot find any exit node — an invariant violation given RRA* already
//     reported the goal reachable.
//
// Options: Agent.Lookahead defaults to DefaultLookahead (10) when
// constructed with a non-positive value via New.
package agent
