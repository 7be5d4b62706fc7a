// Package evacplan plans grid evacuations: given a walkable grid, a danger
// region, and a set of agents, it computes per-tick paths that move every
// agent to safety without two agents ever colliding.
//
// 🚀 What is evacplan?
//
//	A decentralized cooperative planner (LC-MAE) plus a time-expanded
//	max-flow planner, sharing one level/reservation model:
//
//	  • grid/reservation — the static level graph and the shared space-time
//	    reservation table
//	  • pathfind/whca — plain A*, Reverse Resumable A* heuristics, and
//	    windowed cooperative A*
//	  • agent/lcmae — per-agent evacuation strategies and the tick-driven
//	    driver that steps them
//	  • flowplan — an alternative optimal-makespan planner for scenarios of
//	    uniform agents
//	  • scenario — map/scenario/solution file parsing and solution checking
//
// Everything is organized under subpackages; see cmd/evacplan for the CLI
// that ties them together.
//
//	go get github.com/katalvlaran/evacplan
package evacplan
