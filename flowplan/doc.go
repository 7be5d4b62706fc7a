// Package flowplan is an alternative to package lcmae for computing
// evacuation routes: instead of decentralized, reactive agents, it poses
// evacuation as one global time-expanded maximum-flow problem and solves
// it exactly.
//
// Construction:
//
//   - Every walkable cell is replicated once per tick 0..T as an in/out
//     node pair joined by a capacity-1 edge, enforcing that at most one
//     agent ever occupies a cell at a given tick.
//   - Out-nodes at tick t connect to in-nodes at tick t+1 along the grid's
//     adjacency, plus a same-cell wait edge, each capacity 1.
//   - A super source attaches to each agent through a dedicated node
//     (capacity 1 throughout), and every frontier cell's out-node at the
//     last tick T drains to a super sink.
//   - Plan binary-searches the minimal makespan T at which a source-to-sink
//     flow of value len(origins) exists, then decomposes that flow back
//     into one path per agent.
//
// Complexity:
//
//   - Building the network for a given T: O(rows*cols*T).
//   - maxFlow: O(V*E) worst case (BFS shortest augmenting path,
//     unit-capacity specialization of Edmonds-Karp).
//   - Plan: O(log T*) network solves via binary search, each paying the
//     above.
//
// Errors:
//
//   - ErrNoAgents: Plan was called with no origins.
//   - ErrInfeasible: no feasible makespan was found within MaxMakespan.
//   - pathfind.ErrNoFrontier: an origin cannot reach any frontier cell at
//     all, independent of other agents.
//
// Options:
//
//   - WithMaxMakespan(n): bound the doubling phase of the binary search.
//   - WithPostprocess(): run the deadlock-breaking pass over decomposed
//     paths (see breakDeadlocks); off by default.
package flowplan
