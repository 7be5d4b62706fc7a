package flowplan

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/evacplan/grid"
)

// sourceID and sinkID name the two super-terminal vertices of every
// time-expanded network this package builds.
const (
	sourceID = "S"
	sinkID   = "SINK"
)

func inNode(c grid.Cell, t int) string  { return fmt.Sprintf("in:%d:%d", c, t) }
func outNode(c grid.Cell, t int) string { return fmt.Sprintf("out:%d:%d", c, t) }
func agentNode(i int) string            { return fmt.Sprintf("agent:%d", i) }

// buildNetwork constructs the time-expanded unit-capacity network for a
// makespan of T ticks.
//
// Every walkable cell gets an in/out node pair at each tick 0..T, joined
// by a capacity-1 edge: this is what forbids two agents from ever
// occupying the same cell at the same tick. Out-nodes at tick t connect to
// in-nodes at tick t+1 along the grid's adjacency (plus a wait edge to the
// same cell), each capacity 1. Each agent attaches to the source through a
// dedicated node so a later augmenting path can be traced back to the
// agent that owns it. Only the out-nodes of frontier cells at the last
// tick T drain to the sink, so every agent holds a cell at every tick
// 0..T and ends on the frontier.
//
// Alongside the *core.Graph, buildNetwork returns its static forward
// adjacency (fwd): this is the ground truth used by path decomposition,
// since the graph itself accumulates residual reverse edges once maxFlow
// runs over it.
func buildNetwork(g *grid.Grid, origins []grid.Cell, T int) (*core.Graph, map[string][]string, error) {
	net := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	fwd := make(map[string][]string)

	var ferr error
	add := func(from, to string) {
		if ferr != nil {
			return
		}
		fwd[from] = append(fwd[from], to)
		if _, err := net.AddEdge(from, to, 1); err != nil {
			ferr = fmt.Errorf("flowplan: building network edge %s->%s: %w", from, to, err)
		}
	}

	cells := make([]grid.Cell, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := g.CellAt(r, c)
			if g.Walkable(cell) {
				cells = append(cells, cell)
			}
		}
	}

	for _, c := range cells {
		for t := 0; t <= T; t++ {
			add(inNode(c, t), outNode(c, t))
		}
	}
	for t := 0; t < T; t++ {
		for _, c := range cells {
			add(outNode(c, t), inNode(c, t+1))
			for _, n := range g.Neighbors(c) {
				add(outNode(c, t), inNode(n, t+1))
			}
		}
	}

	for i, o := range origins {
		add(sourceID, agentNode(i))
		add(agentNode(i), inNode(o, 0))
	}

	for _, c := range g.Frontier() {
		add(outNode(c, T), sinkID)
	}

	if ferr != nil {
		return nil, nil, ferr
	}

	return net, fwd, nil
}
