package flowplan

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/pathfind"
)

// Plan computes a time-expanded max-flow evacuation plan: the minimal
// makespan T* at which every agent in origins can reach some frontier
// cell with no two agents ever occupying the same cell at the same tick,
// and one path per agent (in origins' order), each of length T*+1 (ticks
// 0..T*, padded by repeating the final cell for agents that finish early).
func Plan(g *grid.Grid, origins []grid.Cell, opts ...Option) ([][]grid.Cell, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(origins) == 0 {
		return nil, ErrNoAgents
	}

	lowerBound := 0
	for _, o := range origins {
		_, steps, ok := pathfind.ClosestFrontier(g, o)
		if !ok {
			return nil, pathfind.ErrNoFrontier
		}
		if steps-1 > lowerBound {
			lowerBound = steps - 1
		}
	}

	T := lowerBound
	best, err := solveAt(g, origins, T)
	if err != nil {
		return nil, err
	}
	for best.flowValue != len(origins) {
		if T == 0 {
			T = 1
		} else {
			T *= 2
		}
		if cfg.MaxMakespan > 0 && T > cfg.MaxMakespan {
			return nil, fmt.Errorf("%w (searched up to %d ticks)", ErrInfeasible, cfg.MaxMakespan)
		}
		best, err = solveAt(g, origins, T)
		if err != nil {
			return nil, err
		}
	}

	lo, hi := lowerBound-1, T
	for lo < hi-1 {
		mid := (lo + hi) / 2
		candidate, err := solveAt(g, origins, mid)
		if err != nil {
			return nil, err
		}
		if candidate.flowValue == len(origins) {
			hi, best = mid, candidate
		} else {
			lo = mid
		}
	}

	paths, err := decomposePaths(best.net, best.fwd, origins, hi)
	if err != nil {
		return nil, err
	}
	if cfg.Postprocess {
		paths = breakDeadlocks(paths)
	}

	return paths, nil
}

type solution struct {
	net       *core.Graph
	fwd       map[string][]string
	flowValue int
}

func solveAt(g *grid.Grid, origins []grid.Cell, T int) (*solution, error) {
	net, fwd, err := buildNetwork(g, origins, T)
	if err != nil {
		return nil, err
	}
	flowValue, err := maxFlow(net, sourceID, sinkID)
	if err != nil {
		return nil, err
	}

	return &solution{net: net, fwd: fwd, flowValue: flowValue}, nil
}

// decomposePaths traces each agent's unit of flow forward from its
// dedicated source node to the sink, collecting the cell of every in-node
// visited along the way, and pads every path to a uniform length T+1.
func decomposePaths(net *core.Graph, fwd map[string][]string, origins []grid.Cell, T int) ([][]grid.Cell, error) {
	paths := make([][]grid.Cell, len(origins))
	for i := range origins {
		cur := agentNode(i)
		var cells []grid.Cell
		for cur != sinkID {
			next, err := nextFlowedNode(net, fwd, cur)
			if err != nil {
				return nil, fmt.Errorf("flowplan: decomposing agent %d: %w", i, err)
			}
			if c, _, kind, ok := parseCellNode(next); ok && kind == 'i' {
				cells = append(cells, c)
			}
			cur = next
		}
		paths[i] = padPath(cells, T)
	}

	return paths, nil
}

func nextFlowedNode(net *core.Graph, fwd map[string][]string, cur string) (string, error) {
	for _, cand := range fwd[cur] {
		ok, err := flowed(net, cur, cand)
		if err != nil {
			return "", err
		}
		if ok {
			return cand, nil
		}
	}

	return "", fmt.Errorf("no outgoing flow from %s", cur)
}

func parseCellNode(id string) (cell grid.Cell, tick int, kind byte, ok bool) {
	var c, t int
	if n, _ := fmt.Sscanf(id, "in:%d:%d", &c, &t); n == 2 {
		return grid.Cell(c), t, 'i', true
	}
	if n, _ := fmt.Sscanf(id, "out:%d:%d", &c, &t); n == 2 {
		return grid.Cell(c), t, 'o', true
	}

	return 0, 0, 0, false
}

func padPath(cells []grid.Cell, T int) []grid.Cell {
	for len(cells) < T+1 {
		cells = append(cells, cells[len(cells)-1])
	}

	return cells
}
