package flowplan_test

import (
	"testing"

	"github.com/katalvlaran/evacplan/flowplan"
	"github.com/katalvlaran/evacplan/grid"
)

// 4x4 grid, danger = top row (cells 0-3), frontier = row 1 (cells 4-7).
func dangerGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(4, 4, func(grid.Cell) bool { return true }, func(c grid.Cell) bool { return c < 4 })
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}

	return g
}

func assertNoCollisions(t *testing.T, paths [][]grid.Cell) {
	t.Helper()
	maxT := 0
	for _, p := range paths {
		if len(p) > maxT {
			maxT = len(p)
		}
	}
	for tick := 0; tick < maxT; tick++ {
		seen := make(map[grid.Cell]int)
		for agent, p := range paths {
			c := p[len(p)-1]
			if tick < len(p) {
				c = p[tick]
			}
			if owner, ok := seen[c]; ok {
				t.Fatalf("tick %d: agents %d and %d both at cell %d", tick, owner, agent, c)
			}
			seen[c] = agent
		}
	}
}

func TestPlanSingleAgentReachesFrontier(t *testing.T) {
	g := dangerGrid(t)
	paths, err := flowplan.Plan(g, []grid.Cell{14})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d; want 1", len(paths))
	}
	last := paths[0][len(paths[0])-1]
	if !g.IsFrontier(last) {
		t.Errorf("final cell %d is not on the frontier", last)
	}
	if paths[0][0] != 14 {
		t.Errorf("path does not start at the origin: %v", paths[0])
	}
}

func TestPlanMultipleAgentsNeverCollide(t *testing.T) {
	g := dangerGrid(t)
	origins := []grid.Cell{12, 13, 14, 15}
	paths, err := flowplan.Plan(g, origins)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(paths) != len(origins) {
		t.Fatalf("len(paths) = %d; want %d", len(paths), len(origins))
	}
	for i, p := range paths {
		if p[0] != origins[i] {
			t.Errorf("agent %d path does not start at its origin: %v", i, p)
		}
		last := p[len(p)-1]
		if !g.IsFrontier(last) {
			t.Errorf("agent %d final cell %d is not on the frontier", i, last)
		}
	}
	assertNoCollisions(t, paths)
}

func TestPlanAgentAlreadyOnFrontier(t *testing.T) {
	g := dangerGrid(t)
	paths, err := flowplan.Plan(g, []grid.Cell{5})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(paths[0]) != 1 || paths[0][0] != 5 {
		t.Fatalf("paths[0] = %v; want [5]", paths[0])
	}
}

func TestPlanRejectsNoAgents(t *testing.T) {
	g := dangerGrid(t)
	if _, err := flowplan.Plan(g, nil); err != flowplan.ErrNoAgents {
		t.Fatalf("err = %v; want ErrNoAgents", err)
	}
}

func TestPlanNoFrontierIsUnreachable(t *testing.T) {
	g, err := grid.New(3, 3, func(grid.Cell) bool { return true }, func(grid.Cell) bool { return false })
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	if _, err := flowplan.Plan(g, []grid.Cell{0}); err == nil {
		t.Fatal("expected an error when the grid has no danger/frontier at all")
	}
}

func TestPlanWithPostprocessStillReachesFrontier(t *testing.T) {
	g := dangerGrid(t)
	origins := []grid.Cell{12, 13, 14, 15}
	paths, err := flowplan.Plan(g, origins, flowplan.WithPostprocess())
	if err != nil {
		t.Fatalf("Plan with postprocess: %v", err)
	}
	for i, p := range paths {
		last := p[len(p)-1]
		if !g.IsFrontier(last) {
			t.Errorf("agent %d final cell %d is not on the frontier", i, last)
		}
	}
}
