package scenario_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/evacplan/agent"
	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/lcmae"
	"github.com/katalvlaran/evacplan/scenario"
)

const testMap = `type octile
height 2
width 3
map
...
..@
`

func TestParseMapBuildsWalkabilityMatrix(t *testing.T) {
	values, err := scenario.ParseMap(strings.NewReader(testMap))
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	if len(values) != 2 || len(values[0]) != 3 {
		t.Fatalf("shape = %dx%d; want 2x3", len(values), len(values[0]))
	}
	if values[1][2] {
		t.Fatal("cell (1,2) should be a wall")
	}
	if !values[0][0] {
		t.Fatal("cell (0,0) should be walkable")
	}
}

func TestParseMapRejectsBadHeader(t *testing.T) {
	bad := "type grid\nheight 2\nwidth 3\nmap\n...\n...\n"
	if _, err := scenario.ParseMap(strings.NewReader(bad)); !errors.Is(err, scenario.ErrParse) {
		t.Fatalf("err = %v; want ErrParse", err)
	}
}

func TestParseMapRejectsWrongRowWidth(t *testing.T) {
	bad := "type octile\nheight 2\nwidth 3\nmap\n..\n...\n"
	if _, err := scenario.ParseMap(strings.NewReader(bad)); !errors.Is(err, scenario.ErrParse) {
		t.Fatalf("err = %v; want ErrParse", err)
	}
}

func TestParseScenarioDecodesDangerAndAgents(t *testing.T) {
	text := "0 1\n0f 3r 5s2 2p\n"
	danger, specs, err := scenario.ParseScenario(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	if !danger[grid.Cell(0)] || !danger[grid.Cell(1)] || danger[grid.Cell(2)] {
		t.Fatalf("danger set = %v; want {0,1}", danger)
	}
	if len(specs) != 4 {
		t.Fatalf("len(specs) = %d; want 4", len(specs))
	}
	if specs[0].Type != agent.ClosestFrontier || specs[0].Origin != 0 {
		t.Fatalf("specs[0] = %+v", specs[0])
	}
	if specs[1].Type != agent.Retargeting || specs[1].Origin != 3 {
		t.Fatalf("specs[1] = %+v", specs[1])
	}
	if specs[2].Type != agent.Static || specs[2].Origin != 5 || specs[2].Goal != 2 {
		t.Fatalf("specs[2] = %+v", specs[2])
	}
	if specs[3].Type != agent.Panicked || specs[3].Origin != 2 {
		t.Fatalf("specs[3] = %+v", specs[3])
	}
}

func TestParseScenarioRejectsStaticWithoutGoal(t *testing.T) {
	text := "\n5s\n"
	if _, _, err := scenario.ParseScenario(strings.NewReader(text)); !errors.Is(err, scenario.ErrParse) {
		t.Fatalf("err = %v; want ErrParse", err)
	}
}

func TestParseScenarioRejectsUnknownType(t *testing.T) {
	text := "\n5z\n"
	if _, _, err := scenario.ParseScenario(strings.NewReader(text)); !errors.Is(err, scenario.ErrParse) {
		t.Fatalf("err = %v; want ErrParse", err)
	}
}

func TestWriteSolutionFormatsColumns(t *testing.T) {
	var buf bytes.Buffer
	paths := [][]grid.Cell{{0, 1, 11}}
	if err := scenario.WriteSolution(&buf, paths); err != nil {
		t.Fatalf("WriteSolution: %v", err)
	}
	if got, want := buf.String(), "00 01 11\n"; got != want {
		t.Fatalf("output = %q; want %q", got, want)
	}
}

func TestReadSolutionRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	paths := [][]grid.Cell{{0, 1, 2}, {3, 3, 4}}
	if err := scenario.WriteSolution(&buf, paths); err != nil {
		t.Fatalf("WriteSolution: %v", err)
	}
	got, err := scenario.ReadSolution(&buf)
	if err != nil {
		t.Fatalf("ReadSolution: %v", err)
	}
	if len(got) != 2 || len(got[0]) != 3 || got[1][1] != 3 {
		t.Fatalf("round trip mismatch: %v", got)
	}
}

func TestCheckFlagsCollisionAndBadStart(t *testing.T) {
	g, err := grid.New(1, 4, func(grid.Cell) bool { return true }, func(c grid.Cell) bool { return c == 0 })
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	specs := []lcmae.AgentSpec{{Origin: 0}, {Origin: 1}}

	// Agent 0 claims origin 0 but the solution starts it at 1; agents 0 and
	// 1 collide at tick 1.
	paths := [][]grid.Cell{{1, 2}, {1, 2}}

	violations := scenario.Check(g, specs, paths)
	if len(violations) == 0 {
		t.Fatal("expected violations, got none")
	}
}
