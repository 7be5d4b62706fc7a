package scenario

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/evacplan/agent"
	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/lcmae"
)

// descriptorRe matches one agent token: an origin cell id, a single type
// character, and an optional trailing goal cell id (required only for the
// static type).
var descriptorRe = regexp.MustCompile(`^(\d+)(.)(\d+)?$`)

// ParseScenario reads a two-line scenario file: a whitespace-separated list
// of dangerous cell ids, then a whitespace-separated list of agent
// descriptors matching (\d+)(.)(\d+)?. Returns the danger set and the
// agent specs in file order (which becomes registration/agent-ID order).
func ParseScenario(r io.Reader) (map[grid.Cell]bool, []lcmae.AgentSpec, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, nil, fmt.Errorf("%w: scenario: expected danger-cell line, got EOF", ErrParse)
	}
	danger, err := parseDangerLine(scanner.Text())
	if err != nil {
		return nil, nil, err
	}

	if !scanner.Scan() {
		return nil, nil, fmt.Errorf("%w: scenario: expected agent-descriptor line, got EOF", ErrParse)
	}
	specs, err := parseAgentLine(scanner.Text())
	if err != nil {
		return nil, nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return danger, specs, nil
}

func parseDangerLine(line string) (map[grid.Cell]bool, error) {
	fields := strings.Fields(line)
	danger := make(map[grid.Cell]bool, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: danger cell %q: %v", ErrParse, f, err)
		}
		danger[grid.Cell(id)] = true
	}

	return danger, nil
}

func parseAgentLine(line string) ([]lcmae.AgentSpec, error) {
	fields := strings.Fields(line)
	specs := make([]lcmae.AgentSpec, 0, len(fields))
	for _, f := range fields {
		spec, err := parseDescriptor(f)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

func parseDescriptor(token string) (lcmae.AgentSpec, error) {
	m := descriptorRe.FindStringSubmatch(token)
	if m == nil {
		return lcmae.AgentSpec{}, fmt.Errorf("%w: malformed agent descriptor %q", ErrParse, token)
	}
	origin, err := strconv.Atoi(m[1])
	if err != nil {
		return lcmae.AgentSpec{}, fmt.Errorf("%w: agent origin %q: %v", ErrParse, m[1], err)
	}

	spec := lcmae.AgentSpec{Origin: grid.Cell(origin)}
	typeChar := []rune(m[2])[0]
	switch typeChar {
	case charRetargeting:
		spec.Type = agent.Retargeting
	case charClosestFrontier:
		spec.Type = agent.ClosestFrontier
	case charPanicked:
		spec.Type = agent.Panicked
	case charStatic:
		spec.Type = agent.Static
		if m[3] == "" {
			return lcmae.AgentSpec{}, fmt.Errorf("%w: static agent %q missing required goal cell", ErrParse, token)
		}
		goal, err := strconv.Atoi(m[3])
		if err != nil {
			return lcmae.AgentSpec{}, fmt.Errorf("%w: static agent goal %q: %v", ErrParse, m[3], err)
		}
		spec.Goal = grid.Cell(goal)
	default:
		return lcmae.AgentSpec{}, fmt.Errorf("%w: unknown agent type %q in descriptor %q", ErrParse, string(typeChar), token)
	}

	return spec, nil
}

// Load parses mapR and scenarioR together and builds the combined Grid.
func Load(mapR, scenarioR io.Reader) (*grid.Grid, []lcmae.AgentSpec, error) {
	values, err := ParseMap(mapR)
	if err != nil {
		return nil, nil, err
	}
	danger, specs, err := ParseScenario(scenarioR)
	if err != nil {
		return nil, nil, err
	}
	g, err := grid.NewFromGrid(values, danger)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return g, specs, nil
}
