package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/lcmae"
)

// Violation describes one failed property from a Check run.
type Violation struct {
	Kind   string
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Kind, v.Detail)
}

// ReadSolution parses a solution file written by WriteSolution back into
// per-agent cell paths.
func ReadSolution(r io.Reader) ([][]grid.Cell, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var paths [][]grid.Cell
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		path := make([]grid.Cell, len(fields))
		for i, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: solution cell %q: %v", ErrParse, f, err)
			}
			path[i] = grid.Cell(id)
		}
		paths = append(paths, path)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return paths, nil
}

// Check validates a solution against the grid and scenario it was produced
// for: length uniformity (P4), vertex non-collision (P1), start-cell
// consistency (P3), and 4-adjacency-or-wait between consecutive cells (P2).
// It also flags any agent whose final cell is still dangerous, per the
// non-fatal deadlock/panicked-failure outcome. Returns every violation
// found; a nil/empty result means the solution is valid.
func Check(g *grid.Grid, specs []lcmae.AgentSpec, paths [][]grid.Cell) []Violation {
	var violations []Violation

	if len(paths) != len(specs) {
		violations = append(violations, Violation{"agent-count", fmt.Sprintf("solution has %d agents, scenario has %d", len(paths), len(specs))})
		return violations
	}

	length := -1
	for i, path := range paths {
		if length == -1 {
			length = len(path)
		} else if len(path) != length {
			violations = append(violations, Violation{"length", fmt.Sprintf("agent %d has length %d, want %d", i, len(path), length)})
		}
	}

	for i, path := range paths {
		if len(path) == 0 {
			continue
		}
		if path[0] != specs[i].Origin {
			violations = append(violations, Violation{"start", fmt.Sprintf("agent %d starts at %v, scenario origin is %v", i, path[0], specs[i].Origin)})
		}
	}

	for i, path := range paths {
		for t := 1; t < len(path); t++ {
			prev, curr := path[t-1], path[t]
			if curr == prev {
				continue
			}
			if !isNeighbor(g, prev, curr) {
				violations = append(violations, Violation{"adjacency", fmt.Sprintf("agent %d tick %d: %v -> %v is not a wait or grid neighbor", i, t, prev, curr)})
			}
		}
	}

	maxT := length
	for t := 0; t < maxT; t++ {
		seen := make(map[grid.Cell]int, len(paths))
		for i, path := range paths {
			if t >= len(path) {
				continue
			}
			if owner, ok := seen[path[t]]; ok {
				violations = append(violations, Violation{"collision", fmt.Sprintf("tick %d: agents %d and %d both at %v", t, owner, i, path[t])})
				continue
			}
			seen[path[t]] = i
		}
	}

	for i, path := range paths {
		if len(path) == 0 {
			continue
		}
		final := path[len(path)-1]
		if g.Dangerous(final) {
			violations = append(violations, Violation{"unsafe-end", fmt.Sprintf("agent %d ends at dangerous cell %v", i, final)})
		}
	}

	return violations
}

func isNeighbor(g *grid.Grid, a, b grid.Cell) bool {
	for _, n := range g.Neighbors(a) {
		if n == b {
			return true
		}
	}

	return false
}
