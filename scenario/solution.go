package scenario

import (
	"fmt"
	"io"

	"github.com/katalvlaran/evacplan/grid"
)

// WriteSolution writes one line per agent: space-separated cell ids, each
// formatted with width 2 and leading zeros for columnar display. All lines
// are equal length (callers are expected to pass equal-length paths, the
// invariant the planner itself guarantees).
func WriteSolution(w io.Writer, paths [][]grid.Cell) error {
	for _, path := range paths {
		line := make([]byte, 0, len(path)*3)
		for i, c := range path {
			if i > 0 {
				line = append(line, ' ')
			}
			line = append(line, []byte(fmt.Sprintf("%02d", int(c)))...)
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("scenario: write solution: %w", err)
		}
	}

	return nil
}
