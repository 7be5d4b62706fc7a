package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseMap reads an octile map file:
//
//	type octile
//	height <rows>
//	width <cols>
//	map
//	<rows lines of exactly cols characters each>
//
// '@' marks a wall; every other character is walkable. Returns the
// walkability matrix consumed by grid.NewFromGrid. Header lines must match
// exactly, or ErrParse is returned.
func ParseMap(r io.Reader) ([][]bool, error) {
	scanner := bufio.NewScanner(r)

	if err := expectLine(scanner, "type octile"); err != nil {
		return nil, err
	}
	rows, err := expectKeyValue(scanner, "height")
	if err != nil {
		return nil, err
	}
	cols, err := expectKeyValue(scanner, "width")
	if err != nil {
		return nil, err
	}
	if err := expectLine(scanner, "map"); err != nil {
		return nil, err
	}

	values := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: map: expected %d rows, got %d", ErrParse, rows, r)
		}
		line := scanner.Text()
		if len(line) != cols {
			return nil, fmt.Errorf("%w: map row %d: expected width %d, got %d", ErrParse, r, cols, len(line))
		}
		row := make([]bool, cols)
		for c, ch := range line {
			row[c] = ch != '@'
		}
		values[r] = row
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return values, nil
}

func expectLine(scanner *bufio.Scanner, want string) error {
	if !scanner.Scan() {
		return fmt.Errorf("%w: expected %q, got EOF", ErrParse, want)
	}
	if got := strings.TrimSpace(scanner.Text()); got != want {
		return fmt.Errorf("%w: expected %q, got %q", ErrParse, want, got)
	}

	return nil
}

func expectKeyValue(scanner *bufio.Scanner, key string) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("%w: expected %q line, got EOF", ErrParse, key)
	}
	line := strings.TrimSpace(scanner.Text())
	prefix := key + " "
	if !strings.HasPrefix(line, prefix) {
		return 0, fmt.Errorf("%w: expected %q line, got %q", ErrParse, key, line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line[len(prefix):]))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrParse, key, err)
	}

	return n, nil
}
