package costgrid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads the textual grid form from r: one digit 1–9 per cell, one row
// per line. Carriage returns and leading or trailing blank lines are ignored;
// a blank line between rows is a ragged row.
// Returns ErrBadDigit wrapped with the 1-based line and column of the first
// offending character, ErrEmptyGrid, ErrNonRectangular, or a wrapped read error.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]int
	pendingBlank := 0
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			if len(rows) > 0 {
				pendingBlank++
			}
			continue
		}
		for ; pendingBlank > 0; pendingBlank-- {
			rows = append(rows, nil)
		}

		row := make([]int, 0, len(text))
		for col, ch := range text {
			if ch < '1' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrBadDigit, line, col+1, ch)
			}
			row = append(row, int(ch-'0'))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("costgrid: read: %w", err)
	}

	return New(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Load parses the grid stored in the named file.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("costgrid: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("costgrid: load %q: %w", path, err)
	}

	return g, nil
}
