package costgrid

import (
	"fmt"
	"strings"
)

// Sentinel is the cost answered for every coordinate outside the real grid.
const Sentinel = 0

// Grid is an immutable, border-padded cost model.
// Real cells live at 0 ≤ x < Width(), 0 ≤ y < Height(); cells holds them
// row-major with a one-cell Sentinel ring, so the padded row stride is
// width+2.
type Grid struct {
	width, height int
	stride        int
	cells         []int
}

// New constructs a Grid from a non-empty, rectangular 2D slice of costs,
// indexed values[y][x]. It deep-copies the input.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNonPositiveCost
// (wrapped with the offending coordinate) if any cost is ≤ 0.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		width:  w,
		height: h,
		stride: w + 2,
		cells:  make([]int, (w+2)*(h+2)), // ring stays Sentinel
	}
	for y, row := range values {
		for x, c := range row {
			if c <= Sentinel {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrNonPositiveCost, x, y, c)
			}
			g.cells[g.index(x, y)] = c
		}
	}

	return g, nil
}

// index maps a real-grid coordinate (padding included, i.e. -1..W and -1..H)
// into the padded backing slice.
func (g *Grid) index(x, y int) int {
	return (y+1)*g.stride + (x + 1)
}

// Width returns the number of real columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of real rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) is a real (non-padding) cell.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cost returns the movement cost of entering (x,y). Real cells answer their
// cost (≥1); the padding ring and anything beyond it answer Sentinel.
// Complexity: O(1).
func (g *Grid) Cost(x, y int) int {
	if x < -1 || x > g.width || y < -1 || y > g.height {
		return Sentinel
	}

	return g.cells[g.index(x, y)]
}

// Target returns the bottom-right real cell.
func (g *Grid) Target() (x, y int) {
	return g.width - 1, g.height - 1
}

// Values returns a fresh copy of the real cells, indexed [y][x].
func (g *Grid) Values() [][]int {
	out := make([][]int, g.height)
	for y := range out {
		start := g.index(0, y)
		out[y] = make([]int, g.width)
		copy(out[y], g.cells[start:start+g.width])
	}

	return out
}

// String renders the grid in the textual form accepted by ParseString,
// one line per row, each row terminated by a newline.
// Costs above 9 cannot be expressed in that form and are rendered as '?'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.Cost(x, y)
			if c > 9 {
				sb.WriteByte('?')
				continue
			}
			sb.WriteByte(byte('0' + c))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
