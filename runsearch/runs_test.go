package runsearch_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/runsearch"
)

type step struct {
	S    runsearch.State
	Cost int64
}

func collect(seq func(func(runsearch.State, int64) bool)) []step {
	var out []step
	for s, c := range seq {
		out = append(out, step{s, c})
	}
	return out
}

// TestRuns_Perpendicular walks from the middle of column 1 of a 5×5 grid
// heading East: only South and North runs are produced, with cumulative costs.
func TestRuns_Perpendicular(t *testing.T) {
	g := mustParse(t, `11911
12911
11911
13911
14911
`)
	got := collect(runsearch.Runs(g, runsearch.State{X: 1, Y: 2, Dir: runsearch.East}, 1, 3))
	want := []step{
		{runsearch.State{X: 1, Y: 3, Dir: runsearch.South}, 3},
		{runsearch.State{X: 1, Y: 4, Dir: runsearch.South}, 7},
		{runsearch.State{X: 1, Y: 1, Dir: runsearch.North}, 2},
		{runsearch.State{X: 1, Y: 0, Dir: runsearch.North}, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Runs mismatch (-want +got):\n%s", diff)
	}
}

// TestRuns_MinRunSkipsShortRuns checks the first minRun-1 cells are paid
// for but not yielded.
func TestRuns_MinRunSkipsShortRuns(t *testing.T) {
	g := mustParse(t, "123456789\n")
	got := collect(runsearch.Runs(g, runsearch.State{X: 0, Y: 0, Dir: runsearch.South}, 4, 6))
	want := []step{
		{runsearch.State{X: 4, Y: 0, Dir: runsearch.East}, 2 + 3 + 4 + 5},
		{runsearch.State{X: 5, Y: 0, Dir: runsearch.East}, 2 + 3 + 4 + 5 + 6},
		{runsearch.State{X: 6, Y: 0, Dir: runsearch.East}, 2 + 3 + 4 + 5 + 6 + 7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Runs mismatch (-want +got):\n%s", diff)
	}
}

// TestRuns_StopsAtBorder: from every real cell, with maxRun larger than the
// grid, each run yields exactly the real cells between the cell and the
// border, never a padding cell.
func TestRuns_StopsAtBorder(t *testing.T) {
	g := randomGrid(t, 3, 6, 4)
	maxRun := g.Width() + g.Height()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			for d := runsearch.North; d <= runsearch.West; d++ {
				counts := map[runsearch.Direction]int{}
				for s := range runsearch.Runs(g, runsearch.State{X: x, Y: y, Dir: d}, 1, maxRun) {
					require.True(t, g.InBounds(s.X, s.Y), "yielded padding %+v", s)
					counts[s.Dir]++
				}
				for _, p := range d.Perpendicular() {
					require.Equal(t, cellsToBorder(g.Width(), g.Height(), x, y, p), counts[p],
						"from (%d,%d) heading %v", x, y, p)
				}
				require.Zero(t, counts[d])
				require.Zero(t, counts[d.Opposite()])
			}
		}
	}
}

func cellsToBorder(w, h, x, y int, d runsearch.Direction) int {
	switch d {
	case runsearch.North:
		return y
	case runsearch.South:
		return h - 1 - y
	case runsearch.West:
		return x
	default:
		return w - 1 - x
	}
}

func TestRuns_EarlyBreak(t *testing.T) {
	g := randomGrid(t, 5, 8, 8)
	n := 0
	for range runsearch.Runs(g, runsearch.State{X: 3, Y: 3, Dir: runsearch.North}, 1, 5) {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestDirection(t *testing.T) {
	for d := runsearch.North; d <= runsearch.West; d++ {
		require.Equal(t, d, d.Opposite().Opposite())
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		require.Equal(t, [2]int{-dx, -dy}, [2]int{ox, oy})

		for _, p := range d.Perpendicular() {
			require.NotEqual(t, d, p)
			require.NotEqual(t, d.Opposite(), p)
			px, py := p.Delta()
			require.Zero(t, dx*px+dy*py, "%v is not perpendicular to %v", p, d)
		}
	}
	require.Equal(t, "N", runsearch.North.String())
	require.Equal(t, "W", runsearch.West.String())
	require.Equal(t, "Direction(9)", runsearch.Direction(9).String())
	require.Panics(t, func() { runsearch.Direction(9).Delta() })
}
