package runsearch

import (
	"iter"

	"github.com/katalvlaran/crucible/costgrid"
)

// Runs enumerates the successors of s: for each heading perpendicular to
// s.Dir it walks k = 1..maxRun cells straight, summing the cost of every
// entered cell, and yields (end state, run cost) for each k ≥ minRun.
// A Sentinel cell ends that run; nothing past it is yielded.
//
// The run cost is relative to s; callers add their own distance.
// The sequence is lazy and honours an early break.
//
// Complexity: O(maxRun) per call.
func Runs(g *costgrid.Grid, s State, minRun, maxRun int) iter.Seq2[State, int64] {
	return func(yield func(State, int64) bool) {
		var (
			x, y, dx, dy int
			c            int
			sum          int64
		)
		for _, d := range s.Dir.Perpendicular() {
			dx, dy = d.Delta()
			x, y = s.X, s.Y
			sum = 0
			for k := 1; k <= maxRun; k++ {
				x, y = x+dx, y+dy
				c = g.Cost(x, y)
				if c == costgrid.Sentinel {
					break
				}
				sum += int64(c)
				if k < minRun {
					continue
				}
				if !yield(State{X: x, Y: y, Dir: d}, sum) {
					return
				}
			}
		}
	}
}
