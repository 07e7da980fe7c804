// Package runsearch implements a Dijkstra search over run-ending states.
//
// Each State is the cell where a straight run ended plus that run's heading;
// the edges out of it are every legal next run (see Runs). Because all cell
// costs are positive, the first pop of any state carries its true minimal
// distance, and the first pop of any state on the target cell is the answer.
//
// Complexity:
//
//   - Time:  O(S·R·log(S·R)) where S = 4·W·H states and R = 2·maxRun runs per state.
//   - Space: O(S·R) for the frontier under lazy deletion, O(S) for the settled table.
//
// Notes on implementation choices:
//
//   - Run length is not part of the state; a transition is a whole run.
//     MinCostStepwise is the equivalent single-cell design.
//   - Lazy deletion: duplicates are pushed freely and dropped when popped
//     for an already-settled state.
package runsearch

import (
	"fmt"

	"github.com/katalvlaran/crucible/costgrid"
)

// MinCost returns the minimal accumulated cost of travelling from the top-left
// cell of g to its bottom-right cell in runs of minRun..maxRun cells, turning
// 90° between runs. The start cell's cost is not paid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. 0 ≤ minRun ≤ maxRun, maxRun ≥ 1 (ErrBadRunBounds). minRun 0 acts as 1.
//
// If the target cannot be reached, MinCost returns ErrUnreachable.
// Calls share no state and may run concurrently on the same grid.
func MinCost(g *costgrid.Grid, minRun, maxRun int, opts ...Option) (int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return 0, ErrNilGrid
	}
	effMin, err := validateRunBounds(minRun, maxRun)
	if err != nil {
		return 0, err
	}

	tx, ty := g.Target()
	r := &runner{
		g:       g,
		options: cfg,
		minRun:  effMin,
		maxRun:  maxRun,
		tx:      tx,
		ty:      ty,
		pq:      newFrontier(),
		done:    make(settled, 4*g.Width()*g.Height()),
	}
	r.init()
	dist, err := r.process()
	if cfg.Stats != nil {
		*cfg.Stats = r.stats
	}

	return dist, err
}

// MustMinCost is like MinCost but panics on any error, for hosts that treat an
// unreachable target as a broken invariant.
func MustMinCost(g *costgrid.Grid, minRun, maxRun int, opts ...Option) int64 {
	dist, err := MinCost(g, minRun, maxRun, opts...)
	if err != nil {
		panic(fmt.Sprintf("runsearch: MinCost(minRun=%d, maxRun=%d): %v", minRun, maxRun, err))
	}

	return dist
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *costgrid.Grid
	options Options
	minRun  int
	maxRun  int
	tx, ty  int       // target cell
	pq      *frontier // pending entries
	done    settled   // final distances
	stats   Stats
}

// init pushes the two origin seeds at distance 0.
func (r *runner) init() {
	for _, s := range seeds() {
		r.push(s, s, 0)
	}
}

func (r *runner) push(from, to State, dist int64) {
	r.pq.push(to, dist)
	r.stats.Pushed++
	r.options.OnPush(from, to, dist)
}

// process is the main loop: pop the closest entry, stop on the target,
// drop stale duplicates, settle, expand.
func (r *runner) process() (int64, error) {
	for {
		e, ok := r.pq.pop()
		if !ok {
			return 0, ErrUnreachable
		}
		r.stats.Popped++

		// 1) First arrival on the target cell is optimal.
		if e.state.X == r.tx && e.state.Y == r.ty {
			return e.dist, nil
		}

		// 2) Already settled: this entry is a stale duplicate.
		if !r.done.settle(e.state, e.dist) {
			r.stats.Stale++
			continue
		}
		r.stats.Settled++
		r.options.OnSettle(e.state, e.dist)

		// 3) Push every run out of the settled state.
		for next, cost := range Runs(r.g, e.state, r.minRun, r.maxRun) {
			r.push(e.state, next, e.dist+cost)
		}
	}
}
