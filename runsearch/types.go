// Package runsearch defines core types, configuration options and sentinel
// errors for the run-constrained shortest-path search.
//
// A mover crosses a costgrid.Grid from the top-left to the bottom-right cell.
// It moves in straight runs of between minRun and maxRun cells; after each run
// it must turn 90°, never straight on and never back.
//
// Options:
//
//	– OnSettle: called once per state when its distance becomes final.
//	– OnPush:   called for every frontier push, seeds included.
//	– Stats:    receives push/pop/stale/settle counters after the search.
//
// Errors (sentinel):
//
//	– ErrNilGrid       if the provided grid pointer is nil.
//	– ErrBadRunBounds  if minRun < 0, maxRun < 1 or minRun > maxRun.
//	– ErrUnreachable   if the frontier empties before the target is popped.
package runsearch

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *costgrid.Grid was passed.
	ErrNilGrid = errors.New("runsearch: grid is nil")

	// ErrBadRunBounds indicates an unusable (minRun, maxRun) pair.
	ErrBadRunBounds = errors.New("runsearch: run bounds must satisfy 0 <= minRun <= maxRun and maxRun >= 1")

	// ErrUnreachable indicates the frontier was exhausted without reaching
	// the target cell. No partial result exists.
	ErrUnreachable = errors.New("runsearch: target cell is unreachable under the run bounds")
)

// Direction is one of the four compass headings.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Opposite returns the heading a mover may never take right after d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Perpendicular returns the only two headings a mover may take after a run in d.
func (d Direction) Perpendicular() [2]Direction {
	return [2]Direction{(d + 1) % 4, (d + 3) % 4}
}

// Delta returns the unit step of d; y grows southwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	panic(fmt.Sprintf("runsearch: invalid direction %d", d))
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// State is a search vertex: the cell a run ended on and the heading of that
// run. It carries no run length; each transition is a whole run.
type State struct {
	X, Y int
	Dir  Direction
}

// seeds returns the two synthetic origin states. Their Dir only selects which
// axis the first run uses: the perpendiculars of East are {South, North} and
// of South are {West, East}, so together they launch every first run.
func seeds() [2]State {
	return [2]State{
		{X: 0, Y: 0, Dir: East},
		{X: 0, Y: 0, Dir: South},
	}
}

// Stats collects counters from one search.
type Stats struct {
	Pushed  int // frontier pushes, seeds included
	Popped  int // frontier pops
	Stale   int // pops discarded because the state was already settled
	Settled int // states whose distance became final
}

// Options configures hooks and instrumentation for MinCost.
type Options struct {
	// OnSettle is called once per state, with its final distance.
	OnSettle func(s State, dist int64)

	// OnPush is called for every frontier push. For the two seeds from == to.
	OnPush func(from, to State, dist int64)

	// Stats, if non-nil, is overwritten with the search counters on return.
	Stats *Stats
}

// Option represents a functional option for configuring MinCost.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks and no stats sink.
func DefaultOptions() Options {
	return Options{
		OnSettle: func(State, int64) {},
		OnPush:   func(State, State, int64) {},
	}
}

// WithOnSettle registers a callback run when a state is settled.
func WithOnSettle(fn func(s State, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnPush registers a callback run on each frontier push.
func WithOnPush(fn func(from, to State, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithStats asks MinCost to report its counters into st.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}

// validateRunBounds checks (minRun, maxRun) and returns the effective minimum
// run: a run always enters at least one cell, so minRun 0 behaves like 1.
func validateRunBounds(minRun, maxRun int) (int, error) {
	if minRun < 0 || maxRun < 1 || minRun > maxRun {
		return 0, fmt.Errorf("%w: minRun=%d maxRun=%d", ErrBadRunBounds, minRun, maxRun)
	}

	return max(minRun, 1), nil
}
