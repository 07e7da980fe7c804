// Package runsearch finds the cheapest crossing of a cost grid when movement
// is made of straight runs with a minimum and maximum length.
//
// Overview:
//
//   - The mover starts on the top-left cell of a costgrid.Grid and must stop
//     on the bottom-right cell. Entering a cell costs that cell's value.
//   - Every run goes straight for minRun..maxRun cells. After a run the mover
//     turns 90° left or right; it never continues straight into a new run and
//     never reverses.
//   - The search is Dijkstra over run-ending states with a lazy-deletion
//     frontier. It is single-threaded, deterministic and side-effect free.
//
// API reference:
//
//	func MinCost(g *costgrid.Grid, minRun, maxRun int, opts ...Option) (int64, error)
//	func MustMinCost(g *costgrid.Grid, minRun, maxRun int, opts ...Option) int64
//	func Runs(g *costgrid.Grid, s State, minRun, maxRun int) iter.Seq2[State, int64]
//	func MinCostStepwise(g *costgrid.Grid, minRun, maxRun int) (int64, error)
//
// Typical bounds are (1, 3) and (4, 10):
//
//	part1, err := runsearch.MinCost(g, 1, 3)
//	part2, err := runsearch.MinCost(g, 4, 10)
//
// Memory/time trade-off:
//
//   - MinCost keeps run length out of the state (4·W·H states, up to
//     2·maxRun successors each).
//   - MinCostStepwise adds run length to the state (4·W·H·maxRun states,
//     at most 3 successors each) and solves it with gonum's Dijkstra. Both
//     always return the same value.
//
// Thread safety:
//
//   - A Grid is immutable, so any number of searches may share it.
//   - Each call owns its frontier and settled table.
package runsearch
