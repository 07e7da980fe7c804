// Package costgrid holds the immutable movement-cost model consumed by the
// run-constrained search in package runsearch.
//
// What:
//
//   - Grid wraps a rectangular [][]int of strictly positive per-cell costs.
//   - The real cells are surrounded by a one-cell ring of padding whose cost
//     is the Sentinel value 0. Any coordinate outside the real grid answers
//     Sentinel, so walkers detect the border by cost alone.
//   - Parse, ParseString and Load read the textual form: one digit 1–9 per
//     cell, one row per line.
//
// Why:
//
//   - Search code never bounds-checks; it stops a run on the first Sentinel.
//   - A positive-cost invariant keeps 0 unambiguous.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory.
//   - Cost, InBounds, Target: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonPositiveCost: a real cell holds a cost ≤ 0.
//   - ErrBadDigit: textual input holds a character outside 1–9.
package costgrid
