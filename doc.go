// Package crucible computes the cheapest crossing of a cost grid for a mover
// that travels in straight runs of bounded length and must turn 90° between
// runs.
//
// Under the hood, everything is organized under two subpackages and a command:
//
//	costgrid/     immutable, border-padded cost model and its digit-text loader
//	runsearch/    run generator, frontier, settled table and the Dijkstra driver,
//	              plus the single-cell step-graph formulation on gonum
//	cmd/crucible/ loads a grid and prints the (1,3) and (4,10) answers
//
// Quick example:
//
//	g, err := costgrid.Load("input")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	short, err := runsearch.MinCost(g, 1, 3)
//	long, err := runsearch.MinCost(g, 4, 10)
package crucible
