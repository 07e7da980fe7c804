package runsearch

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/crucible/costgrid"
)

// stepIDs numbers the nodes of the step graph. A step node is a cell, the
// heading it was entered with and the length of the current run (1..maxRun).
// The synthetic start and sink nodes follow the step nodes.
type stepIDs struct {
	w, maxRun int
	start     int64
	sink      int64
}

func newStepIDs(g *costgrid.Grid, maxRun int) stepIDs {
	n := int64(g.Width()) * int64(g.Height()) * 4 * int64(maxRun)
	return stepIDs{w: g.Width(), maxRun: maxRun, start: n, sink: n + 1}
}

func (ids stepIDs) node(x, y int, d Direction, run int) int64 {
	cell := int64(y)*int64(ids.w) + int64(x)
	return (cell*4+int64(d))*int64(ids.maxRun) + int64(run-1)
}

// StepGraph builds the single-cell formulation of the search: run length is a
// bounded state dimension and every edge enters exactly one cell, weighted by
// that cell's cost. The returned start node has edges into the first cell of
// every initial heading; every state on the target cell whose run is at least
// minRun has a zero-weight edge into the returned sink node.
//
// The graph has up to 4·W·H·maxRun + 2 nodes; it is meant for modest grids.
func StepGraph(g *costgrid.Grid, minRun, maxRun int) (*simple.WeightedDirectedGraph, graph.Node, graph.Node, error) {
	if g == nil {
		return nil, nil, nil, ErrNilGrid
	}
	effMin, err := validateRunBounds(minRun, maxRun)
	if err != nil {
		return nil, nil, nil, err
	}

	ids := newStepIDs(g, maxRun)
	sg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	start, sink := simple.Node(ids.start), simple.Node(ids.sink)
	sg.AddNode(start)
	sg.AddNode(sink)

	link := func(from int64, x, y int, d Direction, run int) {
		c := g.Cost(x, y)
		if c == costgrid.Sentinel {
			return
		}
		to := simple.Node(ids.node(x, y, d, run))
		sg.SetWeightedEdge(sg.NewWeightedEdge(simple.Node(from), to, float64(c)))
	}

	tx, ty := g.Target()
	if tx == 0 && ty == 0 {
		sg.SetWeightedEdge(sg.NewWeightedEdge(start, sink, 0))
	}
	for d := North; d <= West; d++ {
		dx, dy := d.Delta()
		link(ids.start, dx, dy, d, 1)
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			for d := North; d <= West; d++ {
				dx, dy := d.Delta()
				for run := 1; run <= maxRun; run++ {
					from := ids.node(x, y, d, run)
					if run < maxRun {
						link(from, x+dx, y+dy, d, run+1)
					}
					if run < effMin {
						continue
					}
					for _, p := range d.Perpendicular() {
						px, py := p.Delta()
						link(from, x+px, y+py, p, 1)
					}
					if x == tx && y == ty {
						sg.SetWeightedEdge(sg.NewWeightedEdge(simple.Node(from), sink, 0))
					}
				}
			}
		}
	}

	return sg, start, sink, nil
}

// MinCostStepwise computes the same value as MinCost on the graph built by
// StepGraph, using gonum's Dijkstra.
func MinCostStepwise(g *costgrid.Grid, minRun, maxRun int) (int64, error) {
	sg, start, sink, err := StepGraph(g, minRun, maxRun)
	if err != nil {
		return 0, err
	}

	w := path.DijkstraFrom(start, sg).WeightTo(sink.ID())
	if math.IsInf(w, 1) {
		return 0, ErrUnreachable
	}

	return int64(w), nil
}
