package runsearch_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/costgrid"
	"github.com/katalvlaran/crucible/runsearch"
)

// exampleGrid is the standard 13×13 puzzle example.
const exampleGrid = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// longRunGrid punishes any early turn off the top row under (4, 10).
const longRunGrid = `111111111111
999999999991
999999999991
999999999991
999999999991
`

// staircaseGrid has a cost-1 staircase that needs a turn after every cell.
const staircaseGrid = `11999
91199
99119
99911
99991
`

func mustParse(t testing.TB, s string) *costgrid.Grid {
	t.Helper()
	g, err := costgrid.ParseString(s)
	require.NoError(t, err)

	return g
}

// randomGrid builds a w×h grid of costs 1..9 from a fixed seed.
func randomGrid(t testing.TB, seed int64, w, h int) *costgrid.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			values[y][x] = 1 + rng.Intn(9)
		}
	}
	g, err := costgrid.New(values)
	require.NoError(t, err)

	return g
}

// costOrInf maps ErrUnreachable to math.MaxInt64 so results stay comparable.
func costOrInf(t testing.TB, g *costgrid.Grid, minRun, maxRun int) int64 {
	t.Helper()
	d, err := runsearch.MinCost(g, minRun, maxRun)
	if errors.Is(err, runsearch.ErrUnreachable) {
		return math.MaxInt64
	}
	require.NoError(t, err)

	return d
}
