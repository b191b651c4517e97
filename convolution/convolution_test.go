package convolution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markovjunior/mjrun/convolution"
	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/node"
	"github.com/markovjunior/mjrun/rng"
)

func mustGrid(t *testing.T, alphabet string, mx, my, mz int) *grid.Grid {
	t.Helper()
	g, err := grid.New(mx, my, mz, alphabet)
	require.NoError(t, err)

	return g
}

// TestNode_GameOfLife exercises a Conway's Game of Life birth rule: a dead
// cell with exactly 3 live VonNeumann+diagonal (Moore) neighbors is born.
func TestNode_GameOfLife(t *testing.T) {
	g := mustGrid(t, "DL", 3, 3, 1) // D=dead, L=live
	for i := range g.State {
		g.State[i] = g.Values['D']
	}
	// a row of 3 live cells across the middle (blinker).
	g.State[g.Index(0, 1, 0)] = g.Values['L']
	g.State[g.Index(1, 1, 0)] = g.Values['L']
	g.State[g.Index(2, 1, 0)] = g.Values['L']

	sumsBirth := make([]bool, 28)
	sumsBirth[3] = true
	sumsSurvive := make([]bool, 28)
	sumsSurvive[2] = true
	sumsSurvive[3] = true

	n := &convolution.Node{
		Kernel: convolution.Moore,
		Rules: []convolution.Rule{
			{Input: g.Values['D'], Output: g.Values['L'], P: 1, Values: g.Waves['L'], Sums: sumsBirth},
			{Input: g.Values['L'], Output: g.Values['D'], P: 1, Values: g.Waves['L'], Sums: invert(sumsSurvive)},
		},
	}
	ctx := node.NewContext(g, rng.New(1))

	require.True(t, n.Go(ctx), "expected blinker step to change the grid")
	// after one Life step a horizontal blinker becomes vertical: center
	// column live, the rest dead.
	want := map[[2]int]bool{
		{1, 0}: true, {1, 1}: true, {1, 2}: true,
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			live := g.State[g.Index(x, y, 0)] == g.Values['L']
			assert.Equalf(t, want[[2]int{x, y}], live, "cell (%d,%d) live", x, y)
		}
	}
}

func invert(sums []bool) []bool {
	out := make([]bool, len(sums))
	for i, v := range sums {
		out[i] = !v
	}

	return out
}

func TestNode_NoMatchReturnsFalse(t *testing.T) {
	g := mustGrid(t, "DL", 2, 1, 1)
	g.State[0] = g.Values['D']
	g.State[1] = g.Values['D']

	sums := make([]bool, 28)
	n := &convolution.Node{
		Kernel: convolution.VonNeumann,
		Rules: []convolution.Rule{
			{Input: g.Values['D'], Output: g.Values['L'], P: 1, Values: g.Waves['L'], Sums: sums},
		},
	}
	ctx := node.NewContext(g, rng.New(1))

	assert.False(t, n.Go(ctx), "expected no change: sum mask admits nothing")
}
