package pathnode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/node"
	"github.com/markovjunior/mjrun/pathnode"
	"github.com/markovjunior/mjrun/rng"
)

func mustGrid(t *testing.T, alphabet string, mx, my, mz int) *grid.Grid {
	t.Helper()
	g, err := grid.New(mx, my, mz, alphabet)
	require.NoError(t, err)

	return g
}

func TestPathNode_DrawsStraightLine(t *testing.T) {
	// S _ _ _ F over a substrate alphabet; path paints every cell but F.
	g := mustGrid(t, "SFP.", 5, 1, 1)
	g.State[0] = g.Values['S']
	g.State[4] = g.Values['F']
	for i := 1; i < 4; i++ {
		g.State[i] = g.Values['.']
	}

	p := &pathnode.PathNode{
		Start:     g.Waves['S'],
		Finish:    g.Waves['F'],
		Substrate: g.Waves['.'],
		Value:     g.Values['P'],
	}
	ctx := node.NewContext(g, rng.New(1))

	require.True(t, p.Go(ctx), "expected a path to be found")
	for i := 0; i < 4; i++ {
		assert.Equalf(t, g.Values['P'], g.State[i], "State[%d] painted path cell", i)
	}
	assert.Equal(t, g.Values['F'], g.State[4], "finish untouched")

	assert.False(t, p.Go(ctx), "expected PathNode to be one-shot")
}

func TestPathNode_FailsWhenNoStartReachable(t *testing.T) {
	g := mustGrid(t, "SFP#", 3, 1, 1)
	g.State[0] = g.Values['S']
	g.State[1] = g.Values['#'] // wall blocks the only route
	g.State[2] = g.Values['F']

	p := &pathnode.PathNode{
		Start:  g.Waves['S'],
		Finish: g.Waves['F'],
		Value:  g.Values['P'],
	}
	ctx := node.NewContext(g, rng.New(1))

	assert.False(t, p.Go(ctx), "expected no path: wall cell is in neither Start nor Substrate")
}

func TestPathNode_Reset(t *testing.T) {
	g := mustGrid(t, "SFP.", 3, 1, 1)
	g.State[0] = g.Values['S']
	g.State[2] = g.Values['F']
	g.State[1] = g.Values['.']

	p := &pathnode.PathNode{
		Start:     g.Waves['S'],
		Finish:    g.Waves['F'],
		Substrate: g.Waves['.'],
		Value:     g.Values['P'],
	}
	ctx := node.NewContext(g, rng.New(1))

	require.True(t, p.Go(ctx), "expected first Go to succeed")
	p.Reset()
	g.State[0] = g.Values['S']
	g.State[1] = g.Values['.']
	assert.True(t, p.Go(ctx), "expected Go to succeed again after Reset")
}
