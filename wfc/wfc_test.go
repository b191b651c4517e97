package wfc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/node"
	"github.com/markovjunior/mjrun/rng"
	"github.com/markovjunior/mjrun/rule"
	"github.com/markovjunior/mjrun/rulenode"
	"github.com/markovjunior/mjrun/symmetry"
	"github.com/markovjunior/mjrun/wfc"
)

func mustGrid(t *testing.T, alphabet string, mx, my, mz int) *grid.Grid {
	t.Helper()
	g, err := grid.New(mx, my, mz, alphabet)
	require.NoError(t, err)

	return g
}

func runToCompletion(t *testing.T, n *wfc.Node, ctx *node.Context, limit int) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if !n.Go(ctx) {
			return
		}
	}
	require.Failf(t, "wfc did not converge", "within %d steps", limit)
}

func TestOverlap_ChecksCollapseWithoutContradiction(t *testing.T) {
	// 4x4 checkerboard sample, colors 0 ('A') and 1 ('B').
	sample := make([]byte, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x+y)%2 == 0 {
				sample[y*4+x] = 0
			} else {
				sample[y*4+x] = 1
			}
		}
	}
	orbit, err := symmetry.Square("()")
	require.NoError(t, err)
	patterns, weights, propagator, err := wfc.BuildOverlap(sample, 4, 4, 2, orbit)
	require.NoError(t, err)
	require.NotEmpty(t, patterns, "expected at least one extracted pattern")

	g := mustGrid(t, "AB", 4, 4, 1)
	n := &wfc.Node{
		Patterns:   patterns,
		Weights:    weights,
		Propagator: propagator,
		Directions: wfc.Directions2D,
		OutMX:      4, OutMY: 4, OutMZ: 1,
		Periodic: true,
	}
	ctx := node.NewContext(g, rng.New(11))

	runToCompletion(t, n, ctx, 16*4)

	require.NoError(t, n.Err(), "collapse hit a contradiction")
	for _, c := range g.State {
		assert.Truef(t, c == g.Values['A'] || c == g.Values['B'], "undecoded cell left in grid: %d", c)
	}
}

func TestTile_TwoTilesAlternate(t *testing.T) {
	tiles := []wfc.Tile{
		{Name: "black", Colors: []byte{0}, Weight: 1},
		{Name: "white", Colors: []byte{1}, Weight: 1},
	}
	rules := []wfc.NeighborRule{
		{Left: "black", Right: "white", Direction: [3]int{1, 0, 0}},
		{Left: "white", Right: "black", Direction: [3]int{1, 0, 0}},
	}
	patterns, weights, propagator, names := wfc.BuildTile(tiles, rules)
	require.Equal(t, []string{"black", "white"}, names)

	g := mustGrid(t, "AB", 3, 1, 1)
	n := &wfc.Node{
		Patterns:   patterns,
		Weights:    weights,
		Propagator: propagator,
		Directions: wfc.Directions3D,
		OutMX:      3, OutMY: 1, OutMZ: 1,
		Periodic: false,
	}
	ctx := node.NewContext(g, rng.New(2))

	runToCompletion(t, n, ctx, 3*6)

	for _, c := range g.State {
		assert.Truef(t, c == g.Values['A'] || c == g.Values['B'], "undecoded cell left in grid: %d", c)
	}
}

func TestNode_ChildrenRunAfterCollapse(t *testing.T) {
	tiles := []wfc.Tile{
		{Name: "black", Colors: []byte{0}, Weight: 1},
		{Name: "white", Colors: []byte{1}, Weight: 1},
	}
	rules := []wfc.NeighborRule{
		{Left: "black", Right: "white", Direction: [3]int{1, 0, 0}},
		{Left: "white", Right: "black", Direction: [3]int{1, 0, 0}},
	}
	patterns, weights, propagator, _ := wfc.BuildTile(tiles, rules)

	g := mustGrid(t, "AB", 3, 1, 1)
	flip, err := rule.New("A", "B", g, 1, true)
	require.NoError(t, err)

	n := &wfc.Node{
		Patterns:   patterns,
		Weights:    weights,
		Propagator: propagator,
		Directions: wfc.Directions3D,
		OutMX:      3, OutMY: 1, OutMZ: 1,
		Children: []node.Node{
			&rulenode.OneNode{Base: rulenode.Base{Rules: []*rule.Rule{flip}}},
		},
	}
	ctx := node.NewContext(g, rng.New(4))
	for i := 0; i < 64 && n.Go(ctx); i++ {
	}

	require.NoError(t, n.Err())
	for i, c := range g.State {
		assert.Equalf(t, g.Values['B'], c, "cell %d recolored by the post-collapse child", i)
	}
}

func TestNode_Reset(t *testing.T) {
	sample := []byte{0, 1, 1, 0}
	orbit, err := symmetry.Square("()")
	require.NoError(t, err)
	patterns, weights, propagator, err := wfc.BuildOverlap(sample, 2, 2, 2, orbit)
	require.NoError(t, err)

	g := mustGrid(t, "AB", 2, 2, 1)
	n := &wfc.Node{
		Patterns:   patterns,
		Weights:    weights,
		Propagator: propagator,
		Directions: wfc.Directions2D,
		OutMX:      2, OutMY: 2, OutMZ: 1,
		Periodic: true,
	}
	ctx := node.NewContext(g, rng.New(9))
	runToCompletion(t, n, ctx, 8)

	n.Reset()
	g2 := mustGrid(t, "AB", 2, 2, 1)
	ctx2 := node.NewContext(g2, rng.New(9))
	runToCompletion(t, n, ctx2, 8)
}
