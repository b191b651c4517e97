package branch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markovjunior/mjrun/branch"
	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/node"
	"github.com/markovjunior/mjrun/rng"
	"github.com/markovjunior/mjrun/rule"
	"github.com/markovjunior/mjrun/rulenode"
)

func mustGrid(t *testing.T, alphabet string, mx, my, mz int) *grid.Grid {
	t.Helper()
	g, err := grid.New(mx, my, mz, alphabet)
	require.NoError(t, err)

	return g
}

func TestSequenceNode_AdvancesWhenChildExhausts(t *testing.T) {
	g := mustGrid(t, "BWR", 1, 1, 1)
	r1, err := rule.New("B", "W", g, 1, true)
	require.NoError(t, err)
	r2, err := rule.New("W", "R", g, 1, true)
	require.NoError(t, err)

	one1 := &rulenode.OneNode{Base: rulenode.Base{Rules: []*rule.Rule{r1}}}
	one2 := &rulenode.OneNode{Base: rulenode.Base{Rules: []*rule.Rule{r2}}}
	seq := &branch.SequenceNode{Children: []node.Node{one1, one2}}

	ctx := node.NewContext(g, rng.New(1))

	require.True(t, seq.Go(ctx), "expected first Go (B->W) to succeed")
	assert.Equal(t, g.Values['W'], g.State[0], "State[0] after first child applied")

	require.True(t, seq.Go(ctx), "expected second Go to advance to child 2 (W->R) and succeed")
	assert.Equal(t, g.Values['R'], g.State[0], "State[0] after second child applied")

	assert.False(t, seq.Go(ctx), "expected third Go to report exhaustion")
}

func TestMarkovNode_RunsFirstApplicableChildEveryTime(t *testing.T) {
	g := mustGrid(t, "BWR", 1, 1, 1)
	r1, err := rule.New("B", "W", g, 1, true)
	require.NoError(t, err)
	r2, err := rule.New("W", "R", g, 1, true)
	require.NoError(t, err)

	one1 := &rulenode.OneNode{Base: rulenode.Base{Rules: []*rule.Rule{r1}}}
	one2 := &rulenode.OneNode{Base: rulenode.Base{Rules: []*rule.Rule{r2}}}
	mk := &branch.MarkovNode{Children: []node.Node{one1, one2}}

	ctx := node.NewContext(g, rng.New(1))

	require.True(t, mk.Go(ctx), "expected first Go to fire child 1 (B->W)")
	assert.Equal(t, g.Values['W'], g.State[0])

	require.True(t, mk.Go(ctx), "expected second Go to fall through to child 2 (W->R)")
	assert.Equal(t, g.Values['R'], g.State[0])

	assert.False(t, mk.Go(ctx), "expected third Go to find no applicable child")
}

func TestMapNode_DoublesGridAndWritesScaledOutput(t *testing.T) {
	g := mustGrid(t, "BW", 2, 1, 1)
	g.State[0] = g.Values['B']
	g.State[1] = g.Values['B']

	r, err := rule.New("B", "W", g, 1, true)
	require.NoError(t, err)

	mp := &branch.MapNode{
		Rules: []*rule.Rule{r},
		Scale: branch.Scale{NX: 2, DX: 1, NY: 1, DY: 1, NZ: 1, DZ: 1},
	}
	ctx := node.NewContext(g, rng.New(1))

	require.True(t, mp.Go(ctx), "expected MapNode to fire on first activation")
	assert.Equal(t, 4, ctx.Grid.MX, "scaled by 2/1")
	assert.Equal(t, []byte{g.Values['W'], g.Values['B'], g.Values['W'], g.Values['B']}, ctx.Grid.State,
		"each source cell's output lands at twice its x")
	assert.False(t, mp.Go(ctx), "expected childless MapNode to be one-shot")
}

func TestMapNode_ChildrenRunOverNewGrid(t *testing.T) {
	g := mustGrid(t, "BW", 2, 1, 1)
	carry, err := rule.New("B", "B", g, 1, true)
	require.NoError(t, err)
	flip, err := rule.New("B", "W", g, 1, true)
	require.NoError(t, err)

	mp := &branch.MapNode{
		Rules: []*rule.Rule{carry},
		Scale: branch.Scale{NX: 2, DX: 1, NY: 1, DY: 1, NZ: 1, DZ: 1},
		Children: []node.Node{
			&rulenode.OneNode{Base: rulenode.Base{Rules: []*rule.Rule{flip}}},
		},
	}
	ctx := node.NewContext(g, rng.New(1))

	require.True(t, mp.Go(ctx), "rescale activation")
	for mp.Go(ctx) {
	}

	require.Equal(t, 4, ctx.Grid.MX, "children saw the replacement grid")
	for i, c := range ctx.Grid.State {
		assert.Equalf(t, ctx.Grid.Values['W'], c, "cell %d flipped by the child over the new grid", i)
	}
}
