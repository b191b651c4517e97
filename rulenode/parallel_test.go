package rulenode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markovjunior/mjrun/node"
	"github.com/markovjunior/mjrun/rng"
	"github.com/markovjunior/mjrun/rule"
	"github.com/markovjunior/mjrun/rulenode"
)

func TestParallelNode_CertainRuleConvertsAllInOneStep(t *testing.T) {
	g := mustGrid(t, "BW", 5, 1, 1)
	r, err := rule.New("B", "W", g, 1, true) // p=1: always fires
	require.NoError(t, err)

	n := &rulenode.ParallelNode{Base: rulenode.Base{Rules: []*rule.Rule{r}}}
	ctx := node.NewContext(g, rng.New(3))

	require.True(t, n.Go(ctx), "expected first Go to match and apply")
	for i, c := range g.State {
		assert.Equalf(t, g.Values['W'], c, "State[%d] after one ParallelNode step with p=1", i)
	}

	assert.False(t, n.Go(ctx), "expected second Go to find no remaining candidates")
}

func TestParallelNode_ZeroProbabilityRejected(t *testing.T) {
	g := mustGrid(t, "BW", 3, 1, 1)
	_, err := rule.New("B", "W", g, 1, true)
	require.NoError(t, err)
	// construct a rule with p just above 0 is indistinguishable from flaky;
	// instead verify p must be in (0,1] at construction time.
	_, err = rule.New("B", "W", g, 0, true)
	assert.ErrorIs(t, err, rule.ErrBadProbability)
}
