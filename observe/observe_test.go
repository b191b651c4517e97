package observe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/observe"
	"github.com/markovjunior/mjrun/rule"
)

func TestComputeFutureSetPresent(t *testing.T) {
	g, err := grid.New(3, 1, 1, "BWR")
	require.NoError(t, err)
	g.State[0] = g.Values['R']
	g.State[1] = g.Values['B']
	g.State[2] = g.Values['W']

	obs := map[byte]observe.Observation{
		g.Values['R']: {From: g.Values['B'], To: g.Waves['W']},
	}
	future, ok := observe.ComputeFutureSetPresent(g, obs)
	require.True(t, ok, "R is present")

	assert.Equal(t, g.Values['B'], g.State[0], "observed cell not rewritten to From")
	assert.Equal(t, g.Waves['W'], future[0])
	assert.Equal(t, g.Waves['B'], future[1], "unobserved cell defaults to its own color's wave")
	assert.Equal(t, g.Waves['W'], future[2], "unobserved cell defaults to its own color's wave")
}

func TestComputeFutureSetPresent_MissingColor(t *testing.T) {
	g, err := grid.New(2, 1, 1, "BW")
	require.NoError(t, err)

	// state is all-B by default, so observing W targets a color that never
	// occupies a cell.
	obs := map[byte]observe.Observation{
		g.Values['W']: {From: g.Values['B'], To: g.Waves['*']},
	}
	_, ok := observe.ComputeFutureSetPresent(g, obs)
	assert.False(t, ok, "observed color never present in grid")
}

func TestForwardPotentials_SingleStepRule(t *testing.T) {
	g, err := grid.New(3, 1, 1, "BW")
	require.NoError(t, err)
	// grid starts all-B by default.
	r, err := rule.New("B", "W", g, 1, true)
	require.NoError(t, err)

	pot := observe.ForwardPotentials(g, []*rule.Rule{r})
	for i := 0; i < 3; i++ {
		assert.Equalf(t, 0, pot[g.Values['B']][i], "pot[B][%d] already present", i)
		assert.Equalf(t, 1, pot[g.Values['W']][i], "pot[W][%d] one rule application away", i)
	}
}

func TestBackwardPotentials_SingleStepRule(t *testing.T) {
	g, err := grid.New(3, 1, 1, "BW")
	require.NoError(t, err)
	r, err := rule.New("B", "W", g, 1, true)
	require.NoError(t, err)

	future := make([]uint64, 3)
	for i := range future {
		future[i] = g.Waves['W']
	}
	pot := observe.BackwardPotentials(g, []*rule.Rule{r}, future)

	present := make([]byte, 3) // all B
	total, ok := observe.BackwardPointwise(pot, present)
	require.True(t, ok)
	assert.Equal(t, 3, total, "one step per cell")
}

func TestForwardPointwise_UnreachableGoal(t *testing.T) {
	g, err := grid.New(1, 1, 1, "BWR")
	require.NoError(t, err)
	// no rules at all: W is unreachable from the default B state.
	pot := observe.ForwardPotentials(g, nil)
	future := []uint64{g.Waves['W']}
	_, ok := observe.ForwardPointwise(pot, future)
	assert.False(t, ok, "no rule can ever produce W here")
}
