package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/rng"
	"github.com/markovjunior/mjrun/rule"
	"github.com/markovjunior/mjrun/search"
)

func TestRun_OneMode_FindsTrajectory(t *testing.T) {
	g, err := grid.New(3, 1, 1, "BW")
	require.NoError(t, err)
	r, err := rule.New("B", "W", g, 1, true)
	require.NoError(t, err)

	initial := make([]byte, 3) // all B
	future := []uint64{g.Waves['W'], g.Waves['W'], g.Waves['W']}

	e := search.New(g, []*rule.Rule{r}, search.Options{
		Mode:             search.ModeOne,
		DepthCoefficient: 0.1,
		Limit:            1000,
	}, rng.New(1))

	traj, ok := e.Run(initial, future)
	require.True(t, ok, "expected a trajectory to be found")
	require.Len(t, traj, 4, "initial + 3 single-cell steps")

	last := traj[len(traj)-1]
	for i, c := range last {
		assert.Equalf(t, g.Values['W'], c, "last[%d]", i)
	}
	for i, c := range traj[0] {
		assert.Equalf(t, g.Values['B'], c, "traj[0][%d] unchanged initial state", i)
	}
}

func TestRun_AlreadySatisfied(t *testing.T) {
	g, err := grid.New(2, 1, 1, "BW")
	require.NoError(t, err)
	r, err := rule.New("B", "W", g, 1, true)
	require.NoError(t, err)

	initial := []byte{g.Values['W'], g.Values['W']}
	future := []uint64{g.Waves['W'], g.Waves['W']}

	e := search.New(g, []*rule.Rule{r}, search.Options{Mode: search.ModeOne}, rng.New(1))
	traj, ok := e.Run(initial, future)
	require.True(t, ok, "expected immediate success")
	assert.Len(t, traj, 1, "goal already satisfied")
}

func TestRun_UnreachableGoal(t *testing.T) {
	g, err := grid.New(1, 1, 1, "BWR")
	require.NoError(t, err)
	// no rule can ever turn B into R: the goal is unreachable, so score()
	// should reject the root outright.
	future := []uint64{g.Waves['R']}
	e := search.New(g, nil, search.Options{Mode: search.ModeOne, Limit: 5}, rng.New(1))
	_, ok := e.Run([]byte{g.Values['B']}, future)
	assert.False(t, ok, "expected no trajectory: goal unreachable with zero rules")
}
