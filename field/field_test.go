package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markovjunior/mjrun/field"
	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/rule"
)

func TestCompute_BasicBFS(t *testing.T) {
	g, err := grid.New(5, 1, 1, "BWR")
	require.NoError(t, err)
	// B W W W R — zero=B, substrate=W; R is neither.
	g.State[0] = g.Values['B']
	g.State[1] = g.Values['W']
	g.State[2] = g.Values['W']
	g.State[3] = g.Values['W']
	g.State[4] = g.Values['R']

	f := field.New(g, g.Waves['B'], g.Waves['W'], false, true, false)
	zeros := f.Compute(g)
	require.Equal(t, 1, zeros)

	want := []int{0, 1, 2, 3, field.Unreachable}
	assert.Equal(t, want, f.Potentials)
}

func TestCompute_NoZeroCells(t *testing.T) {
	g, err := grid.New(3, 1, 1, "BW")
	require.NoError(t, err)

	f := field.New(g, g.Waves['R'|0], 0, false, true, false) // 'R' not in alphabet -> mask 0
	zeros := f.Compute(g)
	require.Equal(t, 0, zeros)

	for _, p := range f.Potentials {
		assert.Equal(t, field.Unreachable, p)
	}
}

func TestDeltaPointwise(t *testing.T) {
	g, err := grid.New(3, 1, 1, "BWG")
	require.NoError(t, err)
	g.State[0] = g.Values['B']
	g.State[1] = g.Values['W']
	g.State[2] = g.Values['G']

	// substrate covers both B and W so the field reaches every cell.
	f := field.New(g, g.Waves['G'], g.Waves['B']|g.Waves['W'], false, true, false)
	f.Compute(g) // Potentials == [2, 1, 0]

	r, err := rule.New("B", "W", g, 1, true)
	require.NoError(t, err)

	// Only W is tracked; B (the old color) has no field, so oldPot==0.
	fields := map[byte]*field.Field{g.Values['W']: f}
	delta, ok := field.DeltaPointwise(g, r, 0, 0, 0, fields)
	require.True(t, ok)
	assert.Equal(t, 2.0, delta)
}
