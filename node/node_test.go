package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/node"
	"github.com/markovjunior/mjrun/rng"
)

func TestChangeLog_MarkAndSince(t *testing.T) {
	log := node.NewChangeLog()
	log.Append(0, 0, 0)
	turn0 := log.Mark() // first[0] == 1
	log.Append(1, 0, 0)
	log.Append(2, 0, 0)
	turn1 := log.Mark() // first[1] == 3

	assert.Len(t, log.Since(turn0), 2)
	assert.Len(t, log.Since(turn1), 0)
	assert.Len(t, log.Since(-1), 3, "everything")
}

func TestContext_ApplyDedupsNoOpWrites(t *testing.T) {
	g, err := grid.New(2, 1, 1, "BW")
	require.NoError(t, err)
	ctx := node.NewContext(g, rng.New(1))

	assert.False(t, ctx.Apply(0, 0, 0, g.Values['B']), "writing the same color should not count as a change")
	assert.True(t, ctx.Apply(0, 0, 0, g.Values['W']), "writing a new color should count as a change")
	assert.Len(t, ctx.Log.Entries, 1)
}
