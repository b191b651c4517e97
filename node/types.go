package node

import (
	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/rng"
)

// Node is the common contract every program node (rule nodes, branches,
// path/convolution/convchain/wfc nodes) implements. Go reports whether the
// node rewrote the grid or otherwise still considers itself alive; false
// means exhausted. Reset clears internal state so the node can run again
// (a Markov branch resetting a finished child, for instance).
type Node interface {
	Go(ctx *Context) bool
	Reset()
}

// Coord is one change-log entry: the grid cell written at that point.
type Coord struct {
	X, Y, Z int
}

// ChangeLog is the single global ordered sequence of cell writes, plus a
// per-turn index into it. First is monotonic non-decreasing; First[t] is
// the log length at the start of turn t.
type ChangeLog struct {
	Entries []Coord
	First   []int
}

// NewChangeLog returns an empty log.
func NewChangeLog() *ChangeLog {
	return &ChangeLog{}
}

// Append records a cell write.
func (c *ChangeLog) Append(x, y, z int) {
	c.Entries = append(c.Entries, Coord{X: x, Y: y, Z: z})
}

// Mark appends the current log length to First and returns the new turn
// number — called by a rule node at the start of each of its activations,
// before that activation writes anything.
func (c *ChangeLog) Mark() int {
	c.First = append(c.First, len(c.Entries))

	return len(c.First) - 1
}

// Since returns the entries appended at or after turn's mark. A negative
// turn (never scanned) returns every entry.
func (c *ChangeLog) Since(turn int) []Coord {
	if turn < 0 || turn >= len(c.First) {
		return c.Entries
	}

	return c.Entries[c.First[turn]:]
}

// Reset empties the log, for a fresh interpreter run.
func (c *ChangeLog) Reset() {
	c.Entries = c.Entries[:0]
	c.First = c.First[:0]
}

// Context is the mutable interpreter state every node's Go call receives
// explicitly, instead of reaching for interpreter globals: the live grid,
// the single PRNG, and the change log. Nodes are otherwise pure data.
type Context struct {
	Grid *grid.Grid
	RNG  *rng.Source
	Log  *ChangeLog

	// Current is the deepest node presently executing, set by Branch
	// implementations before descending into a child and restored by the
	// caller on return — the non-GUI stand-in for ip.current.
	Current Node
}

// NewContext wires a fresh interpreter context around g and rng.
func NewContext(g *grid.Grid, r *rng.Source) *Context {
	return &Context{Grid: g, RNG: r, Log: NewChangeLog()}
}

// Apply writes color to (x,y,z) if it differs from the cell's current
// value and appends the write to the change log. Reports whether a write
// happened.
func (ctx *Context) Apply(x, y, z int, color byte) bool {
	idx := ctx.Grid.Index(x, y, z)
	if ctx.Grid.State[idx] == color {
		return false
	}
	ctx.Grid.State[idx] = color
	ctx.Log.Append(x, y, z)

	return true
}
