package rulenode

import (
	"github.com/markovjunior/mjrun/field"
	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/matcher"
	"github.com/markovjunior/mjrun/node"
	"github.com/markovjunior/mjrun/observe"
	"github.com/markovjunior/mjrun/resource"
	"github.com/markovjunior/mjrun/rule"
	"github.com/markovjunior/mjrun/search"
)

// Fields maps an output color to the Field tracking distance-to-that-color,
// shared across every candidate scored by DeltaPointwise.
type Fields map[byte]*field.Field

// Inference holds the optional observation-driven goal a RuleNode pursues:
// either a cached search trajectory (replayed verbatim) or backward
// potentials used to bias candidate scoring toward it.
type Inference struct {
	Observations map[byte]observe.Observation
	SearchMode   bool
	SearchOpts   search.Options

	future      []uint64
	trajectory  [][]byte
	backward    [][]int
	done        bool // goal already satisfied on first activation
	initialized bool
}

// Base is the shared state and lifecycle every RuleNode variant (OneNode,
// AllNode, ParallelNode) embeds: the rule set, the incremental matcher, any
// tracked Fields, and optional Inference. A single struct holds all mutable
// per-activation state behind a handful of methods, generalized from one
// pass over a graph to repeated activations over a grid.
type Base struct {
	Rules       []*rule.Rule
	Steps       int // 0 = unlimited
	Fields      Fields
	Inference   *Inference
	Temperature float64

	Logger resource.Logger

	counter         int
	lastMatchedTurn int
	g               *grid.Grid
	m               *matcher.Matcher
	firstScore      float64
	haveFirstScore  bool
	activated       bool
}

// Reset clears Base's per-run state so the owning node can be reactivated
// from scratch (a Markov branch cycling back to a rule it already ran).
func (b *Base) Reset() {
	b.counter = 0
	b.lastMatchedTurn = -1
	b.g = nil
	b.m = nil
	b.haveFirstScore = false
	b.activated = false
	if b.Inference != nil {
		b.Inference.initialized = false
		b.Inference.done = false
		b.Inference.future = nil
		b.Inference.trajectory = nil
		b.Inference.backward = nil
	}
}

// exhausted reports whether Steps has been reached.
func (b *Base) exhausted() bool {
	return b.Steps > 0 && b.counter >= b.Steps
}

// prepare runs the per-activation setup every variant's Go calls first: it
// feeds the matcher a full scan (first activation, or after a map/wfc
// node swapped the grid out from under the node) or an incremental
// rescan of the change log's tail (every activation after), refreshes any
// recompute-eligible field and aborts if an essential field has gone dry,
// and on first activation only, engages observation-driven inference.
// ok is false if the node should report itself exhausted this call.
//
// The new baseline turn is marked before any of this step's writes land,
// so the next rescan sees the node's own writes — a rule whose output
// creates fresh matches for itself (a walker rule moving its own marker)
// depends on this.
func (b *Base) prepare(ctx *node.Context) (ok bool) {
	if b.m == nil || b.g != ctx.Grid {
		b.g = ctx.Grid
		b.m = matcher.New(ctx.Grid, b.Rules)
		b.m.FullScan()
	} else {
		b.rescan(ctx)
	}
	b.lastMatchedTurn = ctx.Log.Mark()

	if !b.computeFields(ctx.Grid) {
		return false
	}

	if b.Inference != nil && !b.Inference.initialized {
		if !b.computeInference(ctx) {
			return false
		}
	}

	return true
}

// rescan incrementally updates the matcher from the change log's tail
// since lastMatchedTurn; prepare records the new baseline afterward.
func (b *Base) rescan(ctx *node.Context) {
	entries := ctx.Log.Since(b.lastMatchedTurn)
	if len(entries) == 0 {
		return
	}
	idx := make([]int, len(entries))
	for i, e := range entries {
		idx[i] = ctx.Grid.Index(e.X, e.Y, e.Z)
	}
	b.m.Incremental(idx)
}

// computeFields refreshes every field needing recomputation, failing the
// node if an essential field has zero zero-colored cells left.
func (b *Base) computeFields(g *grid.Grid) bool {
	for _, f := range b.Fields {
		if !f.Recompute && b.activated {
			continue
		}
		zeros := f.Compute(g)
		if f.Essential && zeros == 0 {
			return false
		}
	}
	b.activated = true

	return true
}

// computeInference runs once, on the first activation after observations
// are declared: it rewrites the grid's present state and derives the
// future goal, then either runs a cached search or precomputes backward
// potentials for scoring. Returns false if the future cannot be computed
// at all (an observed color never occurs in the grid), or if search mode
// finds no trajectory.
func (b *Base) computeInference(ctx *node.Context) bool {
	g := ctx.Grid
	inf := b.Inference
	inf.initialized = true

	future, ok := observe.ComputeFutureSetPresent(g, inf.Observations)
	if !ok {
		return false
	}
	inf.future = future

	if total, ok := observe.BackwardPointwise(forwardAsBackward(g, future), g.State); ok && total == 0 {
		inf.done = true
		return true
	}

	if inf.SearchMode {
		eng := search.New(g, b.Rules, inf.SearchOpts, ctx.RNG)
		traj, found := eng.Run(append([]byte(nil), g.State...), future)
		if !found {
			return false
		}
		inf.trajectory = traj
		return true
	}

	inf.backward = observe.BackwardPotentials(g, b.Rules, future)

	return true
}

// forwardAsBackward builds a trivial per-color potential table where a
// cell's present color scores 0 if it already satisfies future and
// Unreachable otherwise, used only for the already-satisfied check before
// a full BackwardPotentials BFS is worth paying for.
func forwardAsBackward(g *grid.Grid, future []uint64) [][]int {
	pot := make([][]int, 64)
	for c := range pot {
		pot[c] = make([]int, len(g.State))
		for i := range pot[c] {
			if future[i]>>uint(c)&1 != 0 {
				pot[c][i] = 0
			} else {
				pot[c][i] = observe.Unreachable
			}
		}
	}

	return pot
}

// scoringFields returns the Field set DeltaPointwise should score against:
// explicit Fields when present, otherwise a synthetic per-color wrapper
// around the precomputed backward potentials, so both scoring paths share
// one code path in the variants.
func (b *Base) scoringFields() Fields {
	if len(b.Fields) > 0 {
		return b.Fields
	}
	if b.Inference == nil || b.Inference.backward == nil {
		return nil
	}

	synthetic := make(Fields, len(b.Inference.backward))
	for c, pot := range b.Inference.backward {
		hasFinite := false
		for _, p := range pot {
			if p != observe.Unreachable {
				hasFinite = true
				break
			}
		}
		if !hasFinite {
			continue
		}
		synthetic[byte(c)] = &field.Field{Potentials: pot}
	}

	return synthetic
}

// applyRuleAt writes r's output box at (x,y,z), skipping wildcard cells and
// cells already at the target color, via ctx.Apply so every write lands in
// the change log. Returns the number of cells actually written.
func applyRuleAt(ctx *node.Context, r *rule.Rule, x, y, z int) int {
	n := 0
	for dz := 0; dz < r.OMZ; dz++ {
		for dy := 0; dy < r.OMY; dy++ {
			for dx := 0; dx < r.OMX; dx++ {
				c := r.Output[r.OutIndex(dx, dy, dz)]
				if c == rule.Wildcard {
					continue
				}
				if ctx.Apply(x+dx, y+dy, z+dz, c) {
					n++
				}
			}
		}
	}

	return n
}
