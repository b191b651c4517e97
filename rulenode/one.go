package rulenode

import (
	"math"

	"github.com/markovjunior/mjrun/field"
	"github.com/markovjunior/mjrun/matcher"
	"github.com/markovjunior/mjrun/node"
)

// OneNode selects exactly one (rule, position) candidate per step and
// applies it: the trajectory cell if one is cached from search, the
// best-scoring candidate under field or backward-potential potentials, or
// a uniformly random still-matching candidate otherwise.
type OneNode struct {
	Base
}

// Go implements node.Node.
func (n *OneNode) Go(ctx *node.Context) bool {
	if n.exhausted() {
		return false
	}

	if n.Inference != nil && n.Inference.trajectory != nil {
		return n.stepTrajectory(ctx)
	}

	if !n.prepare(ctx) {
		return false
	}
	if n.Inference != nil && n.Inference.trajectory != nil {
		return n.stepTrajectory(ctx)
	}
	if n.Inference != nil && n.Inference.done {
		return false
	}

	fields := n.scoringFields()
	if len(fields) > 0 {
		return n.applyScored(ctx, fields)
	}

	return n.applyRandom(ctx)
}

func (n *OneNode) stepTrajectory(ctx *node.Context) bool {
	traj := n.Inference.trajectory
	if n.counter+1 >= len(traj) {
		return false
	}
	n.counter++
	next := traj[n.counter]
	for i, c := range next {
		x, y, z := coords3(ctx.Grid.MX, ctx.Grid.MY, i)
		ctx.Apply(x, y, z, c)
	}

	return true
}

// applyScored picks the candidate with the highest selection key under
// fields, evicting stale candidates it encounters along the way.
func (n *OneNode) applyScored(ctx *node.Context, fields Fields) bool {
	var (
		best      matcher.Candidate
		bestIdx   = -1
		bestKey   = math.Inf(-1)
		bestScore float64
	)

	for i := 0; i < n.m.Len(); {
		c := n.m.Candidates[i]
		if n.m.IsStale(c) {
			n.m.RemoveAt(i)
			continue
		}

		score, ok := field.DeltaPointwise(ctx.Grid, n.Rules[c.R], c.X, c.Y, c.Z, fields)
		if !ok {
			i++
			continue
		}

		key := n.selectionKey(ctx, score)
		if key > bestKey {
			bestKey = key
			bestScore = score
			best = c
			bestIdx = i
		}
		i++
	}

	if bestIdx < 0 {
		return false
	}

	if !n.haveFirstScore {
		n.firstScore = bestScore
		n.haveFirstScore = true
	}

	applyRuleAt(ctx, n.Rules[best.R], best.X, best.Y, best.Z)
	n.m.RemoveAt(bestIdx)
	n.counter++

	return true
}

// selectionKey implements the temperature-0 / temperature>0 key split:
// temperature 0 maximizes -score (lowest score wins, tie-broken by a tiny
// uniform jitter); temperature>0 draws U^exp((score-firstScore)/temperature)
// so higher temperatures flatten the distribution toward uniform choice.
func (n *OneNode) selectionKey(ctx *node.Context, score float64) float64 {
	u := ctx.RNG.Double()

	if n.Temperature == 0 {
		return -score + 0.001*u
	}

	if u <= 0 {
		u = 1e-12
	}

	return math.Pow(u, math.Exp((score-n.firstScore)/n.Temperature))
}

// applyRandom draws candidates uniformly at random, discarding stale ones,
// and applies the first still-matching draw.
func (n *OneNode) applyRandom(ctx *node.Context) bool {
	for n.m.Len() > 0 {
		idx := ctx.RNG.Intn(n.m.Len())
		c := n.m.Candidates[idx]
		if n.m.IsStale(c) {
			n.m.RemoveAt(idx)
			continue
		}

		applyRuleAt(ctx, n.Rules[c.R], c.X, c.Y, c.Z)
		n.m.RemoveAt(idx)
		n.counter++

		return true
	}

	return false
}

func coords3(mx, my, i int) (int, int, int) {
	z := i / (mx * my)
	rem := i % (mx * my)
	y := rem / mx
	x := rem % mx

	return x, y, z
}
