package rulenode

import (
	"sort"

	"github.com/markovjunior/mjrun/field"
	"github.com/markovjunior/mjrun/matcher"
	"github.com/markovjunior/mjrun/node"
	"github.com/markovjunior/mjrun/rule"
)

// AllNode applies every current candidate in one step, ordered by score
// when fields are present or by a uniform shuffle otherwise, skipping a
// candidate if any of its non-wildcard output cells was already claimed by
// an earlier candidate in the same step. The grid's Mask scratch array
// records claims for the step and is cleared again before the node
// returns.
type AllNode struct {
	Base
}

// Go implements node.Node.
func (n *AllNode) Go(ctx *node.Context) bool {
	if n.exhausted() {
		return false
	}
	if !n.prepare(ctx) {
		return false
	}
	if n.Inference != nil && n.Inference.done {
		return false
	}
	if n.m.Len() == 0 {
		return false
	}

	order := n.order(ctx)

	claimed := make([]int, 0, len(order))
	applied := false
	for _, c := range order {
		if n.m.IsStale(c) {
			continue
		}
		r := n.Rules[c.R]
		if conflicts(ctx, r, c.X, c.Y, c.Z) {
			continue
		}
		claim(ctx, r, c.X, c.Y, c.Z, &claimed)
		applyRuleAt(ctx, r, c.X, c.Y, c.Z)
		applied = true
	}

	ctx.Grid.ClearMask(claimed)
	n.m.Reset()

	if !applied {
		return false
	}

	n.counter++

	return true
}

// order returns candidates sorted by descending DeltaPointwise score when
// scoring fields are available (stale/unscoreable candidates sink to the
// end, in original order), or candidates in a uniform random shuffle
// otherwise.
func (n *AllNode) order(ctx *node.Context) []matcher.Candidate {
	out := append([]matcher.Candidate(nil), n.m.Candidates...)

	fields := n.scoringFields()
	if len(fields) == 0 {
		for i := len(out) - 1; i > 0; i-- {
			j := ctx.RNG.Intn(i + 1)
			out[i], out[j] = out[j], out[i]
		}
		return out
	}

	scores := make(map[matcher.Candidate]float64, len(out))
	for _, c := range out {
		if n.m.IsStale(c) {
			continue
		}
		s, ok := field.DeltaPointwise(ctx.Grid, n.Rules[c.R], c.X, c.Y, c.Z, fields)
		if ok {
			scores[c] = s
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		si, iok := scores[out[i]]
		sj, jok := scores[out[j]]
		if !iok && !jok {
			return false
		}
		if !iok {
			return false
		}
		if !jok {
			return true
		}

		return si > sj
	})

	return out
}

// conflicts reports whether any non-wildcard output cell of r at (x,y,z)
// was already claimed this step.
func conflicts(ctx *node.Context, r *rule.Rule, x, y, z int) bool {
	for dz := 0; dz < r.OMZ; dz++ {
		for dy := 0; dy < r.OMY; dy++ {
			for dx := 0; dx < r.OMX; dx++ {
				if r.Output[r.OutIndex(dx, dy, dz)] == rule.Wildcard {
					continue
				}
				idx := ctx.Grid.Index(x+dx, y+dy, z+dz)
				if ctx.Grid.Mask[idx] {
					return true
				}
			}
		}
	}

	return false
}

// claim marks every non-wildcard output cell of r at (x,y,z) in the grid's
// Mask scratch and records the touched indices in claimed for the later
// ClearMask call.
func claim(ctx *node.Context, r *rule.Rule, x, y, z int, claimed *[]int) {
	for dz := 0; dz < r.OMZ; dz++ {
		for dy := 0; dy < r.OMY; dy++ {
			for dx := 0; dx < r.OMX; dx++ {
				if r.Output[r.OutIndex(dx, dy, dz)] == rule.Wildcard {
					continue
				}
				idx := ctx.Grid.Index(x+dx, y+dy, z+dz)
				if !ctx.Grid.Mask[idx] {
					ctx.Grid.Mask[idx] = true
					*claimed = append(*claimed, idx)
				}
			}
		}
	}
}
