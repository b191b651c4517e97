package rulenode

import (
	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/node"
	"github.com/markovjunior/mjrun/rule"
)

// ParallelNode applies every current candidate through a double buffer:
// each rule's probability p gates its candidates independently, and
// conflicting writes resolve by last-writer-wins in candidate insertion
// order rather than by the Mask-based conflict avoidance AllNode uses. The
// buffered writes land on the grid in one pass at the end of the step.
type ParallelNode struct {
	Base
}

// Go implements node.Node.
func (n *ParallelNode) Go(ctx *node.Context) bool {
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

	buf := append([]byte(nil), ctx.Grid.State...)
	written := make([]bool, len(buf))
	matched := false

	for _, c := range n.m.Candidates {
		if n.m.IsStale(c) {
			continue
		}
		r := n.Rules[c.R]
		if ctx.RNG.Double() > r.P {
			continue
		}
		matched = true
		writeBuffered(ctx.Grid, buf, written, r, c.X, c.Y, c.Z)
	}

	n.m.Reset()

	if !matched {
		return false
	}

	for i := range buf {
		if !written[i] {
			continue
		}
		x, y, z := coords3(ctx.Grid.MX, ctx.Grid.MY, i)
		ctx.Apply(x, y, z, buf[i])
	}

	n.counter++

	return true
}

// writeBuffered writes r's non-wildcard output cells into buf, marking
// each touched index in written; a later candidate's write to the same
// cell simply overwrites the earlier one (last writer wins).
func writeBuffered(g *grid.Grid, buf []byte, written []bool, r *rule.Rule, x, y, z int) {
	for dz := 0; dz < r.OMZ; dz++ {
		for dy := 0; dy < r.OMY; dy++ {
			for dx := 0; dx < r.OMX; dx++ {
				c := r.Output[r.OutIndex(dx, dy, dz)]
				if c == rule.Wildcard {
					continue
				}
				idx := g.Index(x+dx, y+dy, z+dz)
				buf[idx] = c
				written[idx] = true
			}
		}
	}
}
