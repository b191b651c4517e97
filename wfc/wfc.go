package wfc

import (
	"math"

	"github.com/markovjunior/mjrun/node"
)

// Node is WFCNode. One Go call collapses exactly one lowest-entropy cell
// and propagates the resulting constraints; the decoded color of every
// newly-determined cell is written to the grid in the same call.
type Node struct {
	Patterns   [][]byte // pattern i's cells, row-major over an NxN or NxNxN footprint
	Weights    []float64
	Propagator [][][]int // propagator[dir][p] = patterns allowed at offset Directions[dir] from p
	Directions [][3]int

	OutMX, OutMY, OutMZ int
	Periodic            bool

	// InputConstraint, when set, restricts the initial wave at every cell
	// whose present grid color is a key: only listed pattern indices stay
	// possible there. This is the pre-observation map[input-color] rule.
	InputConstraint map[byte][]int

	// Children run sequence-style over the decoded grid once the collapse
	// completes. A contradiction skips them.
	Children []node.Node

	wave          [][]bool
	initialized   bool
	done          bool
	contradiction bool
	cursor        int
}

// Go implements node.Node.
func (n *Node) Go(ctx *node.Context) bool {
	if n.contradiction {
		return false
	}
	if !n.initialized {
		n.init(ctx)
	}
	if n.done {
		return n.stepChildren(ctx)
	}

	cell, ok := n.pickCell(ctx)
	if !ok {
		n.writeDecoded(ctx)
		n.done = true
		return n.stepChildren(ctx)
	}

	if !n.collapse(ctx, cell) {
		n.contradiction = true
		return false
	}
	if !n.propagate(ctx) {
		n.contradiction = true
		return false
	}

	n.writeDecoded(ctx)

	return true
}

// Err reports the terminal failure, if any: ErrContradiction once
// propagation has emptied some cell's candidate set. A nil Err after Go
// reports false means the collapse completed.
func (n *Node) Err() error {
	if n.contradiction {
		return ErrContradiction
	}

	return nil
}

// Reset implements node.Node.
func (n *Node) Reset() {
	n.wave = nil
	n.initialized = false
	n.done = false
	n.contradiction = false
	n.cursor = 0
	for _, c := range n.Children {
		c.Reset()
	}
}

func (n *Node) stepChildren(ctx *node.Context) bool {
	for n.cursor < len(n.Children) {
		prev := ctx.Current
		ctx.Current = n.Children[n.cursor]
		ok := n.Children[n.cursor].Go(ctx)
		ctx.Current = prev
		if ok {
			return true
		}
		n.cursor++
	}

	return false
}

func (n *Node) numCells() int { return n.OutMX * n.OutMY * n.OutMZ }

func (n *Node) init(ctx *node.Context) {
	n.initialized = true
	cells := n.numCells()
	n.wave = make([][]bool, cells)
	for i := range n.wave {
		w := make([]bool, len(n.Patterns))
		for p := range w {
			w[p] = true
		}
		n.wave[i] = w
	}

	if n.InputConstraint != nil {
		g := ctx.Grid
		for i, c := range g.State {
			allowed, ok := n.InputConstraint[c]
			if !ok {
				continue
			}
			mask := make([]bool, len(n.Patterns))
			for _, p := range allowed {
				mask[p] = true
			}
			n.wave[i] = mask
		}
	}
}

// pickCell returns the undetermined cell (wave popcount > 1) of lowest
// Shannon entropy, tie-broken by a small random perturbation. Reports
// false once every cell has exactly one remaining pattern.
func (n *Node) pickCell(ctx *node.Context) (int, bool) {
	best, bestEntropy := -1, math.Inf(1)
	for i, w := range n.wave {
		count := popcount(w)
		if count <= 1 {
			continue
		}
		sumW, sumWLogW := 0.0, 0.0
		for p, on := range w {
			if !on {
				continue
			}
			wt := n.Weights[p]
			sumW += wt
			sumWLogW += wt * math.Log(wt)
		}
		entropy := math.Log(sumW) - sumWLogW/sumW + 1e-6*ctx.RNG.Double()
		if entropy < bestEntropy {
			best, bestEntropy = i, entropy
		}
	}

	return best, best >= 0
}

// collapse picks one weighted-random remaining pattern at cell and
// narrows its wave to that single choice.
func (n *Node) collapse(ctx *node.Context, cell int) bool {
	w := n.wave[cell]
	total := 0.0
	for p, on := range w {
		if on {
			total += n.Weights[p]
		}
	}
	if total <= 0 {
		return false
	}

	r := ctx.RNG.Double() * total
	chosen := -1
	for p, on := range w {
		if !on {
			continue
		}
		r -= n.Weights[p]
		if r <= 0 {
			chosen = p
			break
		}
	}
	if chosen < 0 {
		for p, on := range w {
			if on {
				chosen = p
				break
			}
		}
	}

	for p := range w {
		w[p] = p == chosen
	}

	return true
}

// propagate runs AC-3-style arc consistency with every cell as a starting
// worklist entry, re-queuing each neighbor whose wave shrinks, until the
// worklist drains or a cell reaches zero candidates.
func (n *Node) propagate(ctx *node.Context) bool {
	queue := make([]int, n.numCells())
	for i := range queue {
		queue[i] = i
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		cx, cy, cz := coords(c, n.OutMX, n.OutMY)

		for d, dir := range n.Directions {
			nx, ny, nz := cx+dir[0], cy+dir[1], cz+dir[2]
			if n.Periodic {
				nx, ny, nz = wrap(nx, ny, nz, n.OutMX, n.OutMY, n.OutMZ)
			} else if nx < 0 || ny < 0 || nz < 0 || nx >= n.OutMX || ny >= n.OutMY || nz >= n.OutMZ {
				continue
			}
			nc := index(nx, ny, nz, n.OutMX, n.OutMY)

			allowed := make([]bool, len(n.Patterns))
			for p, on := range n.wave[c] {
				if !on {
					continue
				}
				for _, q := range n.Propagator[d][p] {
					allowed[q] = true
				}
			}

			changed := false
			for p, on := range n.wave[nc] {
				if on && !allowed[p] {
					n.wave[nc][p] = false
					changed = true
				}
			}
			if changed {
				if popcount(n.wave[nc]) == 0 {
					return false
				}
				queue = append(queue, nc)
			}
		}
	}

	return true
}

// writeDecoded applies the (0,0,0)-corner color of every fully-collapsed
// cell's single remaining pattern to the grid.
func (n *Node) writeDecoded(ctx *node.Context) bool {
	changed := false
	for i, w := range n.wave {
		if popcount(w) != 1 {
			continue
		}
		p := firstSet(w)
		x, y, z := coords(i, n.OutMX, n.OutMY)
		if ctx.Apply(x, y, z, n.Patterns[p][0]) {
			changed = true
		}
	}

	return changed
}

func popcount(w []bool) int {
	n := 0
	for _, on := range w {
		if on {
			n++
		}
	}

	return n
}

func firstSet(w []bool) int {
	for i, on := range w {
		if on {
			return i
		}
	}

	return -1
}

func coords(i, mx, my int) (int, int, int) {
	z := i / (mx * my)
	rem := i % (mx * my)
	y := rem / mx
	x := rem % mx

	return x, y, z
}

func index(x, y, z, mx, my int) int { return x + y*mx + z*mx*my }

func wrap(x, y, z, mx, my, mz int) (int, int, int) {
	return ((x%mx)+mx)%mx, ((y%my)+my)%my, ((z%mz)+mz)%mz
}
