package observe

import (
	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/rule"
)

// ComputeFutureSetPresent builds the per-cell future bitmask from obs
// (keyed by the color currently occupying a cell) and rewrites the grid's
// present state to each observation's From color. Cells with no
// observation get a future of exactly their current color. Returns
// ok==false if some observation's color never occupies any cell.
func ComputeFutureSetPresent(g *grid.Grid, obs map[byte]Observation) (future []uint64, ok bool) {
	n := len(g.State)
	future = make([]uint64, n)
	seen := make(map[byte]bool, len(obs))

	for i, c := range g.State {
		if o, has := obs[c]; has {
			future[i] = o.To
			g.State[i] = o.From
			seen[c] = true
		} else {
			future[i] = uint64(1) << uint(c)
		}
	}

	for c := range obs {
		if !seen[c] {
			return future, false
		}
	}

	return future, true
}

type queueItem struct {
	color         byte
	x, y, z, turn int
}

// ForwardPotentials computes, for every color and cell, the minimum number
// of rule applications needed to place that color at that cell starting
// from the present grid. Only same-size rules participate (an in-place
// rewrite is the only kind a potential step can represent).
func ForwardPotentials(g *grid.Grid, rules []*rule.Rule) [][]int {
	return computeDirectional(g, rules, true, func(c byte, i int) bool {
		return g.State[i] == c
	})
}

// BackwardPotentials computes, for every color and cell, the minimum
// number of rule applications needed to reach a state satisfying future
// starting from a hypothetical grid with that color already at that cell.
func BackwardPotentials(g *grid.Grid, rules []*rule.Rule, future []uint64) [][]int {
	return computeDirectional(g, rules, false, func(c byte, i int) bool {
		return future[i]>>uint(c)&1 != 0
	})
}

// computeDirectional runs the shared dynamic-BFS: seed seeds the turn-0
// frontier; forward selects input-matches-to-output, false selects the
// reverse (output-matches-to-input).
func computeDirectional(g *grid.Grid, rules []*rule.Rule, forward bool, seed func(c byte, i int) bool) [][]int {
	n := len(g.State)
	pot := make([][]int, 64)
	for c := range pot {
		pot[c] = make([]int, n)
		for i := range pot[c] {
			pot[c][i] = Unreachable
		}
	}

	var queue []queueItem
	for i := 0; i < n; i++ {
		x, y, z := coords(g, i)
		for c := 0; c < 64; c++ {
			if pot[c][i] != Unreachable {
				continue
			}
			if seed(byte(c), i) {
				pot[c][i] = 0
				queue = append(queue, queueItem{byte(c), x, y, z, 0})
			}
		}
	}

	matchMask := make([][]bool, len(rules))
	for i := range matchMask {
		matchMask[i] = make([]bool, n)
	}

	for head := 0; head < len(queue); head++ {
		it := queue[head]
		for ri, r := range rules {
			if !r.SameSize() {
				continue
			}
			shifts := r.IShifts[it.color]
			if !forward {
				shifts = r.OShifts[it.color]
			}
			for _, s := range shifts {
				ox, oy, oz := it.x-s.DX, it.y-s.DY, it.z-s.DZ
				if !g.InBounds(ox, oy, oz, r.IMX, r.IMY, r.IMZ) {
					continue
				}
				oidx := g.Index(ox, oy, oz)
				if matchMask[ri][oidx] {
					continue
				}
				if !directionalMatches(g, r, ox, oy, oz, it.turn, pot, forward) {
					continue
				}
				matchMask[ri][oidx] = true
				queue = applyDirectional(g, r, ox, oy, oz, it.turn, pot, forward, queue)
			}
		}
	}

	return pot
}

func directionalMatches(g *grid.Grid, r *rule.Rule, x, y, z, turn int, pot [][]int, forward bool) bool {
	matchArr := r.BInput
	if !forward {
		matchArr = r.Output
	}
	for idx, c := range matchArr {
		if c == rule.Wildcard {
			continue
		}
		dx, dy, dz := decompose(idx, r.IMX, r.IMY)
		cellIdx := g.Index(x+dx, y+dy, z+dz)
		p := pot[c][cellIdx]
		if p == Unreachable || p > turn {
			return false
		}
	}

	return true
}

func applyDirectional(g *grid.Grid, r *rule.Rule, x, y, z, turn int, pot [][]int, forward bool, queue []queueItem) []queueItem {
	applyArr := r.Output
	if !forward {
		applyArr = r.BInput
	}
	for idx, c := range applyArr {
		if c == rule.Wildcard {
			continue
		}
		dx, dy, dz := decompose(idx, r.IMX, r.IMY)
		cx, cy, cz := x+dx, y+dy, z+dz
		cellIdx := g.Index(cx, cy, cz)
		if pot[c][cellIdx] != Unreachable {
			continue
		}
		pot[c][cellIdx] = turn + 1
		queue = append(queue, queueItem{c, cx, cy, cz, turn + 1})
	}

	return queue
}

func coords(g *grid.Grid, i int) (int, int, int) {
	z := i / (g.MX * g.MY)
	rem := i % (g.MX * g.MY)
	y := rem / g.MX
	x := rem % g.MX

	return x, y, z
}

func decompose(idx, mx, my int) (int, int, int) {
	z := idx / (mx * my)
	rem := idx % (mx * my)
	y := rem / mx
	x := rem % mx

	return x, y, z
}

// ForwardPointwise sums, for each cell, the minimum potential among colors
// whose bit is set in future[i]. Returns ok==false if any cell has no
// reachable color under future.
func ForwardPointwise(pot [][]int, future []uint64) (total int, ok bool) {
	for i, mask := range future {
		best := Unreachable
		for c := 0; c < 64; c++ {
			if mask>>uint(c)&1 == 0 {
				continue
			}
			p := pot[c][i]
			if p == Unreachable {
				continue
			}
			if best == Unreachable || p < best {
				best = p
			}
		}
		if best == Unreachable {
			return 0, false
		}
		total += best
	}

	return total, true
}

// BackwardPointwise sums potentials[present[i]][i] over every cell.
// Returns ok==false if any cell's present color has no potential.
func BackwardPointwise(pot [][]int, present []byte) (total int, ok bool) {
	for i, c := range present {
		p := pot[c][i]
		if p == Unreachable {
			return 0, false
		}
		total += p
	}

	return total, true
}
