package convchain

import (
	"math"

	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/node"
	"github.com/markovjunior/mjrun/symmetry"
)

// Node is ConvChainNode: it rewrites every cell currently colored C0 or C1
// (the grid's boolean substrate) toward the sample's NxN pattern
// statistics via Metropolis-Hastings trial flips.
type Node struct {
	Sample      [][]bool // sample[y][x]; true == "on"
	N           int
	Symmetry    []symmetry.Transform
	Temperature float64
	C0, C1      byte // grid colors standing in for false/true
	Steps       int  // 0 = unlimited

	w           weights
	counter     int
	initialized bool
}

// Go implements node.Node. The first call randomizes every substrate cell
// (already holding C0 or C1) to C0 or C1 uniformly; every later call
// performs one trial flip per grid cell.
func (n *Node) Go(ctx *node.Context) bool {
	if n.Steps > 0 && n.counter >= n.Steps {
		return false
	}
	n.counter++

	if n.w == nil {
		n.w = tabulate(n.Sample, n.N, n.Symmetry)
	}

	g := ctx.Grid
	if !n.initialized {
		n.initialized = true
		changed := false
		for i, c := range g.State {
			if c != n.C0 && c != n.C1 {
				continue
			}
			x, y, z := coords(g, i)
			v := n.C0
			if ctx.RNG.Double() < 0.5 {
				v = n.C1
			}
			if ctx.Apply(x, y, z, v) {
				changed = true
			}
		}

		return changed
	}

	trials := g.MX * g.MY
	for t := 0; t < trials; t++ {
		x := ctx.RNG.Intn(g.MX)
		y := ctx.RNG.Intn(g.MY)
		idx := g.Index(x, y, 0)
		cur := g.State[idx]
		if cur != n.C0 && cur != n.C1 {
			continue
		}
		proposed := n.C0
		if cur == n.C0 {
			proposed = n.C1
		}

		q := n.acceptanceRatio(g, x, y, proposed)
		accept := q >= 1 || ctx.RNG.Double() < math.Pow(q, 1/n.Temperature)
		if accept {
			ctx.Apply(x, y, 0, proposed)
		}
	}

	return true
}

// Reset implements node.Node: a fresh randomization runs on the next Go.
func (n *Node) Reset() {
	n.counter = 0
	n.initialized = false
}

// Validate checks the node's static configuration before a run: the
// sample must contain at least one full NxN window and the temperature
// must be positive. Loaders call this once at model-build time so a bad
// declaration surfaces as a load error instead of a silent no-op run.
func (n *Node) Validate() error {
	if n.Temperature <= 0 {
		return ErrBadTemperature
	}
	if len(n.Sample) < n.N || (len(n.Sample) > 0 && len(n.Sample[0]) < n.N) {
		return ErrSampleTooSmall
	}

	return nil
}

// acceptanceRatio computes q = product over every NxN window containing
// (x,y) of weight(pattern-with-flip) / weight(pattern-without-flip).
func (n *Node) acceptanceRatio(g *grid.Grid, x, y int, proposed byte) float64 {
	q := 1.0
	for oy := y - n.N + 1; oy <= y; oy++ {
		for ox := x - n.N + 1; ox <= x; ox++ {
			before := n.windowIndex(g, ox, oy, -1, -1, 0)
			after := n.windowIndex(g, ox, oy, x-ox, y-oy, proposed)
			q *= n.w.of(after) / n.w.of(before)
		}
	}

	return q
}

// windowIndex builds the pattern index for the NxN window whose origin is
// (ox,oy) (grid coordinates, periodic). If flipDX/flipDY fall within the
// window, the cell at that local offset is forced to flipColor instead of
// its current grid color.
func (n *Node) windowIndex(g *grid.Grid, ox, oy, flipDX, flipDY int, flipColor byte) uint64 {
	var idx uint64
	bit := 0
	for dy := 0; dy < n.N; dy++ {
		for dx := 0; dx < n.N; dx++ {
			var on bool
			if dx == flipDX && dy == flipDY {
				on = flipColor == n.C1
			} else {
				gx, gy, _ := g.Wrap(ox+dx, oy+dy, 0)
				on = g.State[g.Index(gx, gy, 0)] == n.C1
			}
			if on {
				idx |= 1 << uint(bit)
			}
			bit++
		}
	}

	return idx
}

// tabulate counts, for every symmetry-orbit image of every NxN sample
// window (periodic), the resulting pattern index.
func tabulate(sample [][]bool, n int, orbit []symmetry.Transform) weights {
	w := make(weights)
	h := len(sample)
	if h == 0 {
		return w
	}
	width := len(sample[0])

	transforms := orbit
	if len(transforms) == 0 {
		transforms, _ = symmetry.Square("()") // identity-only orbit
	}

	for wy := 0; wy < h; wy++ {
		for wx := 0; wx < width; wx++ {
			for _, t := range transforms {
				idx := patternIndexFromSample(sample, wx, wy, n, func(dx, dy int) (int, int) {
					tx, ty, _ := t.Apply(dx, dy, 0, n, n, 1)

					return tx, ty
				})
				w[idx]++
			}
		}
	}

	return w
}

func patternIndexFromSample(sample [][]bool, wx, wy, n int, transform func(dx, dy int) (int, int)) uint64 {
	h := len(sample)
	width := len(sample[0])

	var idx uint64
	bit := 0
	for dy := 0; dy < n; dy++ {
		for dx := 0; dx < n; dx++ {
			tx, ty := transform(dx, dy)
			sx := ((wx+tx)%width + width) % width
			sy := ((wy+ty)%h + h) % h
			if sample[sy][sx] {
				idx |= 1 << uint(bit)
			}
			bit++
		}
	}

	return idx
}

func coords(g *grid.Grid, i int) (int, int, int) {
	z := i / (g.MX * g.MY)
	rem := i % (g.MX * g.MY)
	y := rem / g.MX
	x := rem % g.MX

	return x, y, z
}
