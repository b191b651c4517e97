package convolution

import (
	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/node"
)

// Node applies its Rules in one parallel sweep per Go call: every cell's
// per-color neighborhood sum is computed first (the kernel's center weight
// is always 0, so a cell never counts itself), then each cell tests its
// rules in order against that sum.
type Node struct {
	Kernel   Kernel
	Periodic bool
	Rules    []Rule
}

// Go implements node.Node. Returns true iff at least one cell changed.
func (n *Node) Go(ctx *node.Context) bool {
	g := ctx.Grid
	offsets := kernelOffsets(n.Kernel, g.MZ == 1)

	sums := make([][64]int, len(g.State))
	for i := range g.State {
		x, y, z := coords(g, i)
		for _, off := range offsets {
			nx, ny, nz := x+off[0], y+off[1], z+off[2]
			if n.Periodic {
				nx, ny, nz = g.Wrap(nx, ny, nz)
			} else if nx < 0 || ny < 0 || nz < 0 || nx >= g.MX || ny >= g.MY || nz >= g.MZ {
				continue
			}
			c := g.State[g.Index(nx, ny, nz)]
			sums[i][c]++
		}
	}

	changed := false
	next := append([]byte(nil), g.State...)
	for i, c := range g.State {
		for _, r := range n.Rules {
			if c != r.Input {
				continue
			}
			total := 0
			for color := 0; color < 64; color++ {
				if r.Values>>uint(color)&1 != 0 {
					total += sums[i][color]
				}
			}
			if total < 0 || total >= len(r.Sums) || !r.Sums[total] {
				continue
			}
			if ctx.RNG.Double() >= r.P {
				continue
			}
			next[i] = r.Output
			changed = true
			break
		}
	}

	if !changed {
		return false
	}

	for i, c := range next {
		if c != g.State[i] {
			x, y, z := coords(g, i)
			ctx.Apply(x, y, z, c)
		}
	}

	return true
}

// Reset implements node.Node: ConvolutionNode carries no activation state
// across steps, so Reset is a no-op.
func (n *Node) Reset() {}

// kernelOffsets enumerates the neighbor offsets a named kernel covers,
// restricted to the dz==0 plane when is2D is true.
func kernelOffsets(k Kernel, is2D bool) [][3]int {
	var out [][3]int
	zr := 1
	if is2D {
		zr = 0
	}
	for dz := -zr; dz <= zr; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				n := nonzero(dx, dy, dz)
				maxAxes := 3
				if is2D {
					maxAxes = 2
				}
				switch k {
				case VonNeumann:
					if n == 1 {
						out = append(out, [3]int{dx, dy, dz})
					}
				case Moore:
					out = append(out, [3]int{dx, dy, dz})
				case NoCorners:
					if n < maxAxes {
						out = append(out, [3]int{dx, dy, dz})
					}
				}
			}
		}
	}

	return out
}

func nonzero(dx, dy, dz int) int {
	n := 0
	if dx != 0 {
		n++
	}
	if dy != 0 {
		n++
	}
	if dz != 0 {
		n++
	}

	return n
}

func coords(g *grid.Grid, i int) (int, int, int) {
	z := i / (g.MX * g.MY)
	rem := i % (g.MX * g.MY)
	y := rem / g.MX
	x := rem % g.MX

	return x, y, z
}
