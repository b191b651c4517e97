package branch

import (
	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/node"
	"github.com/markovjunior/mjrun/rule"
)

// Scale is a per-axis rational scale factor (nx/dx, ny/dy, nz/dz) MapNode
// applies when allocating its replacement grid.
type Scale struct {
	NX, DX int
	NY, DY int
	NZ, DZ int
}

// MapNode performs a single grid rescale on its first activation: every
// rule is matched against the source grid with periodic wrap-around, and
// each match's output is written into a newly allocated, differently
// sized grid at the correspondingly scaled, periodically wrapped
// coordinates. Once built, the interpreter's grid is replaced and the
// node yields to its Children, which run over the new grid in sequence.
type MapNode struct {
	Rules    []*rule.Rule
	Scale    Scale
	Children []node.Node

	done bool
	n    int
}

// Go implements node.Node. The first activation performs the rescale and
// replaces ctx.Grid with the newly allocated grid; every later activation
// drives the current child over it, sequence-style.
func (m *MapNode) Go(ctx *node.Context) bool {
	if m.done {
		return stepChildren(ctx, m.Children, &m.n)
	}
	m.done = true

	src := ctx.Grid
	nmx := scaleDim(src.MX, m.Scale.NX, m.Scale.DX)
	nmy := scaleDim(src.MY, m.Scale.NY, m.Scale.DY)
	nmz := scaleDim(src.MZ, m.Scale.NZ, m.Scale.DZ)

	dst, err := grid.New(nmx, nmy, nmz, string(src.Characters))
	if err != nil {
		return false
	}
	for c, mask := range src.Waves {
		dst.Waves[c] = mask
	}

	for _, r := range m.Rules {
		for z := 0; z < src.MZ; z++ {
			for y := 0; y < src.MY; y++ {
				for x := 0; x < src.MX; x++ {
					if !periodicMatches(src, r, x, y, z) {
						continue
					}
					writeScaled(src, dst, r, x, y, z, m.Scale)
				}
			}
		}
	}

	ctx.Grid = dst

	return true
}

// Reset implements node.Node: a rescale is one-shot per interpreter run,
// so Reset re-arms it and its children for a later full rerun.
func (m *MapNode) Reset() {
	m.done = false
	m.n = 0
	for _, c := range m.Children {
		c.Reset()
	}
}

func scaleDim(m, n, d int) int {
	return m * n / d
}

// periodicMatches tests r's input box anchored at (x,y,z) with every
// coordinate wrapped into the source grid, matching MapNode's periodic
// matching requirement without needing the box to fit unwrapped.
func periodicMatches(g *grid.Grid, r *rule.Rule, x, y, z int) bool {
	i := 0
	for dz := 0; dz < r.IMZ; dz++ {
		for dy := 0; dy < r.IMY; dy++ {
			for dx := 0; dx < r.IMX; dx++ {
				mask := r.Input[i]
				i++
				wx, wy, wz := g.Wrap(x+dx, y+dy, z+dz)
				c := g.State[g.Index(wx, wy, wz)]
				if mask>>uint(c)&1 == 0 {
					return false
				}
			}
		}
	}

	return true
}

// writeScaled writes r's output box into dst at the source origin scaled
// per-axis by sc, wrapping the destination coordinates periodically.
func writeScaled(src, dst *grid.Grid, r *rule.Rule, x, y, z int, sc Scale) {
	ox := scaleDim(x, sc.NX, sc.DX)
	oy := scaleDim(y, sc.NY, sc.DY)
	oz := scaleDim(z, sc.NZ, sc.DZ)

	for dz := 0; dz < r.OMZ; dz++ {
		for dy := 0; dy < r.OMY; dy++ {
			for dx := 0; dx < r.OMX; dx++ {
				c := r.Output[r.OutIndex(dx, dy, dz)]
				if c == rule.Wildcard {
					continue
				}
				wx, wy, wz := dst.Wrap(ox+dx, oy+dy, oz+dz)
				dst.State[dst.Index(wx, wy, wz)] = c
			}
		}
	}
}
