package pathnode

import (
	"math"

	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/gridwalk"
	"github.com/markovjunior/mjrun/node"
)

// Unreachable is the sentinel BFS generation for a cell the finish-seeded
// walk never reaches.
const Unreachable = gridwalk.Unreachable

// PathNode draws a path from the nearest (or farthest, if Longest) Start
// cell to the Finish region, walking only through Start, Finish, or
// Substrate cells, painting every traversed cell Value except the Finish
// cell the path ends on, which keeps its color.
type PathNode struct {
	Start, Finish, Substrate uint64
	Value                    byte

	Longest  bool
	Edges    bool // allow diagonal neighbors differing in exactly 2 axes
	Vertices bool // allow diagonal neighbors differing in exactly 3 axes
	Inertia  bool // prefer continuing the previous step's direction

	done bool
}

// Go implements node.Node. It returns false (and leaves the grid
// untouched) if no Start cell is reachable from Finish; true otherwise,
// after which it never fires again until Reset.
func (p *PathNode) Go(ctx *node.Context) bool {
	if p.done {
		return false
	}
	p.done = true

	g := ctx.Grid
	w := gridwalk.New(g, gridwalk.Options{Edges: p.Edges, Vertices: p.Vertices})
	gen, _ := w.Distances(p.Finish, p.Start|p.Substrate)

	bestIdx, found := -1, false
	for i, c := range g.State {
		if p.Start>>uint(c)&1 == 0 {
			continue
		}
		d := gen[i]
		if d == Unreachable {
			continue
		}
		if !found || (p.Longest && d > gen[bestIdx]) || (!p.Longest && d < gen[bestIdx]) {
			bestIdx, found = i, true
		}
	}
	if !found {
		return false
	}

	p.walk(ctx, gen, bestIdx, w.Offsets())

	return true
}

// Reset implements node.Node.
func (p *PathNode) Reset() { p.done = false }

// walk greedily descends gen's gradient from start toward 0, painting
// every visited cell Value (including start, excluding the generation-0
// cell it stops on) via ctx.Apply. offsets is the
// same neighbor table the generation BFS explored, so the descent can
// always reach a lower generation.
func (p *PathNode) walk(ctx *node.Context, gen []int, start int, offsets [][3]int) {
	g := ctx.Grid
	cur := start
	var prevDir [3]int
	havePrevDir := false

	for gen[cur] != 0 {
		x, y, z := coords(g, cur)
		ctx.Apply(x, y, z, p.Value)

		bestIdx, bestDir := -1, [3]int{}
		bestScore := -1.0
		for _, off := range offsets {
			nx, ny, nz := x+off[0], y+off[1], z+off[2]
			if nx < 0 || ny < 0 || nz < 0 || nx >= g.MX || ny >= g.MY || nz >= g.MZ {
				continue
			}
			vi := g.Index(nx, ny, nz)
			if gen[vi] == Unreachable || gen[vi] >= gen[cur] {
				continue
			}

			score := 0.0
			if p.Inertia && havePrevDir {
				score = cosine(prevDir, off)
			}
			if bestIdx == -1 || score > bestScore {
				bestIdx, bestDir, bestScore = vi, off, score
			}
		}
		if bestIdx == -1 {
			break
		}

		cur = bestIdx
		prevDir = bestDir
		havePrevDir = true
	}
}

func cosine(a, b [3]int) float64 {
	dot := float64(a[0]*b[0] + a[1]*b[1] + a[2]*b[2])
	na := norm(a)
	nb := norm(b)
	if na == 0 || nb == 0 {
		return 0
	}

	return dot / (na * nb)
}

func norm(v [3]int) float64 {
	return math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
}

func coords(g *grid.Grid, i int) (int, int, int) {
	z := i / (g.MX * g.MY)
	rem := i % (g.MX * g.MY)
	y := rem / g.MX
	x := rem % g.MX

	return x, y, z
}
