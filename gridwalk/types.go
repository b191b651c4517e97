package gridwalk

import "github.com/markovjunior/mjrun/grid"

// Unreachable is the distance recorded for a cell no walk reaches.
const Unreachable = -1

// Options contains tunable connectivity parameters for a Walker. The zero
// value is orthogonal-only adjacency, the default every distance field
// uses; path drawing widens it per its own flags.
type Options struct {
	// Edges admits diagonal neighbors differing in exactly two axes.
	Edges bool
	// Vertices admits diagonal neighbors differing in all three axes.
	Vertices bool
}

// Walker is an immutable view of one grid with its neighbor offsets
// precomputed for efficient adjacency lookups. It never mutates the grid.
type Walker struct {
	g       *grid.Grid
	offsets [][3]int
}

// New builds a Walker over g with the connectivity opts selects.
func New(g *grid.Grid, opts Options) *Walker {
	return &Walker{g: g, offsets: buildOffsets(g, opts)}
}

// Offsets exposes the precomputed neighbor table for callers walking the
// same adjacency by hand (gradient descent over a distance field).
func (w *Walker) Offsets() [][3]int { return w.offsets }

func buildOffsets(g *grid.Grid, opts Options) [][3]int {
	var out [][3]int
	zr := 1
	if g.MZ == 1 {
		zr = 0
	}
	for dz := -zr; dz <= zr; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				switch axes(dx, dy, dz) {
				case 1:
					out = append(out, [3]int{dx, dy, dz})
				case 2:
					if opts.Edges {
						out = append(out, [3]int{dx, dy, dz})
					}
				case 3:
					if opts.Vertices {
						out = append(out, [3]int{dx, dy, dz})
					}
				}
			}
		}
	}

	return out
}

func axes(dx, dy, dz int) int {
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

func (w *Walker) inBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < w.g.MX && y < w.g.MY && z < w.g.MZ
}

func (w *Walker) coords(i int) (int, int, int) {
	z := i / (w.g.MX * w.g.MY)
	rem := i % (w.g.MX * w.g.MY)

	return rem % w.g.MX, rem / w.g.MX, z
}
