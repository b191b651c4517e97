package grid

// Pattern is the minimal view of a rule's input box that Matches needs.
// rule.Rule implements it; grid stays free of any import on rule to avoid
// a cycle (rule already imports grid for Wave/Values).
type Pattern interface {
	// InputDims returns the input box size (IMX, IMY, IMZ).
	InputDims() (int, int, int)
	// InputMask returns the accepted-color bitmask for input cell index i,
	// where i = ix + iy*IMX + iz*IMX*IMY.
	InputMask(i int) uint64
}

// Matches reports whether p's input pattern is satisfied with its corner at
// (x,y,z): for every cell in the input box, the present color's bit must be
// set in the corresponding mask. This is the innermost loop of the
// interpreter; bounds are guaranteed by the caller (the matcher only ever
// enqueues origins that keep the whole box inside the grid), so no bounds
// checks are performed here.
func (g *Grid) Matches(p Pattern, x, y, z int) bool {
	imx, imy, imz := p.InputDims()
	i := 0
	for dz := 0; dz < imz; dz++ {
		for dy := 0; dy < imy; dy++ {
			base := g.Index(x, y+dy, z+dz)
			for dx := 0; dx < imx; dx++ {
				mask := p.InputMask(i)
				i++
				if mask>>uint(g.State[base+dx])&1 == 0 {
					return false
				}
			}
		}
	}

	return true
}

// InBounds reports whether the box of size (bx,by,bz) anchored at (x,y,z)
// lies entirely within the grid.
func (g *Grid) InBounds(x, y, z, bx, by, bz int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x+bx <= g.MX && y+by <= g.MY && z+bz <= g.MZ
}

// InBoundsPeriodic reports true always — periodic matching wraps every
// coordinate via Wrap, so no box is ever out of bounds, only differently
// addressed. No package in this module calls it; MapNode and
// ConvolutionNode call Wrap directly.
func (g *Grid) InBoundsPeriodic(int, int, int, int, int, int) bool { return true }

// Wrap folds (x,y,z) into [0,MX)x[0,MY)x[0,MZ) for periodic grids.
func (g *Grid) Wrap(x, y, z int) (int, int, int) {
	x = ((x % g.MX) + g.MX) % g.MX
	y = ((y % g.MY) + g.MY) % g.MY
	z = ((z % g.MZ) + g.MZ) % g.MZ

	return x, y, z
}

// ClearMask resets every Mask entry touched since the last clear. AllNode
// calls this once per step after applying its candidates; cells is the set
// of flat indices written during the step.
func (g *Grid) ClearMask(cells []int) {
	for _, i := range cells {
		g.Mask[i] = false
	}
}
