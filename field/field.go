package field

import (
	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/gridwalk"
	"github.com/markovjunior/mjrun/rule"
)

// Unreachable is the sentinel distance for a cell no BFS path via Substrate
// connects to any Zero-colored cell.
const Unreachable = gridwalk.Unreachable

// Field is a per-cell BFS distance field seeded at every Zero-colored cell
// and relaxed through Substrate-colored neighbors.
//
//   - Zero: bitmask of colors a field is "satisfied" at (distance 0).
//   - Substrate: bitmask of colors the BFS may step through.
//   - Recompute: redo the BFS every step instead of only on first use.
//   - Essential: if the grid has zero Zero-colored cells, the owning node aborts.
//   - Inversed: flips the sign of DeltaPointwise's score contribution.
type Field struct {
	Zero       uint64
	Substrate  uint64
	Recompute  bool
	Essential  bool
	Inversed   bool
	Potentials []int
}

// New allocates a Field sized for g, with every Potentials entry
// Unreachable until Compute runs.
func New(g *grid.Grid, zero, substrate uint64, recompute, essential, inversed bool) *Field {
	f := &Field{
		Zero:       zero,
		Substrate:  substrate,
		Recompute:  recompute,
		Essential:  essential,
		Inversed:   inversed,
		Potentials: make([]int, len(g.State)),
	}
	for i := range f.Potentials {
		f.Potentials[i] = Unreachable
	}

	return f
}

// Compute runs the multi-source BFS over orthogonal neighbors and returns
// the number of cells currently holding a Zero color (the essential-field
// liveness check).
func (f *Field) Compute(g *grid.Grid) int {
	dist, zeros := gridwalk.New(g, gridwalk.Options{}).Distances(f.Zero, f.Substrate)
	f.Potentials = dist

	return zeros
}

// DeltaPointwise computes the hypothetical score change of applying rule r
// at (x,y,z): for each input/output cell pair where the output is not
// Wildcard and changes the cell's color, it looks up the new color's
// potential under fields[newColor] and the old color's potential under
// fields[oldColor] (0 if that color has no tracked field) and sums their
// difference, sign-flipped for Inversed fields. Returns ok==false ("do not
// apply") if any new-color potential is Unreachable. Only meaningful for
// same-size rules.
func DeltaPointwise(g *grid.Grid, r *rule.Rule, x, y, z int, fields map[byte]*Field) (float64, bool) {
	if !r.SameSize() {
		return 0, false
	}

	var delta float64
	for dz := 0; dz < r.IMZ; dz++ {
		for dy := 0; dy < r.IMY; dy++ {
			for dx := 0; dx < r.IMX; dx++ {
				outIdx := r.OutIndex(dx, dy, dz)
				newColor := r.Output[outIdx]
				if newColor == rule.Wildcard {
					continue
				}
				cellIdx := g.Index(x+dx, y+dy, z+dz)
				oldColor := g.State[cellIdx]
				if newColor == oldColor {
					continue
				}

				newField, ok := fields[newColor]
				if !ok {
					continue
				}
				newPot := newField.Potentials[cellIdx]
				if newPot == Unreachable {
					return 0, false
				}

				oldPot := 0
				if oldField, ok := fields[oldColor]; ok {
					oldPot = oldField.Potentials[cellIdx]
				}

				d := float64(newPot - oldPot)
				if newField.Inversed {
					d = -d
				}
				delta += d
			}
		}
	}

	return delta, true
}
