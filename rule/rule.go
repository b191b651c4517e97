package rule

import (
	"math/bits"

	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/resource"
	"github.com/markovjunior/mjrun/symmetry"
)

// New parses an inline in/out pattern pair against g's alphabet and
// precomputes ishifts/oshifts. p is the rule's applied
// probability (must be in (0,1]); original marks it as user-authored rather
// than symmetry-generated.
func New(inPattern, outPattern string, g *grid.Grid, p float64, original bool) (*Rule, error) {
	if p <= 0 || p > 1 {
		return nil, ErrBadProbability
	}

	ib, err := parsePattern(inPattern)
	if err != nil {
		return nil, err
	}
	ob, err := parsePattern(outPattern)
	if err != nil {
		return nil, err
	}

	return newFromBoxes(ib, ob, g, p, original)
}

// NewFromBitmap builds a Rule from a pre-decoded glued input+output bitmap
// (the "file" attribute): the image must have even width; the left half
// is the input box, the right half the output box.
// legend maps a decoded palette entry to the grid character it represents.
// Decoding the PNG/VOX bytes into bmp is the external loader's job
// (resource.Loader); this function only consumes the result.
func NewFromBitmap(bmp *resource.Bitmap, legend map[int32]byte, g *grid.Grid, p float64, original bool) (*Rule, error) {
	if bmp.Width%2 != 0 {
		return nil, ErrOddWidth
	}
	halfW := bmp.Width / 2

	inCells := make([]byte, halfW*bmp.Height*bmp.Depth)
	outCells := make([]byte, halfW*bmp.Height*bmp.Depth)
	n := 0
	for z := 0; z < bmp.Depth; z++ {
		for y := 0; y < bmp.Height; y++ {
			for x := 0; x < halfW; x++ {
				li := x + y*bmp.Width + z*bmp.Width*bmp.Height
				ri := (x + halfW) + y*bmp.Width + z*bmp.Width*bmp.Height
				lc, ok := legend[bmp.Palette[bmp.Indices[li]]]
				if !ok {
					return nil, ErrUnknownColor
				}
				rc, ok := legend[bmp.Palette[bmp.Indices[ri]]]
				if !ok {
					return nil, ErrUnknownColor
				}
				inCells[n] = lc
				outCells[n] = rc
				n++
			}
		}
	}

	ib := box{bx: halfW, by: bmp.Height, bz: bmp.Depth, cells: inCells}
	ob := box{bx: halfW, by: bmp.Height, bz: bmp.Depth, cells: outCells}

	return newFromBoxes(ib, ob, g, p, original)
}

func newFromBoxes(ib, ob box, g *grid.Grid, p float64, original bool) (*Rule, error) {
	input := make([]uint64, len(ib.cells))
	binput := make([]byte, len(ib.cells))
	for i, c := range ib.cells {
		mask := g.Waves[c]
		if mask == 0 {
			return nil, ErrUnknownColor
		}
		input[i] = mask
		if bits.OnesCount64(mask) == 1 {
			binput[i] = byte(bits.TrailingZeros64(mask))
		} else {
			binput[i] = Wildcard
		}
	}

	output := make([]byte, len(ob.cells))
	for i, c := range ob.cells {
		if c == '*' {
			output[i] = Wildcard
			continue
		}
		idx, ok := g.Values[c]
		if !ok {
			return nil, ErrUnknownColor
		}
		output[i] = idx
	}

	r := &Rule{
		IMX: ib.bx, IMY: ib.by, IMZ: ib.bz,
		OMX: ob.bx, OMY: ob.by, OMZ: ob.bz,
		Input: input, BInput: binput, Output: output,
		P: p, Original: original,
	}
	computeShifts(r)

	return r, nil
}

// computeShifts fills IShifts (always) and OShifts (only when the input and
// output boxes are the same size).
func computeShifts(r *Rule) {
	for dz := 0; dz < r.IMZ; dz++ {
		for dy := 0; dy < r.IMY; dy++ {
			for dx := 0; dx < r.IMX; dx++ {
				mask := r.Input[r.Index(dx, dy, dz)]
				for c := 0; c < 64; c++ {
					if mask>>uint(c)&1 != 0 {
						r.IShifts[c] = append(r.IShifts[c], Shift{DX: dx, DY: dy, DZ: dz})
					}
				}
			}
		}
	}

	if !r.SameSize() {
		return
	}
	for dz := 0; dz < r.OMZ; dz++ {
		for dy := 0; dy < r.OMY; dy++ {
			for dx := 0; dx < r.OMX; dx++ {
				c := r.Output[r.OutIndex(dx, dy, dz)]
				if c == Wildcard {
					continue
				}
				r.OShifts[c] = append(r.OShifts[c], Shift{DX: dx, DY: dy, DZ: dz})
			}
		}
	}
}

// transform applies t to both boxes of r, returning a new Rule (shifts
// recomputed). original marks the Original flag on the result.
func (r *Rule) transform(t symmetry.Transform, original bool) *Rule {
	nimx, nimy, nimz := t.Dims(r.IMX, r.IMY, r.IMZ)
	nomx, nomy, nomz := t.Dims(r.OMX, r.OMY, r.OMZ)

	newInput := make([]uint64, len(r.Input))
	newBInput := make([]byte, len(r.BInput))
	for z := 0; z < r.IMZ; z++ {
		for y := 0; y < r.IMY; y++ {
			for x := 0; x < r.IMX; x++ {
				old := r.Index(x, y, z)
				nx, ny, nz := t.Apply(x, y, z, r.IMX, r.IMY, r.IMZ)
				newIdx := nx + ny*nimx + nz*nimx*nimy
				newInput[newIdx] = r.Input[old]
				newBInput[newIdx] = r.BInput[old]
			}
		}
	}

	newOutput := make([]byte, len(r.Output))
	for z := 0; z < r.OMZ; z++ {
		for y := 0; y < r.OMY; y++ {
			for x := 0; x < r.OMX; x++ {
				old := r.OutIndex(x, y, z)
				nx, ny, nz := t.Apply(x, y, z, r.OMX, r.OMY, r.OMZ)
				newIdx := nx + ny*nomx + nz*nomx*nomy
				newOutput[newIdx] = r.Output[old]
			}
		}
	}

	nr := &Rule{
		IMX: nimx, IMY: nimy, IMZ: nimz,
		OMX: nomx, OMY: nomy, OMZ: nomz,
		Input: newInput, BInput: newBInput, Output: newOutput,
		P: r.P, Original: original,
	}
	computeShifts(nr)

	return nr
}

// Reflected mirrors the rule across the x axis of both its boxes.
func (r *Rule) Reflected() *Rule { return r.transform(symmetry.ReflectX(), false) }

// ZRotated rotates the rule 90 degrees about the z axis.
func (r *Rule) ZRotated() *Rule { return r.transform(symmetry.ZRotate(), false) }

// YRotated rotates the rule 90 degrees about the y axis (3D only).
func (r *Rule) YRotated() *Rule { return r.transform(symmetry.YRotate(), false) }

// Symmetries enumerates r's orbit under the named subgroup and deduplicates
// by pattern equality. is2D selects the 8-element square group; otherwise
// the 48-element cube group is used.
func (r *Rule) Symmetries(subgroup string, is2D bool) ([]*Rule, error) {
	var transforms []symmetry.Transform
	var err error
	if is2D {
		transforms, err = symmetry.Square(subgroup)
	} else {
		transforms, err = symmetry.Cube(subgroup)
	}
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	orbit := make([]*Rule, 0, len(transforms))
	for i, t := range transforms {
		nr := r.transform(t, i == 0 && r.Original)
		sig := patternSignature(nr)
		if seen[sig] {
			continue
		}
		seen[sig] = true
		orbit = append(orbit, nr)
	}

	return orbit, nil
}

func patternSignature(r *Rule) string {
	buf := make([]byte, 0, len(r.Input)*8+len(r.Output)+24)
	buf = appendDim(buf, r.IMX, r.IMY, r.IMZ, r.OMX, r.OMY, r.OMZ)
	for _, m := range r.Input {
		buf = append(buf, byte(m), byte(m>>8), byte(m>>16), byte(m>>24),
			byte(m>>32), byte(m>>40), byte(m>>48), byte(m>>56))
	}
	buf = append(buf, r.Output...)

	return string(buf)
}

func appendDim(buf []byte, dims ...int) []byte {
	for _, d := range dims {
		buf = append(buf, byte(d), byte(d>>8))
	}

	return buf
}
