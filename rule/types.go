package rule

import "errors"

// Sentinel errors for rule construction.
var (
	// ErrNonRectangular indicates a pattern whose rows or layers differ in length.
	ErrNonRectangular = errors.New("rule: pattern rows/layers must be rectangular")

	// ErrEmptyPattern indicates an empty in/out pattern string.
	ErrEmptyPattern = errors.New("rule: pattern must not be empty")

	// ErrOddWidth indicates a glued input+output bitmap with odd width.
	ErrOddWidth = errors.New("rule: glued resource must have even width")

	// ErrUnknownColor indicates a pattern character outside the grid's alphabet or union table.
	ErrUnknownColor = errors.New("rule: character not in grid alphabet")

	// ErrBadProbability indicates p outside (0,1].
	ErrBadProbability = errors.New("rule: probability p must be in (0,1]")
)

// Wildcard is the output-cell sentinel meaning "do not modify this cell".
const Wildcard byte = 0xFF

// Shift is a (dx,dy,dz) offset from a rule box's origin.
type Shift struct {
	DX, DY, DZ int
}

// Rule is a pair of input/output boxes over a grid's alphabet.
//
// Invariant (when IMX,IMY,IMZ == OMX,OMY,OMZ): every Output byte that is not
// Wildcard must lie within the bitmask of at least one color present in the
// target grid's alphabet (enforced by the caller grid's Wave/Values tables
// at construction time).
type Rule struct {
	IMX, IMY, IMZ int
	OMX, OMY, OMZ int

	Input  []uint64 // len == IMX*IMY*IMZ; accepted-color bitmask per input cell
	BInput []byte   // packed: single accepted color, or Wildcard for coarse/union cells
	Output []byte   // len == OMX*OMY*OMZ; color, or Wildcard for "unchanged"

	IShifts [64][]Shift // per color: input-box positions admitting that color
	OShifts [64][]Shift // per color: output-box positions writing that color (only if in/out same size)

	P        float64
	Original bool
}

// InputDims implements grid.Pattern.
func (r *Rule) InputDims() (int, int, int) { return r.IMX, r.IMY, r.IMZ }

// InputMask implements grid.Pattern.
func (r *Rule) InputMask(i int) uint64 { return r.Input[i] }

// Index maps an input-box (dx,dy,dz) to its flat offset.
func (r *Rule) Index(dx, dy, dz int) int {
	return dx + dy*r.IMX + dz*r.IMX*r.IMY
}

// OutIndex maps an output-box (dx,dy,dz) to its flat offset.
func (r *Rule) OutIndex(dx, dy, dz int) int {
	return dx + dy*r.OMX + dz*r.OMX*r.OMY
}

// SameSize reports whether the input and output boxes share dimensions —
// the precondition for OShifts and for in-place (OneNode/AllNode/ParallelNode)
// application.
func (r *Rule) SameSize() bool {
	return r.IMX == r.OMX && r.IMY == r.OMY && r.IMZ == r.OMZ
}
