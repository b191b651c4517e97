package grid

import "errors"

// Sentinel errors for grid construction and lookups.
var (
	// ErrTooManyColors indicates an alphabet with more than MaxColors symbols.
	ErrTooManyColors = errors.New("grid: alphabet exceeds 64 colors")

	// ErrEmptyAlphabet indicates an alphabet string with no characters.
	ErrEmptyAlphabet = errors.New("grid: alphabet must have at least one character")

	// ErrDuplicateCharacter indicates the same symbol appears twice in an alphabet.
	ErrDuplicateCharacter = errors.New("grid: duplicate character in alphabet")

	// ErrBadDimensions indicates a non-positive dimension was requested.
	ErrBadDimensions = errors.New("grid: MX, MY, MZ must all be positive")

	// ErrUnknownCharacter indicates a character outside the grid's alphabet.
	ErrUnknownCharacter = errors.New("grid: character not in alphabet")

	// ErrUnknownUnionMember indicates a union references an undeclared character.
	ErrUnknownUnionMember = errors.New("grid: union references unknown character")
)

// MaxColors is the largest alphabet size a Grid can hold: one bit per color
// in a uint64 wave bitmask, and State bytes only need to be < 64.
const MaxColors = 64

// Grid is a mutable 3D array of cell colors over a bounded alphabet.
//
// Invariant: every State[i] < len(Characters); every bitmask in Waves is
// exactly len(Characters) bits wide; Values[Characters[i]] == byte(i) for
// all i.
type Grid struct {
	MX, MY, MZ int
	State      []byte
	Characters []byte
	Values     map[byte]byte
	Waves      map[byte]uint64
	Mask       []bool
}

// New constructs an MX x MY x MZ grid over the given alphabet string.
// Every cell starts at color 0 (the first character). The wildcard '*'
// is registered automatically as the all-colors mask.
//
// Returns ErrBadDimensions, ErrEmptyAlphabet, ErrTooManyColors, or
// ErrDuplicateCharacter on invalid input.
func New(mx, my, mz int, alphabet string) (*Grid, error) {
	if mx <= 0 || my <= 0 || mz <= 0 {
		return nil, ErrBadDimensions
	}
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if len(alphabet) > MaxColors {
		return nil, ErrTooManyColors
	}

	characters := make([]byte, len(alphabet))
	values := make(map[byte]byte, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if _, dup := values[c]; dup {
			return nil, ErrDuplicateCharacter
		}
		characters[i] = c
		values[c] = byte(i)
	}

	n := mx * my * mz
	g := &Grid{
		MX:         mx,
		MY:         my,
		MZ:         mz,
		State:      make([]byte, n),
		Characters: characters,
		Values:     values,
		Waves:      make(map[byte]uint64, len(alphabet)+1),
		Mask:       make([]bool, n),
	}

	fullMask := uint64(0)
	if len(characters) == MaxColors {
		fullMask = ^uint64(0)
	} else {
		fullMask = (uint64(1) << uint(len(characters))) - 1
	}
	g.Waves['*'] = fullMask
	for _, c := range characters {
		g.Waves[c] = uint64(1) << uint(g.Values[c])
	}

	return g, nil
}

// AddUnion declares a union symbol whose wave is the union of the masks of
// every character in members. Returns ErrUnknownUnionMember if any member
// character is not part of the grid's alphabet.
func (g *Grid) AddUnion(symbol byte, members string) error {
	var mask uint64
	for i := 0; i < len(members); i++ {
		idx, ok := g.Values[members[i]]
		if !ok {
			return ErrUnknownUnionMember
		}
		mask |= uint64(1) << uint(idx)
	}
	g.Waves[symbol] = mask

	return nil
}

// Clear resets every cell to color 0, the first character of the alphabet.
func (g *Grid) Clear() {
	for i := range g.State {
		g.State[i] = 0
	}
}

// Index maps (x,y,z) to the flat row-major offset into State.
func (g *Grid) Index(x, y, z int) int {
	return x + y*g.MX + z*g.MX*g.MY
}

// Wave converts a pattern-grammar string of characters (single symbols,
// '*', or declared union symbols) into the bitmask of accepted colors.
// Unknown characters yield a zero mask silently, matching an absent cell
// matching nothing.
func (g *Grid) Wave(s string) uint64 {
	var mask uint64
	for i := 0; i < len(s); i++ {
		mask |= g.Waves[s[i]]
	}

	return mask
}
