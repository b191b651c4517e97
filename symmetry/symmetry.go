package symmetry

// reflectY and reflectZ complete the generator set: reflectX is declared in
// types.go (shared by both groups); these two exist only to name the "(y)"
// and "(z)" subgroups without deriving them from a rotation composition.
var reflectY = Transform{
	Apply: func(x, y, z, mx, my, mz int) (int, int, int) { return x, my - 1 - y, z },
	Dims:  func(mx, my, mz int) (int, int, int) { return mx, my, mz },
}

var reflectZ = Transform{
	Apply: func(x, y, z, mx, my, mz int) (int, int, int) { return x, y, mz - 1 - z },
	Dims:  func(mx, my, mz int) (int, int, int) { return mx, my, mz },
}

// probeBox is the fixed test box used to compute a canonical signature for
// a Transform: three distinct, pairwise-coprime-ish sizes so that an axis
// permutation is never accidentally invisible in the signature.
const probeMX, probeMY, probeMZ = 2, 3, 5

// signature renders t's action on every cell of the probe box plus the
// resulting dimensions into a string key, used to deduplicate the BFS
// closure below by pattern-equivalence of the transform itself.
func signature(t Transform) string {
	mx, my, mz := t.Dims(probeMX, probeMY, probeMZ)
	buf := make([]byte, 0, probeMX*probeMY*probeMZ*4+8)
	buf = appendInt(buf, mx)
	buf = appendInt(buf, my)
	buf = appendInt(buf, mz)
	for z := 0; z < probeMZ; z++ {
		for y := 0; y < probeMY; y++ {
			for x := 0; x < probeMX; x++ {
				ox, oy, oz := t.Apply(x, y, z, probeMX, probeMY, probeMZ)
				buf = appendInt(buf, ox)
				buf = appendInt(buf, oy)
				buf = appendInt(buf, oz)
			}
		}
	}

	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	buf = append(buf, byte(v), byte(v>>8), ',')
	return buf
}

// closure computes the group generated by gens under composition, starting
// from the identity, via a BFS-with-visited-set walk over transforms. The
// result order is deterministic: generators are tried in the order given,
// and each transform's compositions are enqueued in that same order.
func closure(gens ...Transform) []Transform {
	seen := map[string]bool{signature(identity): true}
	queue := []Transform{identity}
	result := []Transform{identity}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, g := range gens {
			next := compose(cur, g)
			sig := signature(next)
			if seen[sig] {
				continue
			}
			seen[sig] = true
			result = append(result, next)
			queue = append(queue, next)
		}
	}

	return result
}

// Square returns the named subgroup of the 8-element square group.
// Rotations and reflections leave z untouched.
func Square(name string) ([]Transform, error) {
	switch name {
	case "()":
		return closure(), nil
	case "(x)":
		return closure(reflectX), nil
	case "(y)":
		return closure(reflectY), nil
	case "(x)(y)":
		return closure(reflectX, reflectY), nil
	case "(xy+)":
		return closure(zRotate), nil
	case "(xy)":
		return closure(reflectX, zRotate), nil
	}

	return nil, ErrUnknownGroup
}

// Cube returns the named subgroup of the 48-element cube group.
func Cube(name string) ([]Transform, error) {
	switch name {
	case "()":
		return closure(), nil
	case "(x)":
		return closure(reflectX), nil
	case "(z)":
		return closure(reflectZ), nil
	case "(xy)":
		return closure(reflectX, zRotate), nil
	case "(xyz+)":
		return closure(zRotate, yRotate), nil
	case "(xyz)":
		return closure(reflectX, zRotate, yRotate), nil
	}

	return nil, ErrUnknownGroup
}

// ReflectX, ZRotate and YRotate expose the three primitive generators
// directly, for callers (rule.Rule.Reflected/ZRotated/YRotated) that want a
// single named transform rather than an enumerated subgroup.
func ReflectX() Transform { return reflectX }
func ZRotate() Transform  { return zRotate }
func YRotate() Transform  { return yRotate }

// FullSquare and FullCube return the complete 8- and 48-element groups —
// the orbits that symmetry="(xy)" (2D) and symmetry="(xyz)" (3D) name —
// exposed directly for callers that already know they want the maximal
// group (rule.Rule.Symmetries goes through Square/Cube by name instead).
func FullSquare() []Transform { g, _ := Square("(xy)"); return g }
func FullCube() []Transform   { g, _ := Cube("(xyz)"); return g }
