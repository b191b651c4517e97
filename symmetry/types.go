package symmetry

import "errors"

// ErrUnknownGroup indicates a subgroup name outside the fixed vocabulary
// for 2D ({(), (x), (y), (x)(y), (xy+), (xy)}) or 3D
// ({(), (x), (z), (xy), (xyz+), (xyz)}).
var ErrUnknownGroup = errors.New("symmetry: unknown subgroup name")

// Transform maps a coordinate within a box of size (mx,my,mz) to its image
// under one symmetry element, and gives the resulting box size (rotations
// swap axes, so image dimensions can differ from the source).
type Transform struct {
	// Apply maps (x,y,z) in a box (mx,my,mz) to the transformed coordinate.
	Apply func(x, y, z, mx, my, mz int) (int, int, int)
	// Dims maps the source box size to the transformed box size.
	Dims func(mx, my, mz int) (int, int, int)
}

// identity is the neutral element of every group.
var identity = Transform{
	Apply: func(x, y, z, mx, my, mz int) (int, int, int) { return x, y, z },
	Dims:  func(mx, my, mz int) (int, int, int) { return mx, my, mz },
}

// reflectX mirrors the x axis: a generator of both the square and cube groups.
var reflectX = Transform{
	Apply: func(x, y, z, mx, my, mz int) (int, int, int) { return mx - 1 - x, y, z },
	Dims:  func(mx, my, mz int) (int, int, int) { return mx, my, mz },
}

// zRotate rotates 90 degrees about the z axis (the 2D rotation generator).
var zRotate = Transform{
	Apply: func(x, y, z, mx, my, mz int) (int, int, int) { return my - 1 - y, x, z },
	Dims:  func(mx, my, mz int) (int, int, int) { return my, mx, mz },
}

// yRotate rotates 90 degrees about the y axis (the extra 3D generator).
var yRotate = Transform{
	Apply: func(x, y, z, mx, my, mz int) (int, int, int) { return mz - 1 - z, y, x },
	Dims:  func(mx, my, mz int) (int, int, int) { return mz, my, mx },
}

// compose returns the transform "apply a, then apply b to the result".
func compose(a, b Transform) Transform {
	return Transform{
		Apply: func(x, y, z, mx, my, mz int) (int, int, int) {
			ax, ay, az := a.Apply(x, y, z, mx, my, mz)
			amx, amy, amz := a.Dims(mx, my, mz)
			return b.Apply(ax, ay, az, amx, amy, amz)
		},
		Dims: func(mx, my, mz int) (int, int, int) {
			amx, amy, amz := a.Dims(mx, my, mz)
			return b.Dims(amx, amy, amz)
		},
	}
}
