package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markovjunior/mjrun/symmetry"
)

func TestSquareGroupSizes(t *testing.T) {
	cases := map[string]int{
		"()":     1,
		"(x)":    2,
		"(y)":    2,
		"(x)(y)": 4,
		"(xy+)":  4,
		"(xy)":   8,
	}
	for name, want := range cases {
		got, err := symmetry.Square(name)
		require.NoError(t, err, "Square(%q)", name)
		assert.Lenf(t, got, want, "Square(%q)", name)
	}
}

func TestCubeGroupSizes(t *testing.T) {
	cases := map[string]int{
		"()":     1,
		"(x)":    2,
		"(z)":    2,
		"(xy)":   8,
		"(xyz+)": 24,
		"(xyz)":  48,
	}
	for name, want := range cases {
		got, err := symmetry.Cube(name)
		require.NoError(t, err, "Cube(%q)", name)
		assert.Lenf(t, got, want, "Cube(%q)", name)
	}
}

func TestUnknownGroup(t *testing.T) {
	_, err := symmetry.Square("(nope)")
	assert.ErrorIs(t, err, symmetry.ErrUnknownGroup)

	_, err = symmetry.Cube("(nope)")
	assert.ErrorIs(t, err, symmetry.ErrUnknownGroup)
}

func TestReflectedTwiceIsIdentity(t *testing.T) {
	full := symmetry.FullSquare()
	// Identity must come first, and reflecting a coordinate twice through
	// the same dims must return it unchanged.
	tr := full[0]
	x, y, z := tr.Apply(1, 2, 0, 3, 4, 1)
	assert.Equal(t, [3]int{1, 2, 0}, [3]int{x, y, z}, "identity transform altered coordinates")

	rx := symmetry.ReflectX()
	x, y, z = rx.Apply(0, 2, 0, 3, 4, 1)
	x, y, z = rx.Apply(x, y, z, 3, 4, 1)
	assert.Equal(t, [3]int{0, 2, 0}, [3]int{x, y, z}, "reflecting twice did not restore the coordinate")
}
