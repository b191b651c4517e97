package wfc

import "errors"

// ErrContradiction indicates the wave collapsed a cell to zero remaining
// patterns; the node aborts without rewriting the rest of the grid.
var ErrContradiction = errors.New("wfc: contradiction during propagation")

// ErrSampleTooSmall mirrors convchain's guard: an overlap sample must be
// at least NxN to extract one full pattern window.
var ErrSampleTooSmall = errors.New("wfc: sample must be at least NxN")

// NeighborRule declares, for the tile variant, that tile Right may sit at
// offset Direction from tile Left (both already resolved to rotation
// variants by the caller — the XML-level symbolic rotation index is an
// external-loader concern, not this package's).
type NeighborRule struct {
	Left, Right string
	Direction   [3]int
}

// Tile is one named 3D cube of colors, tileSize^3 cells, row-major
// (x fastest, then y, then z).
type Tile struct {
	Name   string
	Colors []byte
	Weight float64
}

// Directions2D is the classic 4-direction overlap propagator axis set.
var Directions2D = [][3]int{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}}

// Directions3D is the 6-direction tile propagator axis set.
var Directions3D = [][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}
