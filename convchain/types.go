package convchain

import "errors"

// ErrSampleTooSmall indicates a sample smaller than the pattern size N in
// either dimension (periodic wrap still needs at least one full window).
var ErrSampleTooSmall = errors.New("convchain: sample must be at least NxN")

// ErrBadTemperature indicates a non-positive temperature.
var ErrBadTemperature = errors.New("convchain: temperature must be > 0")

// weights maps a pattern index (an N*N-bit number, one bit per cell, raster
// order) to the tabulated count from the sample's symmetry orbit. A pattern
// absent from the map is treated as weight 0.1, matching "replacing zero
// counts with 0.1" without needing to enumerate all 2^(N*N) indices up front.
type weights map[uint64]float64

func (w weights) of(idx uint64) float64 {
	if v, ok := w[idx]; ok {
		return v
	}

	return 0.1
}
