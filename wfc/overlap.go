package wfc

import "github.com/markovjunior/mjrun/symmetry"

// BuildOverlap extracts every NxN window of a 2D color sample (periodic
// wrap), expands each by the given symmetry orbit, and returns the
// distinct patterns (by value), their sample-frequency weights, and the
// 4-direction propagator table over them.
//
// agree(p, q, dir) — whether pattern q may be placed at the cell one step
// in direction dir from a cell holding pattern p — is decided by
// comparing the NxN regions the two patterns share once offset by dir;
// this is the overlap constraint the variant is named for.
func BuildOverlap(sample []byte, sw, sh, n int, orbit []symmetry.Transform) (patterns [][]byte, weights []float64, propagator [][][]int, err error) {
	if sw < n || sh < n {
		return nil, nil, nil, ErrSampleTooSmall
	}

	transforms := orbit
	if len(transforms) == 0 {
		transforms, _ = symmetry.Square("()")
	}

	index := map[string]int{}
	for wy := 0; wy < sh; wy++ {
		for wx := 0; wx < sw; wx++ {
			for _, t := range transforms {
				p := extractWindow(sample, sw, sh, wx, wy, n, t)
				key := string(p)
				if i, ok := index[key]; ok {
					weights[i]++
					continue
				}
				index[key] = len(patterns)
				patterns = append(patterns, p)
				weights = append(weights, 1)
			}
		}
	}

	propagator = buildOverlapPropagator(patterns, n)

	return patterns, weights, propagator, nil
}

func extractWindow(sample []byte, sw, sh, wx, wy, n int, t symmetry.Transform) []byte {
	out := make([]byte, n*n)
	i := 0
	for dy := 0; dy < n; dy++ {
		for dx := 0; dx < n; dx++ {
			tx, ty, _ := t.Apply(dx, dy, 0, n, n, 1)
			sx := ((wx+tx)%sw + sw) % sw
			sy := ((wy+ty)%sh + sh) % sh
			out[i] = sample[sy*sw+sx]
			i++
		}
	}

	return out
}

// buildOverlapPropagator tests, for every ordered pattern pair and every
// cardinal direction, whether shifting q by -dir over p leaves their
// overlapping region pixel-identical.
func buildOverlapPropagator(patterns [][]byte, n int) [][][]int {
	propagator := make([][][]int, len(Directions2D))
	for d, dir := range Directions2D {
		propagator[d] = make([][]int, len(patterns))
		for p := range patterns {
			for q := range patterns {
				if overlapAgrees(patterns[p], patterns[q], n, dir) {
					propagator[d][p] = append(propagator[d][p], q)
				}
			}
		}
	}

	return propagator
}

func overlapAgrees(p, q []byte, n int, dir [3]int) bool {
	dx, dy := dir[0], dir[1]
	xmin, xmax := 0, n
	if dx > 0 {
		xmin = dx
	} else if dx < 0 {
		xmax = n + dx
	}
	ymin, ymax := 0, n
	if dy > 0 {
		ymin = dy
	} else if dy < 0 {
		ymax = n + dy
	}

	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			if p[y*n+x] != q[(y-dy)*n+(x-dx)] {
				return false
			}
		}
	}

	return true
}
