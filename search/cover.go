package search

import "github.com/markovjunior/mjrun/grid"

// cand is one matching (rule, origin) pair with its input box's size
// cached alongside, so overlap and coverage tests never touch rule.Rule
// directly.
type cand struct {
	r             int
	x, y, z       int
	imx, imy, imz int
}

// overlap reports whether a's and b's input boxes intersect.
func overlap(a, b cand) bool {
	return a.x < b.x+b.imx && b.x < a.x+a.imx &&
		a.y < b.y+b.imy && b.y < a.y+a.imy &&
		a.z < b.z+b.imz && b.z < a.z+a.imz
}

// enumerateCovers finds every maximal non-overlapping set of candidates by
// repeatedly choosing the cell covered by the most remaining candidates,
// branching over every candidate that covers it, and discarding candidates
// that overlap the chosen one before recursing. This is a direct,
// unoptimized branch-and-bound enumeration: it does not guarantee a
// minimum number of covers or a minimal-cardinality cover, only that every
// returned set is maximal (no further candidate could be added without
// overlap).
func enumerateCovers(g *grid.Grid, cands []cand) [][]cand {
	if len(cands) == 0 {
		return [][]cand{{}}
	}

	n := g.MX * g.MY * g.MZ
	counts := make([]int, n)
	for _, c := range cands {
		for dz := 0; dz < c.imz; dz++ {
			for dy := 0; dy < c.imy; dy++ {
				for dx := 0; dx < c.imx; dx++ {
					counts[g.Index(c.x+dx, c.y+dy, c.z+dz)]++
				}
			}
		}
	}

	bestCell, bestCount := -1, 0
	for idx, cnt := range counts {
		if cnt > bestCount {
			bestCell, bestCount = idx, cnt
		}
	}

	var covers [][]cand
	for _, c := range cands {
		if !candidateCoversCell(g, c, bestCell) {
			continue
		}

		remaining := make([]cand, 0, len(cands))
		for _, other := range cands {
			if !overlap(c, other) {
				remaining = append(remaining, other)
			}
		}

		for _, sub := range enumerateCovers(g, remaining) {
			cover := make([]cand, 0, len(sub)+1)
			cover = append(cover, c)
			cover = append(cover, sub...)
			covers = append(covers, cover)
		}
	}

	return covers
}

func candidateCoversCell(g *grid.Grid, c cand, cellIdx int) bool {
	for dz := 0; dz < c.imz; dz++ {
		for dy := 0; dy < c.imy; dy++ {
			for dx := 0; dx < c.imx; dx++ {
				if g.Index(c.x+dx, c.y+dy, c.z+dz) == cellIdx {
					return true
				}
			}
		}
	}

	return false
}
