package wfc

// BuildTile turns a named cube library and a set of symbolic adjacency
// rules into a pattern list (one pattern per tile, in input order), a
// weight list, and the 6-direction propagator table. A NeighborRule
// grants both the stated direction and, implicitly, its reverse.
func BuildTile(tiles []Tile, rules []NeighborRule) (patterns [][]byte, weights []float64, propagator [][][]int, names []string) {
	byName := make(map[string]int, len(tiles))
	for i, t := range tiles {
		patterns = append(patterns, t.Colors)
		weights = append(weights, t.Weight)
		names = append(names, t.Name)
		byName[t.Name] = i
	}

	propagator = make([][][]int, len(Directions3D))
	for d := range Directions3D {
		propagator[d] = make([][]int, len(patterns))
	}

	dirIndex := func(d [3]int) int {
		for i, v := range Directions3D {
			if v == d {
				return i
			}
		}
		return -1
	}

	allow := func(from, to string, d [3]int) {
		di := dirIndex(d)
		if di < 0 {
			return
		}
		pi, ok1 := byName[from]
		qi, ok2 := byName[to]
		if !ok1 || !ok2 {
			return
		}
		propagator[di][pi] = appendUnique(propagator[di][pi], qi)
	}

	for _, r := range rules {
		rev := [3]int{-r.Direction[0], -r.Direction[1], -r.Direction[2]}
		allow(r.Left, r.Right, r.Direction)
		allow(r.Right, r.Left, rev)
	}

	return patterns, weights, propagator, names
}

func appendUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}

	return append(s, v)
}
