package rule

import "strings"

// box is a parsed rectangular pattern: bx*by*bz characters in row-major
// (x fastest, then y, then z) order.
type box struct {
	bx, by, bz int
	cells      []byte
}

// parsePattern parses the pattern grammar: characters within a row have no
// delimiter, rows within a layer are separated by '/', and layers are
// separated by a space. Every row must have equal length and every layer
// must have equal row count, or ErrNonRectangular is returned.
func parsePattern(s string) (box, error) {
	if len(s) == 0 {
		return box{}, ErrEmptyPattern
	}

	layers := strings.Split(s, " ")
	var bx, by int
	bz := len(layers)
	cells := make([]byte, 0, len(s))

	for li, layer := range layers {
		rows := strings.Split(layer, "/")
		if li == 0 {
			by = len(rows)
			if len(rows[0]) == 0 {
				return box{}, ErrEmptyPattern
			}
			bx = len(rows[0])
		}
		if len(rows) != by {
			return box{}, ErrNonRectangular
		}
		for _, row := range rows {
			if len(row) != bx {
				return box{}, ErrNonRectangular
			}
		}
		for y := 0; y < by; y++ {
			for x := 0; x < bx; x++ {
				cells = append(cells, rows[y][x])
			}
		}
	}

	return box{bx: bx, by: by, bz: bz, cells: cells}, nil
}
