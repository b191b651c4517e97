package gridwalk

// Components returns the maximal connected regions of cells whose color is
// in mask, each as a slice of flat cell indices in discovery order.
// Regions join across any two mask colors; a caller wanting same-color
// islands passes a one-bit mask per call.
//
// Complexity: O(W×H×D×d) time, O(W×H×D) memory, d = neighbor count.
func (w *Walker) Components(mask uint64) [][]int {
	g := w.g
	visited := make([]bool, len(g.State))
	var components [][]int

	// Traverse every cell
	for start, c := range g.State {
		if mask>>uint(c)&1 == 0 || visited[start] {
			continue
		}
		// BFS to collect one component
		queue := []int{start}
		visited[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			idx := queue[qi]
			comp = append(comp, idx)
			x0, y0, z0 := w.coords(idx)

			// Explore neighbors still inside the mask
			for _, d := range w.offsets {
				nx, ny, nz := x0+d[0], y0+d[1], z0+d[2]
				if !w.inBounds(nx, ny, nz) {
					continue
				}
				nIdx := g.Index(nx, ny, nz)
				if visited[nIdx] || mask>>uint(g.State[nIdx])&1 == 0 {
					continue
				}
				visited[nIdx] = true
				queue = append(queue, nIdx)
			}
		}

		components = append(components, comp)
	}

	return components
}
