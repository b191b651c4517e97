package gridwalk

// Distances computes the multi-source BFS distance from every cell whose
// color is in sources to every cell reachable through colors in substrate.
// Source cells sit at distance 0 whether or not their color is also in
// substrate; every other reached cell records its hop count; cells the
// walk never reaches stay Unreachable. seeds reports how many source
// cells were found, the liveness signal essential fields check.
// O(W×H×D×d) time and O(W×H×D) memory, d = neighbor count.
func (w *Walker) Distances(sources, substrate uint64) (dist []int, seeds int) {
	n := len(w.g.State)
	dist = make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}

	// Custom deque implementation, sized for every cell at once.
	capDeque := n + 1
	deque := make([]int, capDeque)
	head, tail := 0, 0

	// Initialize deque with all source cells
	for i, c := range w.g.State {
		if sources>>uint(c)&1 == 0 {
			continue
		}
		dist[i] = 0
		seeds++
		// push front
		head = (head - 1 + capDeque) % capDeque
		deque[head] = i
	}

	for head != tail {
		// pop front
		u := deque[head]
		head = (head + 1) % capDeque
		// Explore neighbors
		x0, y0, z0 := w.coords(u)
		for _, d := range w.offsets {
			nx, ny, nz := x0+d[0], y0+d[1], z0+d[2]
			if !w.inBounds(nx, ny, nz) {
				continue
			}
			v := w.g.Index(nx, ny, nz)
			if dist[v] != Unreachable {
				continue
			}
			if substrate>>uint(w.g.State[v])&1 == 0 {
				continue
			}
			dist[v] = dist[u] + 1
			// push back: every step costs one hop, so no front pushes
			// happen after seeding and the deque drains as a FIFO
			deque[tail] = v
			tail = (tail + 1) % capDeque
		}
	}

	return dist, seeds
}
