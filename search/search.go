package search

import (
	"container/heap"
	"math"

	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/observe"
	"github.com/markovjunior/mjrun/rng"
	"github.com/markovjunior/mjrun/rule"
)

// Run explores successor states from initial against future, returning the
// state trajectory from initial to a goal state (forward potential 0) in
// order, or ok==false if the frontier empties or the state-count limit is
// exhausted first.
func (e *Engine) Run(initial []byte, future []uint64) (trajectory [][]byte, ok bool) {
	bound := e.opts.Limit
	telemetry := bound < 0
	if telemetry {
		bound = -bound
	}

	visited := make(map[string]*node)
	pq := make(nodePQ, 0, 64)
	heap.Init(&pq)

	root, rok := e.score(initial, nil, 0, future)
	if !rok {
		return nil, false
	}
	key := root.key
	visited[string(root.state)] = root
	heap.Push(&pq, &item{n: root, key: key})

	bestSoFar := math.MaxFloat64
	finalized := make(map[*node]bool)

	for pq.Len() > 0 {
		if bound > 0 && len(visited) > bound {
			if e.opts.Logger != nil {
				e.opts.Logger.Printf("%v: %d states", ErrLimitExhausted, len(visited))
			}
			return nil, false
		}

		it := heap.Pop(&pq).(*item)
		n := it.n
		if finalized[n] {
			continue
		}
		if it.key != n.key {
			continue // stale lazy-decrease-key entry
		}
		finalized[n] = true

		if telemetry && e.opts.Logger != nil {
			combined := float64(n.forward + n.backward)
			if combined < bestSoFar {
				bestSoFar = combined
				e.opts.Logger.Printf("search: depth=%d forward=%d backward=%d (new best)", n.depth, n.forward, n.backward)
			}
		}

		if n.forward == 0 {
			return reconstruct(n), true
		}

		for _, succ := range e.successors(n.state) {
			key := string(succ)
			existing, known := visited[key]
			if known {
				if n.depth+1 >= existing.depth {
					continue
				}
				existing.depth = n.depth + 1
				existing.parent = n
				existing.key = priorityKey(existing, e.opts.DepthCoefficient, e.rng)
				heap.Push(&pq, &item{n: existing, key: existing.key})

				continue
			}

			child, cok := e.score(succ, n, n.depth+1, future)
			if !cok {
				continue
			}
			visited[key] = child
			heap.Push(&pq, &item{n: child, key: child.key})
		}
	}

	return nil, false
}

// score computes a node's forward/backward potentials against future and
// its priority key. ok is false when the state is a dead end (either
// potential is unreachable somewhere).
func (e *Engine) score(state []byte, parent *node, depth int, future []uint64) (*node, bool) {
	eg := withState(e.g, state)

	fpot := observe.ForwardPotentials(eg, e.rules)
	forward, fok := observe.ForwardPointwise(fpot, future)
	if !fok {
		return nil, false
	}

	bpot := observe.BackwardPotentials(eg, e.rules, future)
	backward, bok := observe.BackwardPointwise(bpot, state)
	if !bok {
		return nil, false
	}

	n := &node{state: state, parent: parent, depth: depth, forward: forward, backward: backward}
	n.key = priorityKey(n, e.opts.DepthCoefficient, e.rng)

	return n, true
}

func priorityKey(n *node, depthCoefficient float64, source *rng.Source) float64 {
	if depthCoefficient < 0 {
		return float64(1000 - n.depth)
	}

	u := source.Double()

	return float64(n.forward+n.backward) + 2*depthCoefficient*float64(n.depth) + 1e-6*u
}

func reconstruct(n *node) [][]byte {
	var out [][]byte
	for cur := n; cur != nil; cur = cur.parent {
		out = append([][]byte{cur.state}, out...)
	}

	return out
}

// successors generates every successor state reachable from state in one
// node-level step, per the configured Mode.
func (e *Engine) successors(state []byte) [][]byte {
	cands := matchCandidates(e.g, state, e.rules)
	if len(cands) == 0 {
		return nil
	}

	if e.opts.Mode == ModeOne {
		out := make([][]byte, 0, len(cands))
		for _, c := range cands {
			out = append(out, applyCandidate(e.g, state, e.rules[c.r], c))
		}

		return out
	}

	covers := enumerateCovers(e.g, cands)
	out := make([][]byte, 0, len(covers))
	for _, cover := range covers {
		if len(cover) == 0 {
			continue
		}
		clone := append([]byte(nil), state...)
		for _, c := range cover {
			writeOutput(e.g, clone, e.rules[c.r], c.x, c.y, c.z)
		}
		out = append(out, clone)
	}

	return out
}

func withState(g *grid.Grid, state []byte) *grid.Grid {
	return &grid.Grid{MX: g.MX, MY: g.MY, MZ: g.MZ, State: state, Characters: g.Characters, Values: g.Values, Waves: g.Waves}
}

func matchCandidates(g *grid.Grid, state []byte, rules []*rule.Rule) []cand {
	eg := withState(g, state)
	var out []cand
	for ri, r := range rules {
		for z := 0; z+r.IMZ <= g.MZ; z++ {
			for y := 0; y+r.IMY <= g.MY; y++ {
				for x := 0; x+r.IMX <= g.MX; x++ {
					if eg.Matches(r, x, y, z) {
						out = append(out, cand{r: ri, x: x, y: y, z: z, imx: r.IMX, imy: r.IMY, imz: r.IMZ})
					}
				}
			}
		}
	}

	return out
}

func applyCandidate(g *grid.Grid, state []byte, r *rule.Rule, c cand) []byte {
	clone := append([]byte(nil), state...)
	writeOutput(g, clone, r, c.x, c.y, c.z)

	return clone
}

func writeOutput(g *grid.Grid, state []byte, r *rule.Rule, x, y, z int) {
	for dz := 0; dz < r.OMZ; dz++ {
		for dy := 0; dy < r.OMY; dy++ {
			for dx := 0; dx < r.OMX; dx++ {
				c := r.Output[r.OutIndex(dx, dy, dz)]
				if c == rule.Wildcard {
					continue
				}
				state[g.Index(x+dx, y+dy, z+dz)] = c
			}
		}
	}
}
