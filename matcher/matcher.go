package matcher

import (
	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/rule"
)

// Candidate is one pending rule application: rule index R with its input
// box's corner at (X,Y,Z).
type Candidate struct {
	R       int
	X, Y, Z int
}

// Matcher holds the flat candidate pool and the per-rule, per-cell mask
// that deduplicates origins for one RuleNode's rule set.
type Matcher struct {
	g     *grid.Grid
	rules []*rule.Rule

	Candidates []Candidate
	mask       [][]bool // mask[r][cellIndex]
}

// New allocates a Matcher for g over rules. The mask is sized
// len(rules) x len(g.State) up front; FullScan or Incremental must run
// before Candidates is meaningful.
func New(g *grid.Grid, rules []*rule.Rule) *Matcher {
	mask := make([][]bool, len(rules))
	for i := range mask {
		mask[i] = make([]bool, len(g.State))
	}

	return &Matcher{g: g, rules: rules, mask: mask}
}

// FullScan populates Candidates by treating every current cell as if it
// had just changed to its present color — the bootstrap scan run once
// before a RuleNode's first step.
func (m *Matcher) FullScan() {
	for i, c := range m.g.State {
		m.scanCell(i, c)
	}
}

// Incremental rescans only the cells named by changed (flat grid indices),
// the change-log-driven path every step after the first takes.
func (m *Matcher) Incremental(changed []int) {
	for _, i := range changed {
		m.scanCell(i, m.g.State[i])
	}
}

// scanCell is the shared primitive: for the cell at flat index i now
// holding color, every rule's IShifts[color] gives the relative offsets at
// which that color could newly complete a match; the candidate origin is
// the cell position minus that offset.
func (m *Matcher) scanCell(i int, color byte) {
	x, y, z := m.coords(i)
	for ri, r := range m.rules {
		for _, s := range r.IShifts[color] {
			ox, oy, oz := x-s.DX, y-s.DY, z-s.DZ
			if !m.g.InBounds(ox, oy, oz, r.IMX, r.IMY, r.IMZ) {
				continue
			}
			oidx := m.g.Index(ox, oy, oz)
			if m.mask[ri][oidx] {
				continue
			}
			if m.g.Matches(r, ox, oy, oz) {
				m.add(ri, ox, oy, oz, oidx)
			}
		}
	}
}

func (m *Matcher) add(r, x, y, z, cellIdx int) {
	m.mask[r][cellIdx] = true
	m.Candidates = append(m.Candidates, Candidate{R: r, X: x, Y: y, Z: z})
}

func (m *Matcher) coords(i int) (int, int, int) {
	z := i / (m.g.MX * m.g.MY)
	rem := i % (m.g.MX * m.g.MY)
	y := rem / m.g.MX
	x := rem % m.g.MX

	return x, y, z
}

// RemoveAt evicts the candidate at Candidates[idx] by swapping it with the
// last element and truncating, clearing its mask bit so the origin can be
// rediscovered later. OneNode calls this after applying its chosen
// candidate and for each stale candidate it meets; AllNode and
// ParallelNode skip stale candidates and Reset the pool instead.
func (m *Matcher) RemoveAt(idx int) {
	c := m.Candidates[idx]
	cellIdx := m.g.Index(c.X, c.Y, c.Z)
	m.mask[c.R][cellIdx] = false

	last := len(m.Candidates) - 1
	m.Candidates[idx] = m.Candidates[last]
	m.Candidates = m.Candidates[:last]
}

// IsStale reports whether a candidate no longer matches the grid — checked
// at consumption time since an earlier application in the same step may
// have invalidated it without yet being rescanned out of the pool.
func (m *Matcher) IsStale(c Candidate) bool {
	return !m.g.Matches(m.rules[c.R], c.X, c.Y, c.Z)
}

// Len reports the number of pending candidates.
func (m *Matcher) Len() int { return len(m.Candidates) }

// Reset clears every candidate and mask bit. AllNode and ParallelNode call
// it at the end of every step, so their next step sees only candidates
// rediscovered by the incremental rescan.
func (m *Matcher) Reset() {
	m.Candidates = m.Candidates[:0]
	for i := range m.mask {
		for j := range m.mask[i] {
			m.mask[i][j] = false
		}
	}
}
