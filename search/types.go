package search

import (
	"errors"

	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/resource"
	"github.com/markovjunior/mjrun/rng"
	"github.com/markovjunior/mjrun/rule"
)

// ErrLimitExhausted indicates the search created more states than its
// configured database bound without reaching the goal.
var ErrLimitExhausted = errors.New("search: state limit exhausted before goal reached")

// Mode selects successor generation.
type Mode int

const (
	// ModeOne generates one successor per matching (rule, position) pair.
	ModeOne Mode = iota
	// ModeAll generates one successor per maximal non-overlapping cover of
	// the matching candidate set.
	ModeAll
)

// Options configures one search run.
type Options struct {
	Mode             Mode
	DepthCoefficient float64
	Limit            int // 0 = unlimited; negative = bound is |Limit|, telemetry on
	Logger           resource.Logger
}

// node is one explored board state.
type node struct {
	state    []byte
	parent   *node
	depth    int
	backward int
	forward  int
	key      float64
}

// Engine runs the search over a fixed grid template (dims + alphabet) and
// rule set.
type Engine struct {
	g     *grid.Grid
	rules []*rule.Rule
	opts  Options
	rng   *rng.Source
}

// New builds a search Engine. g supplies dimensions and alphabet only; its
// State is not read.
func New(g *grid.Grid, rules []*rule.Rule, opts Options, source *rng.Source) *Engine {
	return &Engine{g: g, rules: rules, opts: opts, rng: source}
}
