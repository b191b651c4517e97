package interp

import (
	"github.com/markovjunior/mjrun/grid"
	"github.com/markovjunior/mjrun/node"
	"github.com/markovjunior/mjrun/resource"
	"github.com/markovjunior/mjrun/rng"
)

// Interpreter is the AST root driver: it owns the program's root
// node and, for the duration of one Run, the grid, the single PRNG and the
// change log a fresh Context bundles together. An Interpreter is reusable
// across many Run calls (e.g. the same program run with several seeds);
// each Run gets its own Context and Root.Reset call so no state leaks
// between runs.
type Interpreter struct {
	// Root is the program's outermost node — ordinarily a branch (Markov
	// or Sequence) but any Node is legal as a degenerate one-node program.
	Root node.Node

	// Origin marks the grid's <grid origin="true"/> attribute: the center
	// cell is seeded with the alphabet's second character instead of the
	// zero color before the run begins.
	Origin bool

	// Logger is the diagnostics sink handed to the host. New sets it to
	// resource.DefaultLogger(); Run neither reads it nor fills it in when
	// nil.
	Logger resource.Logger
}

// New returns an Interpreter driving root, with a default stderr Logger.
func New(root node.Node) *Interpreter {
	return &Interpreter{Root: root, Logger: resource.DefaultLogger()}
}

// Run begins one execution of the program over g and returns a pull-based
// Runner: the caller calls Next once per snapshot it wants and may simply
// stop calling to cancel, with no background work left outstanding.
// seed derives the run's single rng.Source; maxSteps<=0
// means unlimited (mirrors RuleNode.Steps' own "0 = unlimited" contract);
// streaming requests a snapshot after every step in addition to the final
// one that is always yielded.
//
// Returns ErrNoRoot if no Root node has been set.
func (ip *Interpreter) Run(g *grid.Grid, seed int64, maxSteps int, streaming bool) (*Runner, error) {
	if ip.Root == nil {
		return nil, ErrNoRoot
	}
	if ip.Origin {
		PlaceOrigin(g)
	}

	ip.Root.Reset()

	return &Runner{
		root:      ip.Root,
		ctx:       node.NewContext(g, rng.New(seed)),
		maxSteps:  maxSteps,
		streaming: streaming,
	}, nil
}

// PlaceOrigin seeds the grid's single center cell with the alphabet's
// second character (index 1), the marker-at-center convention of
// origin-flagged models. Callers whose marker is not the alphabet's
// second character should seed the cell directly instead of setting
// Origin. A grid with a single-character alphabet has nothing to mark and
// is left untouched.
func PlaceOrigin(g *grid.Grid) {
	if len(g.Characters) < 2 {
		return
	}
	cx, cy, cz := g.MX/2, g.MY/2, g.MZ/2
	g.State[g.Index(cx, cy, cz)] = 1
}

// Runner drives one Interpreter.Run to completion, one Next call per
// yielded Snapshot. It is not safe for concurrent use: the interpreter is
// strictly single-threaded.
type Runner struct {
	root      node.Node
	ctx       *node.Context
	maxSteps  int
	streaming bool

	steps   int
	started bool
	done    bool
}

// Next advances the program by zero or more steps and returns the next
// snapshot to yield, or ok==false once every snapshot has already been
// returned. The first call yields the initial grid state when streaming is
// set (the program has not executed yet); every subsequent call runs
// Root.Go once per yielded step (or until Root reports false / the step
// cap is hit) and returns the resulting state. The final call — when
// Root.Go returns false, or the step cap is reached — is always yielded
// regardless of streaming.
func (r *Runner) Next() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	if !r.started {
		r.started = true
		if r.streaming {
			return r.snapshot(), true
		}
	}

	for {
		if r.maxSteps > 0 && r.steps >= r.maxSteps {
			r.done = true
			return r.snapshot(), true
		}

		ok := r.root.Go(r.ctx)
		r.steps++

		if !ok {
			r.done = true
			return r.snapshot(), true
		}
		if r.streaming {
			return r.snapshot(), true
		}
	}
}

// Grid returns the run's current grid — the program's original grid until
// a map node replaces it, after which this reflects the replacement.
func (r *Runner) Grid() *grid.Grid {
	return r.ctx.Grid
}

// Steps reports how many times Root.Go has been called so far this run.
func (r *Runner) Steps() int {
	return r.steps
}

func (r *Runner) snapshot() Snapshot {
	g := r.ctx.Grid

	return Snapshot{
		State:      append([]byte(nil), g.State...),
		Characters: append([]byte(nil), g.Characters...),
		MX:         g.MX,
		MY:         g.MY,
		MZ:         g.MZ,
	}
}

// Collect runs r to completion and returns every yielded snapshot in
// order. Intended for tests and small end-to-end scenarios rather than
// production driving, where Next's pull shape avoids buffering the whole
// run in memory.
func Collect(r *Runner) []Snapshot {
	var out []Snapshot
	for {
		snap, ok := r.Next()
		if !ok {
			return out
		}
		out = append(out, snap)
	}
}
