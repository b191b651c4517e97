// Package rulenode implements the three RuleNode variants — OneNode,
// AllNode, ParallelNode — on top of a shared Base that owns the rule set,
// the incremental matcher, any potential Fields, and optional inference
// (observations, and a cached search.Engine trajectory).
//
// Base.prepare is the per-activation entry point every variant calls
// first: it feeds the matcher either a full scan (first activation) or an
// incremental rescan of the change log's tail (every activation after),
// refreshes any recompute-on-every-step Field, and on first activation
// only, turns declared observations into a future goal and either runs a
// search.Engine for a cached trajectory or precomputes backward
// potentials for scoring. A single embedded struct holds all mutable
// algorithm state in unexported fields behind a small set of methods, generalized from
// one pass over a graph to many independent activations over a grid.
package rulenode
