// Package search implements the A*-style best-first trajectory search a
// RuleNode falls back to when an observation declares search=true: starting
// from the present grid, explore successor states by rule application,
// scored by forward+backward potential lower bounds, until a state with
// forward potential 0 (the goal) is popped.
//
// The priority queue is a lazy-decrease-key min-heap: a new entry is
// pushed on every improvement and stale pops are skipped by checking a
// finalized set, instead of fixing heap positions in place. Visited
// states are deduplicated by a byte-wise key into a map.
package search
