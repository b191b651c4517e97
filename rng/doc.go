// Package rng provides the single deterministic pseudo-random source the
// interpreter is built around: a uniform [0,1) double generator that, given
// identical seeds, produces identical sequences on any platform.
//
// It wraps math/rand behind one small seed-to-stream factory so every
// stochastic decision in a run flows through a single source instead of
// letting call sites construct their own.
package rng
