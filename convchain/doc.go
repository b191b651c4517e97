// Package convchain implements ConvChainNode: Metropolis-Hastings texture
// synthesis over a boolean 2D grid. A sample's NxN pattern statistics
// (expanded by a symmetry orbit) are tabulated into per-pattern weights;
// each step performs one trial flip per grid cell, accepting or rejecting
// it by the ratio of pattern weights the flip would produce across every
// NxN window touching the flipped cell.
//
// The pattern-index bitmask and the symmetry-orbit expansion reuse
// package symmetry's Transform/closure machinery — the same orbit walk
// rule.Rule.Symmetries drives over rule patterns, applied here to sample
// windows instead.
package convchain
