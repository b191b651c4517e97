// Package convolution implements ConvolutionNode: a one-step-per-activation
// cellular automaton. Every cell's neighborhood is weighted by a named
// kernel (VonNeumann, Moore, NoCorners) and summed per color; a cell's
// rules then fire in order against that per-color sum.
//
// The neighborhood sum is a fixed small accumulation over a constant
// offset table, the same shape as field's BFS neighbor walk, generalized
// from a boolean visited check to a per-color running count.
package convolution
