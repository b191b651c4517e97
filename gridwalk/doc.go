// Package gridwalk treats a grid.Grid as an implicit graph over its cells:
// a precomputed neighbor-offset table plus a bounds check turn the flat
// State array into adjacency without ever materializing vertices or edges.
//
// Distances is the multi-source BFS distance fields and path drawing are
// built on: seed every cell whose color is in one bitmask, relax through
// every neighbor whose color is in another. Components groups the maximal
// connected regions of a color set, which connectivity checks over
// finished grids consume.
package gridwalk
