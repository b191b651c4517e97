// Package field computes BFS distance fields over a grid.Grid: the multi-
// source shortest-path potential each rule-application candidate is scored
// against.
//
// A Field keeps a persistent per-cell distance array seeded from every
// cell whose color is in Zero and relaxed through every neighbor whose
// color is in Substrate — gridwalk's multi-source BFS over the grid's
// orthogonal adjacency, recomputed whenever the grid changes (Recompute)
// instead of once per call.
package field
