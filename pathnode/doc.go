// Package pathnode implements PathNode: drawing a path from a "finish"
// region to the nearest (or farthest) "start" cell, by multi-source BFS
// outward from the finish cells followed by greedy gradient descent back
// toward them.
//
// The BFS is gridwalk's multi-source distance walk — the same one field
// runs — seeded at the finish cells and relaxed through start-or-substrate
// cells, with the walker's edge/vertex diagonal options selecting the
// neighborhood; the gradient descent reuses the walker's offset table and
// adds an inertia tie-break.
package pathnode
