// Package wfc implements WFCNode: Wave Function Collapse over a pattern
// set built either from a 2D overlap sample or a symbolic tile library.
// A wave (a per-cell set of still-possible patterns) is narrowed by
// picking the lowest-entropy undetermined cell, collapsing it to one
// weighted-random pattern, and propagating the resulting adjacency
// constraints outward until the wave stabilizes, every cell collapses,
// or a contradiction aborts the node.
//
// The propagation worklist is the same queue-and-seen walk package
// symmetry uses for its orbit closure, applied here to cells whose
// allowed-pattern set just shrank instead of group elements newly
// reached.
package wfc
