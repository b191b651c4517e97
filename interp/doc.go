// Package interp implements the Interpreter: the root driver that owns the
// current grid, the program's root node, the change log, and the single
// PRNG, and that steps the program to completion one node activation at a
// time.
//
// Run returns a pull-based iterator rather than a channel: the caller
// calls Next once per snapshot it wants and may stop at any point, which
// keeps the driver strictly synchronous and single-threaded (no goroutine
// is ever started to "fill" a channel). Cancellation is caller-driven:
// stop calling Next and nothing is left outstanding.
package interp
