// Package branch implements the three branch node variants that drive
// which child node executes on a given interpreter step: MarkovNode (always
// restarts its scan from the first child, Markov's leftmost-matching
// semantics lifted to the node level), SequenceNode (drives its current
// child to exhaustion before advancing), and MapNode (a one-shot grid
// rescale that replaces the interpreter's grid and yields).
//
// Recursive descent is the execution model: a branch's Go calls directly
// into its active child's Go, using the Go call stack itself as the parent
// chain rather than maintaining an explicit frame stack.
package branch
