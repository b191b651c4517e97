// Package node defines the AST contract every program node implements
// (Node), the mutable context passed into every call instead of a global
// (Context), and the append-only change log the incremental matcher relies
// on (ChangeLog).
//
// Go's garbage collector has no trouble with a cyclic parent/child
// object graph, so the tree is built from ordinary struct pointers and
// interfaces rather than an arena of integer ids. The recursive-descent
// shape the branch package uses (a branch's Go calls straight into its
// active child's Go) keeps the call stack as the parent chain for free,
// and Context.Current tracks the deepest node presently executing for any
// caller that wants to inspect it mid-run.
package node
