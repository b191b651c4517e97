package branch

import "github.com/markovjunior/mjrun/node"

// SequenceNode drives its current child repeatedly until it returns false,
// then advances to the next child; once every child is exhausted it resets
// all of them and reports false itself, ready to be reactivated by a
// parent branch.
type SequenceNode struct {
	Children []node.Node
	n        int
}

// Go implements node.Node.
func (s *SequenceNode) Go(ctx *node.Context) bool {
	if stepChildren(ctx, s.Children, &s.n) {
		return true
	}

	s.Reset()

	return false
}

// stepChildren drives the child at *cursor until it exhausts, then
// advances, tracking the active child through ctx.Current. Shared by
// SequenceNode and MapNode's post-rescale phase.
func stepChildren(ctx *node.Context, children []node.Node, cursor *int) bool {
	for *cursor < len(children) {
		prev := ctx.Current
		ctx.Current = children[*cursor]
		ok := children[*cursor].Go(ctx)
		ctx.Current = prev
		if ok {
			return true
		}
		*cursor++
	}

	return false
}

// Reset implements node.Node.
func (s *SequenceNode) Reset() {
	s.n = 0
	for _, c := range s.Children {
		c.Reset()
	}
}

// MarkovNode rescans its children from the first on every Go call, running
// the first one that returns true — Markov's leftmost-matching semantics
// lifted from rule selection to node selection.
type MarkovNode struct {
	Children []node.Node
}

// Go implements node.Node.
func (m *MarkovNode) Go(ctx *node.Context) bool {
	for _, c := range m.Children {
		prev := ctx.Current
		ctx.Current = c
		ok := c.Go(ctx)
		ctx.Current = prev
		if ok {
			return true
		}
	}

	return false
}

// Reset implements node.Node.
func (m *MarkovNode) Reset() {
	for _, c := range m.Children {
		c.Reset()
	}
}
