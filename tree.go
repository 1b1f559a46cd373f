package bt

import (
	"log/slog"

	"github.com/google/uuid"
)

// Tree is the root handle of a behavior tree. Used top-level, it owns a
// persistent Blackboard created once at construction; agent memory survives
// across Run calls for the tree's whole lifetime.
//
// A Tree also implements Node, so it can be placed as a child inside
// another tree to compose large behaviors from subtrees. When embedded that
// way the parent ticks it like any other node, and the subtree forwards the
// parent's blackboard to its own child instead of substituting its own.
type Tree struct {
	id    string
	child Node
	bb    *Blackboard
}

// NewTree returns a tree rooted at child, with a fresh owned Blackboard.
func NewTree(child Node) *Tree {
	return &Tree{
		id:    uuid.NewString(),
		child: mustNode("tree", child),
		bb:    new(Blackboard),
	}
}

// ID returns the tree's instance identifier, used to correlate debug logs.
func (t *Tree) ID() string { return t.id }

// Blackboard returns the tree's owned blackboard, so the host application
// can seed or inspect agent state between control steps.
func (t *Tree) Blackboard() *Blackboard { return t.bb }

// Run performs one top-level tick against the tree's own blackboard.
func (t *Tree) Run() Status {
	status := t.child.Tick(t.bb)
	if debugBT {
		slog.Debug("[BT] run", "tree", t.id, "status", status)
	}
	return status
}

// Tick implements Node for embedded-subtree use: the caller's blackboard is
// forwarded to the child, never the tree's own.
func (t *Tree) Tick(bb *Blackboard) Status {
	return t.child.Tick(bb)
}
