package bt

// Node is the capability shared by every tree node. One call to Tick is one
// synchronous evaluation against the given blackboard.
//
// The blackboard is a parameter, not a field: a node always observes
// whatever blackboard its current caller passes, so the same subtree can be
// re-parented across runs without any rebinding step.
type Node interface {
	Tick(bb *Blackboard) Status
}

// behavior is the kind-specific half of a node. Concrete node types
// implement only these two hooks; the shared lifecycle in node.Tick drives
// them.
type behavior interface {
	// init is called once at the start of each fresh attempt, before run.
	init(bb *Blackboard)
	// run performs one tick's worth of the node's own logic.
	run(bb *Blackboard) Status
}

// node carries the lifecycle state shared by every node kind. Concrete
// types embed it and register themselves via bind in their constructor.
//
// The invariant: initialized is true exactly while the node is mid-attempt
// (its last tick returned Running). An attempt begins with one init call
// and ends the moment run returns anything other than Running.
type node struct {
	initialized bool
	self        behavior
}

func (n *node) bind(b behavior) { n.self = b }

// Tick implements Node.
func (n *node) Tick(bb *Blackboard) Status {
	if n.self == nil {
		// Zero-value node with no behavior bound: a malformed tree, never
		// a Failure result.
		panic("bt: node must be constructed with its New function")
	}
	if !n.initialized {
		n.self.init(bb)
		n.initialized = true
	}
	status := n.self.run(bb)
	if status != Running {
		n.initialized = false
	}
	return status
}

// mustNode panics when a constructor receives a nil child. Malformed trees
// are construction-time faults.
func mustNode(what string, child Node) Node {
	if child == nil {
		panic("bt: " + what + " requires a non-nil child")
	}
	return child
}
