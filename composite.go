package bt

// composite is the shared shape of ordered multi-child nodes: a fixed child
// list in authoring order and a resumable cursor over it. The cursor and
// current child survive across Running ticks and are rewound by init at the
// start of each fresh attempt.
type composite struct {
	node
	children []Node
	cursor   int
	current  Node
}

func newComposite(what string, children []Node) composite {
	for _, child := range children {
		mustNode(what, child)
	}
	return composite{children: children}
}

func (c *composite) init(*Blackboard) { c.rewind() }

func (c *composite) rewind() {
	c.cursor = 0
	c.current = nil
	if len(c.children) > 0 {
		c.current = c.children[0]
	}
}

// advance moves the cursor to the next child in authoring order, or to
// "no child" once the list is exhausted. A further call after exhaustion
// rewinds to the first child; the node lifecycle always resets an attempt
// before that can be observed, so the wrap-around stays latent.
func (c *composite) advance() {
	if c.current == nil {
		c.rewind()
		return
	}
	c.cursor++
	if c.cursor < len(c.children) {
		c.current = c.children[c.cursor]
	} else {
		c.current = nil
	}
}

// Sequence ticks its children in order, one attempt at a time, and succeeds
// only when every child has succeeded. The first child failure fails the
// whole sequence immediately.
type Sequence struct {
	composite
}

// NewSequence returns a sequence over children in the given order. A
// sequence with no children succeeds immediately.
func NewSequence(children ...Node) *Sequence {
	seq := &Sequence{newComposite("sequence", children)}
	seq.bind(seq)
	return seq
}

func (seq *Sequence) run(bb *Blackboard) Status {
	if seq.current == nil {
		return Success
	}
	switch status := seq.current.Tick(bb); status {
	case Running:
		return Running
	case Failure:
		return Failure
	default:
		seq.advance()
		if seq.current == nil {
			return Success
		}
		return Running
	}
}

// Selector ticks its children in order until one succeeds, failing only
// when every child has failed. Also known as a fallback node.
type Selector struct {
	composite
}

// NewSelector returns a selector over children in the given order. A
// selector with no children fails immediately.
func NewSelector(children ...Node) *Selector {
	sel := &Selector{newComposite("selector", children)}
	sel.bind(sel)
	return sel
}

func (sel *Selector) run(bb *Blackboard) Status {
	if sel.current == nil {
		return Failure
	}
	switch status := sel.current.Tick(bb); status {
	case Running:
		return Running
	case Success:
		return Success
	default:
		sel.advance()
		if sel.current == nil {
			return Failure
		}
		return Running
	}
}
