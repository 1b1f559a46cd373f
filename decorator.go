package bt

// decorator is the shared shape of single-child wrapper nodes. The child is
// ticked with the decorator's own blackboard argument, so context always
// flows through on every tick.
type decorator struct {
	node
	child Node
}

func (d *decorator) init(*Blackboard) {}

// Inverter swaps its child's Success and Failure; Running passes through.
type Inverter struct {
	decorator
}

// NewInverter returns a decorator inverting child's completion status.
func NewInverter(child Node) *Inverter {
	inv := &Inverter{decorator{child: mustNode("inverter", child)}}
	inv.bind(inv)
	return inv
}

func (inv *Inverter) run(bb *Blackboard) Status {
	switch status := inv.child.Tick(bb); status {
	case Success:
		return Failure
	case Failure:
		return Success
	default:
		return status
	}
}

// Succeeder masks its child's failure: any completed child attempt reports
// Success. Running passes through.
type Succeeder struct {
	decorator
}

// NewSucceeder returns a decorator forcing child completions to Success.
func NewSucceeder(child Node) *Succeeder {
	s := &Succeeder{decorator{child: mustNode("succeeder", child)}}
	s.bind(s)
	return s
}

func (s *Succeeder) run(bb *Blackboard) Status {
	if s.child.Tick(bb) == Running {
		return Running
	}
	return Success
}

// Repeater restarts its child each time it completes. An unlimited repeater
// never completes on its own; a limited one completes after the child's
// limit-th completion, propagating the child's final status.
type Repeater struct {
	decorator
	limited bool
	limit   uint
	count   uint
}

// NewRepeater returns an unlimited repeater: it always reports Running,
// restarting the child after every completion.
func NewRepeater(child Node) *Repeater {
	return newRepeater(child, false, 0)
}

// NewRepeaterTimes returns a repeater that lets the child complete limit
// times, then completes with the child's final status. A limit of zero
// completes immediately with Success without ever ticking the child.
func NewRepeaterTimes(child Node, limit uint) *Repeater {
	return newRepeater(child, true, limit)
}

func newRepeater(child Node, limited bool, limit uint) *Repeater {
	r := &Repeater{decorator: decorator{child: mustNode("repeater", child)}, limited: limited, limit: limit}
	r.bind(r)
	return r
}

// init resets the completion count; it runs once per fresh repeater attempt,
// never between the child restarts within one attempt.
func (r *Repeater) init(*Blackboard) { r.count = 0 }

func (r *Repeater) run(bb *Blackboard) Status {
	if r.limited && r.limit == 0 {
		return Success
	}
	status := r.child.Tick(bb)
	if status == Running {
		return Running
	}
	if r.limited {
		r.count++
		if r.count >= r.limit {
			return status
		}
	}
	// Returning Running keeps this attempt alive; the completed child has
	// already reset itself, so the next tick starts it fresh.
	return Running
}

// RepeatUntilFail restarts its child until the child fails, then reports
// Success. The child's own successes do not end the loop, and the decorator
// itself never reports Failure.
type RepeatUntilFail struct {
	decorator
}

// NewRepeatUntilFail returns a decorator looping child until it fails.
func NewRepeatUntilFail(child Node) *RepeatUntilFail {
	r := &RepeatUntilFail{decorator{child: mustNode("repeat-until-fail", child)}}
	r.bind(r)
	return r
}

func (r *RepeatUntilFail) run(bb *Blackboard) Status {
	if r.child.Tick(bb) == Failure {
		return Success
	}
	return Running
}
