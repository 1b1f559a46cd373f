package bt

// RunFunc is a leaf behavior. It receives only the shared blackboard, so
// application code can read and write agent state but cannot reach any
// tree-internal bookkeeping. It returns the leaf's status for this tick,
// which the leaf propagates unchanged.
type RunFunc func(bb *Blackboard) Status

// InitFunc is an optional leaf hook run once at the start of each fresh
// attempt, before the first RunFunc call of that attempt.
type InitFunc func(bb *Blackboard)

// Leaf is a childless node wrapping application-supplied callbacks.
type Leaf struct {
	node
	runFn  RunFunc
	initFn InitFunc
}

// NewLeaf returns a leaf that calls run on every tick.
func NewLeaf(run RunFunc) *Leaf {
	return NewLeafInit(nil, run)
}

// NewLeafInit returns a leaf with an init hook. init may be nil.
func NewLeafInit(init InitFunc, run RunFunc) *Leaf {
	if run == nil {
		panic("bt: leaf requires a run callback")
	}
	l := &Leaf{runFn: run, initFn: init}
	l.bind(l)
	return l
}

// NewCondition returns a leaf that evaluates pred each tick, mapping true
// to Success and false to Failure. Conditions never return Running.
func NewCondition(pred func(bb *Blackboard) bool) *Leaf {
	if pred == nil {
		panic("bt: condition requires a predicate")
	}
	return NewLeaf(func(bb *Blackboard) Status {
		if pred(bb) {
			return Success
		}
		return Failure
	})
}

func (l *Leaf) init(bb *Blackboard) {
	if l.initFn != nil {
		l.initFn(bb)
	}
}

func (l *Leaf) run(bb *Blackboard) Status {
	return l.runFn(bb)
}
