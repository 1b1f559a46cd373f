package bt

import (
	"context"
	"log/slog"
	"sync"
)

// AsyncRunFunc is the worker for an AsyncLeaf. It runs on its own goroutine
// and must return Success or Failure; any other value is reported as
// Failure. The context is the one the leaf was constructed with, and the
// blackboard is whichever one the leaf was ticked with when the attempt
// started (Blackboard is safe to use from the worker).
type AsyncRunFunc func(ctx context.Context, bb *Blackboard) Status

// asyncState tracks an AsyncLeaf between ticks.
type asyncState int

const (
	// asyncIdle means the leaf is ready to start a new attempt.
	asyncIdle asyncState = iota
	// asyncRunning means a worker goroutine is in flight.
	asyncRunning
	// asyncCompleted means the worker finished and the result awaits the
	// next tick.
	asyncCompleted
)

// AsyncLeaf runs a leaf behavior off the tick goroutine. The first tick of
// an attempt dispatches the worker and reports Running; subsequent ticks
// poll until the worker finishes, then report its status and reset.
//
// State transitions happen under a mutex, and a generation counter
// invalidates stale workers so a result from a cancelled attempt can never
// corrupt a later one. Cancelling the construction context makes the next
// tick report Failure.
type AsyncLeaf struct {
	node
	ctx context.Context
	fn  AsyncRunFunc

	mu         sync.Mutex
	state      asyncState
	generation uint64
	last       Status
}

// NewAsyncLeaf returns a leaf whose behavior runs on a dedicated goroutine
// per attempt. A nil ctx is treated as context.Background().
func NewAsyncLeaf(ctx context.Context, fn AsyncRunFunc) *AsyncLeaf {
	if fn == nil {
		panic("bt: async leaf requires a run callback")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	a := &AsyncLeaf{ctx: ctx, fn: fn}
	a.bind(a)
	return a
}

func (a *AsyncLeaf) init(*Blackboard) {}

func (a *AsyncLeaf) run(bb *Blackboard) Status {
	a.mu.Lock()
	switch a.state {
	case asyncIdle:
		select {
		case <-a.ctx.Done():
			a.mu.Unlock()
			return Failure
		default:
		}
		a.generation++
		gen := a.generation
		a.state = asyncRunning
		a.mu.Unlock()
		go a.work(gen, bb)
		return Running

	case asyncRunning:
		select {
		case <-a.ctx.Done():
			// Invalidate the in-flight worker before leaving the state, so
			// its eventual result is discarded.
			a.generation++
			a.state = asyncIdle
			a.mu.Unlock()
			return Failure
		default:
		}
		a.mu.Unlock()
		return Running

	case asyncCompleted:
		status := a.last
		a.state = asyncIdle
		a.last = 0
		a.mu.Unlock()
		return status

	default:
		a.mu.Unlock()
		panic("bt: invalid async leaf state")
	}
}

func (a *AsyncLeaf) work(gen uint64, bb *Blackboard) {
	defer func() {
		if r := recover(); r != nil {
			if debugBT {
				slog.Debug("[BT] async leaf panic", "recovered", r)
			}
			a.finalize(gen, Failure)
		}
	}()
	status := a.fn(a.ctx, bb)
	if status != Success && status != Failure {
		status = Failure
	}
	a.finalize(gen, status)
}

// finalize records the worker's result unless the attempt was superseded.
func (a *AsyncLeaf) finalize(gen uint64, status Status) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.generation {
		return
	}
	a.last = status
	a.state = asyncCompleted
}
