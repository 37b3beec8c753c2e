package scheduler

import (
	"sync"
	"sync/atomic"
)

// Handle controls a task registered with a Loop.
type Handle struct {
	loop *Loop
	task Task
	once bool

	stop     chan struct{}
	stopOnce sync.Once
	fired    atomic.Int64
}

// Stop cancels future runs of the task. It is safe to call more than once
// and from any goroutine. A run already in progress completes.
func (h *Handle) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
		h.loop.forget(h)
	})
}

// Stopped reports whether the handle was stopped or, for a one-shot task,
// has already run.
func (h *Handle) Stopped() bool {
	select {
	case <-h.stop:
		return true
	default:
		return false
	}
}

// Fired returns how many times the task has run.
func (h *Handle) Fired() int {
	return int(h.fired.Load())
}

// run executes the task on the loop goroutine.
func (h *Handle) run() error {
	if h.Stopped() {
		return nil
	}
	if h.once {
		h.Stop()
	}
	h.fired.Add(1)
	return h.task()
}
