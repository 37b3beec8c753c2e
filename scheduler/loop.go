// Package scheduler provides a cooperative, single-threaded task loop.
//
// Timers fire on their own goroutines but only enqueue work; every callback
// runs on the goroutine that calls Loop.Run, one at a time and to completion.
// A timer therefore never overlaps itself, and callbacks never need locks to
// share state with each other.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"

	errUtils "github.com/germtb/interop/errors"
	"github.com/germtb/interop/logger"
)

// Task is a callback run by the loop.
type Task func() error

// Loop runs tasks serially.
type Loop struct {
	clock       clockwork.Clock
	log         *log.Logger
	stopOnError bool

	queue chan *Handle
	done  chan struct{}
	once  sync.Once

	mu      sync.Mutex
	handles map[*Handle]struct{}
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock sets the clock that drives timers.
func WithClock(c clockwork.Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// WithLogger sets the logger used to report task errors.
func WithLogger(lg *log.Logger) Option {
	return func(l *Loop) {
		l.log = lg
	}
}

// WithStopOnError makes Run return the first task error instead of logging
// it and carrying on.
func WithStopOnError() Option {
	return func(l *Loop) {
		l.stopOnError = true
	}
}

// New creates a Loop. Timers may be registered before Run is called; their
// ticks queue up until the loop starts.
func New(opts ...Option) *Loop {
	l := &Loop{
		clock:   clockwork.NewRealClock(),
		log:     logger.Default(),
		queue:   make(chan *Handle),
		done:    make(chan struct{}),
		handles: make(map[*Handle]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Clock returns the loop's clock.
func (l *Loop) Clock() clockwork.Clock {
	return l.clock
}

// Every runs task every interval until the returned handle is stopped or the
// loop ends. Ticks that come due while the loop is busy are coalesced.
func (l *Loop) Every(interval time.Duration, task Task) (*Handle, error) {
	if interval <= 0 {
		return nil, errors.Wrapf(errUtils.ErrInvalidInterval, "got %s", interval)
	}
	h := l.newHandle(task, false)
	ticker := l.clock.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.Chan():
				if !l.enqueue(h) {
					return
				}
			case <-h.stop:
				return
			case <-l.done:
				return
			}
		}
	}()
	return h, nil
}

// Once runs task a single time on the next turn of the loop.
func (l *Loop) Once(task Task) *Handle {
	h := l.newHandle(task, true)
	go l.enqueue(h)
	return h
}

// Run executes queued tasks until ctx is done. It returns nil when ctx ends,
// or the first task error when the loop was created WithStopOnError.
// Run stops every timer before returning; a Loop cannot be restarted.
func (l *Loop) Run(ctx context.Context) error {
	defer l.shutdown()
	for {
		select {
		case <-ctx.Done():
			return nil
		case h := <-l.queue:
			if err := h.run(); err != nil {
				if l.stopOnError {
					return err
				}
				l.log.Error("task failed", "err", err)
			}
		}
	}
}

// Pending reports how many handles are still live.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handles)
}

func (l *Loop) shutdown() {
	l.once.Do(func() {
		close(l.done)
	})
	l.mu.Lock()
	live := make([]*Handle, 0, len(l.handles))
	for h := range l.handles {
		live = append(live, h)
	}
	l.mu.Unlock()
	for _, h := range live {
		h.Stop()
	}
}

func (l *Loop) newHandle(task Task, once bool) *Handle {
	h := &Handle{loop: l, task: task, once: once, stop: make(chan struct{})}
	l.mu.Lock()
	l.handles[h] = struct{}{}
	l.mu.Unlock()
	return h
}

func (l *Loop) forget(h *Handle) {
	l.mu.Lock()
	delete(l.handles, h)
	l.mu.Unlock()
}

// enqueue hands h to the loop and reports whether the timer should keep going.
func (l *Loop) enqueue(h *Handle) bool {
	select {
	case l.queue <- h:
		return true
	case <-h.stop:
		return false
	case <-l.done:
		return false
	}
}
