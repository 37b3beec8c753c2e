// Package updater periodically renders components that display the time
// elapsed since the updater was created.
//
// Each tick reads the clock, rounds the elapsed time to whole seconds, builds
// the props {elapsed, title}, calls the bound component constructor and hands
// the resulting descriptor to the renderer together with the mount ID.
package updater

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"

	"github.com/germtb/interop"
	errUtils "github.com/germtb/interop/errors"
	"github.com/germtb/interop/logger"
	"github.com/germtb/interop/runtime"
	"github.com/germtb/interop/scheduler"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=mock_renderer_test.go -package=updater github.com/germtb/interop/runtime Renderer

// DefaultInterval is the tick cadence used when a Binding leaves Interval unset.
const DefaultInterval = 50 * time.Millisecond

// Prop names passed to bound components.
const (
	PropElapsed = "elapsed"
	PropTitle   = "title"
)

// Binding ties a component constructor to a mount target and a title.
type Binding struct {
	Title     string
	MountID   string
	Component interop.Component
	Interval  time.Duration
}

func (b Binding) interval() time.Duration {
	if b.Interval <= 0 {
		return DefaultInterval
	}
	return b.Interval
}

func (b Binding) validate() error {
	if b.Component == nil {
		return errors.Wrapf(errUtils.ErrInvalidBinding, "binding %q has no component", b.Title)
	}
	if b.MountID == "" {
		return errors.Wrapf(errUtils.ErrInvalidBinding, "binding %q has no mount target", b.Title)
	}
	return nil
}

// Updater schedules ticks for bindings on a scheduler.Loop.
type Updater struct {
	loop     *scheduler.Loop
	renderer runtime.Renderer
	clock    clockwork.Clock
	log      *log.Logger
	start    time.Time
}

// Option configures an Updater.
type Option func(*Updater)

// WithClock overrides the loop's clock as the time source.
func WithClock(c clockwork.Clock) Option {
	return func(u *Updater) {
		u.clock = c
	}
}

// WithLogger sets the logger used for tick and mount events.
func WithLogger(l *log.Logger) Option {
	return func(u *Updater) {
		u.log = l
	}
}

// New creates an Updater. The start timestamp is read from the clock here,
// once, and never changes afterwards.
func New(loop *scheduler.Loop, renderer runtime.Renderer, opts ...Option) *Updater {
	u := &Updater{
		loop:     loop,
		renderer: renderer,
		clock:    loop.Clock(),
		log:      logger.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	u.start = u.clock.Now()
	return u
}

// Start returns the timestamp elapsed time is measured from.
func (u *Updater) Start() time.Time {
	return u.start
}

// ElapsedSeconds converts d to whole seconds, rounding half up at millisecond
// resolution. Negative durations yield 0.
func ElapsedSeconds(d time.Duration) int {
	ms := d.Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int(math.Round(float64(ms) / 1000))
}

// Elapsed returns the whole seconds since the start timestamp.
func (u *Updater) Elapsed() int {
	return ElapsedSeconds(u.clock.Since(u.start))
}

// Props builds the props handed to a bound component.
func (u *Updater) Props(title string) interop.Props {
	return interop.Props{
		PropElapsed: u.Elapsed(),
		PropTitle:   title,
	}
}

// Tick renders b once with the current elapsed time.
func (u *Updater) Tick(b Binding) error {
	props := u.Props(b.Title)
	node := b.Component(props)
	u.log.Log(logger.TraceLevel, "tick", "mount", b.MountID, PropElapsed, props[PropElapsed])
	return u.renderer.Render(node, b.MountID)
}

// Schedule ticks b on its interval until the returned handle is stopped.
func (u *Updater) Schedule(b Binding) (*scheduler.Handle, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	h, err := u.loop.Every(b.interval(), func() error {
		return u.Tick(b)
	})
	if err != nil {
		return nil, err
	}
	u.log.Debug("scheduled", "title", b.Title, "mount", b.MountID, "interval", b.interval())
	return h, nil
}

// MountOnce renders node into mountID a single time on the next loop turn.
func (u *Updater) MountOnce(node interop.VNode, mountID string) *scheduler.Handle {
	return u.loop.Once(func() error {
		return u.renderer.Render(node, mountID)
	})
}
