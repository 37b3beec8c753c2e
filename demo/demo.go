// Package demo assembles the interop demo: it publishes the Go-side elapser
// under a global name and as a module export, resolves every configured timer
// through its configured path, and schedules the timers plus the greeting.
package demo

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"

	"github.com/germtb/interop"
	"github.com/germtb/interop/config"
	"github.com/germtb/interop/dom"
	"github.com/germtb/interop/examples"
	"github.com/germtb/interop/registry"
	"github.com/germtb/interop/runtime"
	"github.com/germtb/interop/scheduler"
	"github.com/germtb/interop/updater"
)

// Names under which the Go-side elapser is published.
const (
	GlobalName  = "ElapserGlobal"
	ModulePath  = "./interop"
	ExportName  = "Elapser"
	InteropName = "Interop"
)

// App is a fully wired demo, ready to Run.
type App struct {
	Config   config.Config
	Document *dom.Document
	Root     *runtime.Root
	Loop     *scheduler.Loop
	Updater  *updater.Updater
	Scope    *registry.Scope
	Modules  *registry.Modules
	Bindings []updater.Binding

	log *log.Logger
}

// Options carries the collaborators New does not build itself.
type Options struct {
	Logger   *log.Logger
	Clock    clockwork.Clock
	Observer dom.Observer
}

// New builds the demo described by cfg. Resolution failures are returned
// immediately; nothing is scheduled until Start.
func New(cfg config.Config, opts Options) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	doc, err := newDocument(cfg, opts.Observer)
	if err != nil {
		return nil, err
	}

	scope := registry.NewScope()
	modules := registry.NewModules()
	if _, err := Publish(scope, modules); err != nil {
		return nil, err
	}

	bindings := make([]updater.Binding, 0, len(cfg.Timers))
	for _, t := range cfg.Timers {
		c, err := ResolverFor(t, scope, modules).Resolve()
		if err != nil {
			return nil, errors.Wrapf(err, "timer %q", t.Title)
		}
		bindings = append(bindings, updater.Binding{
			Title:     t.Title,
			MountID:   t.Mount,
			Component: c,
			Interval:  cfg.Interval,
		})
	}

	root := runtime.NewRoot(doc, runtime.WithLogger(opts.Logger))
	loop := scheduler.New(scheduler.WithClock(opts.Clock), scheduler.WithLogger(opts.Logger))
	return &App{
		Config:   cfg,
		Document: doc,
		Root:     root,
		Loop:     loop,
		Updater:  updater.New(loop, root, updater.WithLogger(opts.Logger)),
		Scope:    scope,
		Modules:  modules,
		Bindings: bindings,
		log:      opts.Logger,
	}, nil
}

func newDocument(cfg config.Config, observer dom.Observer) (*dom.Document, error) {
	var domOpts []dom.Option
	if observer != nil {
		domOpts = append(domOpts, dom.WithObserver(observer))
	}
	if cfg.Page == "" {
		return dom.NewPage(cfg.PageTitle, cfg.MountIDs(), domOpts...)
	}
	f, err := os.Open(cfg.Page)
	if err != nil {
		return nil, errors.Wrap(err, "open page")
	}
	defer f.Close()
	return dom.Parse(f, domOpts...)
}

// Publish registers a fresh Go-side elapser both as a global and as a module
// export. Each path gets its own instance so their update state stays apart.
// The Interop composite is published as a global that renders the required
// elapser next to the Go-side counter.
func Publish(scope *registry.Scope, modules *registry.Modules) ([]interop.Component, error) {
	global, err := registry.Register(examples.NewElapser(), registry.AsGlobal(scope, GlobalName))
	if err != nil {
		return nil, err
	}
	exported, err := registry.Register(examples.NewElapser(), registry.AsExport(modules, ModulePath, ExportName))
	if err != nil {
		return nil, err
	}
	composite, err := registry.Register(examples.Interop(exported), registry.AsGlobal(scope, InteropName))
	if err != nil {
		return nil, err
	}
	return []interop.Component{global, exported, composite}, nil
}

// ResolverFor picks the lookup path a timer is configured with.
func ResolverFor(t config.Timer, scope *registry.Scope, modules *registry.Modules) registry.Resolver {
	if t.Source == config.SourceModule {
		return registry.FromModule(modules, t.Module, t.Name)
	}
	return registry.FromGlobal(scope, t.Name)
}

// Start schedules every timer and the one-shot greeting.
func (a *App) Start() ([]*scheduler.Handle, error) {
	handles := make([]*scheduler.Handle, 0, len(a.Bindings)+1)
	for _, b := range a.Bindings {
		h, err := a.Updater.Schedule(b)
		if err != nil {
			for _, prev := range handles {
				prev.Stop()
			}
			return nil, err
		}
		handles = append(handles, h)
	}
	if a.Config.GreetingMount != "" {
		hello := interop.Factory(&examples.Hello{Log: a.log})
		handles = append(handles, a.Updater.MountOnce(hello(nil), a.Config.GreetingMount))
	}
	return handles, nil
}

// Run schedules everything and runs the loop until ctx ends.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.Start(); err != nil {
		return err
	}
	a.log.Info("running", "timers", len(a.Bindings), "interval", a.Config.Interval)
	return a.Loop.Run(ctx)
}

// RenderAll renders every binding once with the given elapsed seconds, plus
// the greeting, without scheduling anything.
func (a *App) RenderAll(elapsed int) error {
	if a.Config.GreetingMount != "" {
		hello := interop.Factory(&examples.Hello{Log: a.log})
		if err := a.Root.Render(hello(nil), a.Config.GreetingMount); err != nil {
			return err
		}
	}
	for _, b := range a.Bindings {
		props := interop.Props{updater.PropElapsed: elapsed, updater.PropTitle: b.Title}
		if err := a.Root.Render(b.Component(props), b.MountID); err != nil {
			return err
		}
	}
	return nil
}
