package registry

import (
	"github.com/cockroachdb/errors"

	"github.com/germtb/interop"
)

// Option publishes a component somewhere it can be resolved from.
type Option func(c interop.Component) error

// AsGlobal binds the component to name in scope.
func AsGlobal(scope *Scope, name string) Option {
	return func(c interop.Component) error {
		return scope.Set(name, c)
	}
}

// AsExport exports the component as name from the module at path.
func AsExport(modules *Modules, path, name string) Option {
	return func(c interop.Component) error {
		mod, err := modules.Define(path)
		if err != nil {
			return err
		}
		return mod.Export(name, c)
	}
}

// Register applies every option to c and returns c for convenience.
func Register(c interop.Component, opts ...Option) (interop.Component, error) {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errors.Wrap(err, "register component")
		}
	}
	return c, nil
}
