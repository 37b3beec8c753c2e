package registry

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/germtb/interop"
	errUtils "github.com/germtb/interop/errors"
)

// Modules is a set of named modules that must be required explicitly.
type Modules struct {
	mu      sync.RWMutex
	modules map[string]*Module
}

// Module holds the components a module exports.
type Module struct {
	path string

	mu      sync.RWMutex
	exports map[string]interop.Component
}

// NewModules creates an empty module set.
func NewModules() *Modules {
	return &Modules{modules: make(map[string]*Module)}
}

// Define returns the module at path, creating it on first use.
func (m *Modules) Define(path string) (*Module, error) {
	if err := validName(path); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if mod, ok := m.modules[path]; ok {
		return mod, nil
	}
	mod := &Module{path: path, exports: make(map[string]interop.Component)}
	m.modules[path] = mod
	return mod, nil
}

// Require returns the module at path. Unlike Define it never creates one.
func (m *Modules) Require(path string) (*Module, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mod, ok := m.modules[path]
	if !ok {
		err := errors.Wrapf(errUtils.ErrModuleNotFound, "require(%q)", path)
		return nil, errors.WithHintf(err, "defined modules: %v", sortedKeys(m.modules))
	}
	return mod, nil
}

// Path returns the module's path.
func (mod *Module) Path() string {
	return mod.path
}

// Export publishes c under name, replacing any previous export.
func (mod *Module) Export(name string, c interop.Component) error {
	if err := validName(name); err != nil {
		return err
	}
	if c == nil {
		return errors.Wrapf(errUtils.ErrComponentNotFound, "nil export %q", name)
	}
	mod.mu.Lock()
	defer mod.mu.Unlock()
	mod.exports[name] = c
	return nil
}

// Get returns the export called name.
func (mod *Module) Get(name string) (interop.Component, error) {
	mod.mu.RLock()
	defer mod.mu.RUnlock()
	c, ok := mod.exports[name]
	if !ok {
		err := errors.Wrapf(errUtils.ErrComponentNotFound, "%q has no export %q", mod.path, name)
		return nil, errors.WithHintf(err, "exports: %v", sortedKeys(mod.exports))
	}
	return c, nil
}

// FromModule resolves the export name of the module at path.
func FromModule(modules *Modules, path, name string) Resolver {
	return ResolverFunc(func() (interop.Component, error) {
		mod, err := modules.Require(path)
		if err != nil {
			return nil, err
		}
		return mod.Get(name)
	})
}
