// Package registry resolves component constructors by name.
//
// Two lookup paths exist and yield the same constructor: a Scope holds
// ambient, globally named values, while Modules hold explicitly required
// modules with named exports. Both are explicit values passed to whoever
// needs them; nothing here is process-global.
package registry

import (
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/germtb/interop"
	errUtils "github.com/germtb/interop/errors"
)

// Resolver yields a component constructor.
type Resolver interface {
	Resolve() (interop.Component, error)
}

// ResolverFunc is a function type that implements Resolver.
type ResolverFunc func() (interop.Component, error)

// Resolve implements the Resolver interface.
func (f ResolverFunc) Resolve() (interop.Component, error) {
	return f()
}

// MustResolve resolves r and panics on failure. It is meant for program
// initialization, where a missing constructor is fatal.
func MustResolve(r Resolver) interop.Component {
	c, err := r.Resolve()
	if err != nil {
		panic(err)
	}
	return c
}

// Scope is a set of named values, optionally nested, resolved by path.
type Scope struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{values: make(map[string]any)}
}

// Set binds name to v. v is typically an interop.Component or a nested *Scope.
func (s *Scope) Set(name string, v any) error {
	if err := validName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = v
	return nil
}

// Get returns the value bound to name.
func (s *Scope) Get(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Names returns the bound names in sorted order.
func (s *Scope) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.values)
}

// Lookup walks path through nested scopes and returns the final value.
func (s *Scope) Lookup(path ...string) (any, error) {
	if len(path) == 0 {
		return nil, errors.Wrap(errUtils.ErrInvalidName, "empty scope path")
	}
	var cur any = s
	for i, p := range path {
		scope, ok := cur.(*Scope)
		if !ok {
			return nil, errors.Wrapf(errUtils.ErrComponentNotFound, "%s is not a scope", strings.Join(path[:i], "."))
		}
		v, found := scope.Get(p)
		if !found {
			err := errors.Wrapf(errUtils.ErrComponentNotFound, "%s not found in scope", strings.Join(path[:i+1], "."))
			return nil, errors.WithHintf(err, "known names: %s", strings.Join(scope.Names(), ", "))
		}
		cur = v
	}
	return cur, nil
}

// FromGlobal resolves the constructor bound at path in scope.
func FromGlobal(scope *Scope, path ...string) Resolver {
	return ResolverFunc(func() (interop.Component, error) {
		v, err := scope.Lookup(path...)
		if err != nil {
			return nil, err
		}
		return asComponent(v, strings.Join(path, "."))
	})
}

func asComponent(v any, name string) (interop.Component, error) {
	switch c := v.(type) {
	case interop.Component:
		if c != nil {
			return c, nil
		}
	case func(interop.Props) interop.VNode:
		if c != nil {
			return c, nil
		}
	case interop.Class:
		return interop.Factory(c), nil
	}
	return nil, errors.Wrapf(errUtils.ErrComponentNotFound, "%s is a %T, not a component", name, v)
}

func validName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.Wrap(errUtils.ErrInvalidName, "name must not be empty")
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
