package registry

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germtb/interop"
	errUtils "github.com/germtb/interop/errors"
)

func elapser(props interop.Props) interop.VNode {
	return interop.Element("p", nil, interop.Text(props.String("title")))
}

func TestBothPathsResolveSameBehaviour(t *testing.T) {
	scope := NewScope()
	modules := NewModules()

	_, err := Register(elapser,
		AsGlobal(scope, "ElapserGlobal"),
		AsExport(modules, "./interop", "Elapser"),
	)
	require.NoError(t, err)

	global, err := FromGlobal(scope, "ElapserGlobal").Resolve()
	require.NoError(t, err)
	required, err := FromModule(modules, "./interop", "Elapser").Resolve()
	require.NoError(t, err)

	props := interop.Props{"elapsed": 1, "title": "A"}
	assert.Equal(t, global(props), required(props))
}

func TestFromGlobalNestedPath(t *testing.T) {
	scope := NewScope()
	nested := NewScope()
	require.NoError(t, nested.Set("Elapser", interop.Component(elapser)))
	require.NoError(t, scope.Set("app", nested))

	c, err := FromGlobal(scope, "app", "Elapser").Resolve()
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestFromGlobalClassValue(t *testing.T) {
	scope := NewScope()
	require.NoError(t, scope.Set("Static", staticClass{}))

	c, err := FromGlobal(scope, "Static").Resolve()
	require.NoError(t, err)
	assert.True(t, c(nil).IsComponent())
}

type staticClass struct{}

func (staticClass) Render(interop.Props) interop.VNode { return interop.Text("static") }

func TestFromGlobalFailures(t *testing.T) {
	scope := NewScope()
	require.NoError(t, scope.Set("Known", interop.Component(elapser)))
	require.NoError(t, scope.Set("Number", 42))

	tests := []struct {
		name string
		path []string
		want error
	}{
		{"missing", []string{"Missing"}, errUtils.ErrComponentNotFound},
		{"not a scope", []string{"Known", "Inner"}, errUtils.ErrComponentNotFound},
		{"not a component", []string{"Number"}, errUtils.ErrComponentNotFound},
		{"empty path", nil, errUtils.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGlobal(scope, tt.path...).Resolve()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMissingNameCarriesHint(t *testing.T) {
	scope := NewScope()
	require.NoError(t, scope.Set("Known", interop.Component(elapser)))

	_, err := FromGlobal(scope, "Unknown").Resolve()
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "Known")
}

func TestFromModuleFailures(t *testing.T) {
	modules := NewModules()
	mod, err := modules.Define("./interop")
	require.NoError(t, err)
	require.NoError(t, mod.Export("Elapser", elapser))

	_, err = FromModule(modules, "./other", "Elapser").Resolve()
	assert.ErrorIs(t, err, errUtils.ErrModuleNotFound)

	_, err = FromModule(modules, "./interop", "Missing").Resolve()
	assert.ErrorIs(t, err, errUtils.ErrComponentNotFound)
}

func TestDefineIsIdempotent(t *testing.T) {
	modules := NewModules()
	a, err := modules.Define("./interop")
	require.NoError(t, err)
	b, err := modules.Define("./interop")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, "./interop", a.Path())
}

func TestInvalidNames(t *testing.T) {
	_, err := Register(elapser, AsGlobal(NewScope(), " "))
	assert.ErrorIs(t, err, errUtils.ErrInvalidName)

	_, err = NewModules().Define("")
	assert.ErrorIs(t, err, errUtils.ErrInvalidName)

	mod, err := NewModules().Define("./m")
	require.NoError(t, err)
	assert.ErrorIs(t, mod.Export("x", nil), errUtils.ErrComponentNotFound)
}

func TestMustResolvePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustResolve(FromModule(NewModules(), "./interop", "Elapser"))
	})
	assert.NotPanics(t, func() {
		scope := NewScope()
		_ = scope.Set("E", interop.Component(elapser))
		MustResolve(FromGlobal(scope, "E"))
	})
}
