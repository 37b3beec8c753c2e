// Package errors holds the sentinel errors shared across interop packages.
// Call sites wrap them with github.com/cockroachdb/errors so errors.Is keeps
// working and hints survive up to the CLI.
package errors

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrMountNotFound indicates the host document has no mount target with the requested ID.
	ErrMountNotFound = errors.New("mount target not found")
	// ErrComponentNotFound indicates a component constructor could not be resolved.
	ErrComponentNotFound = errors.New("component not found")
	// ErrModuleNotFound indicates a named module has not been defined.
	ErrModuleNotFound = errors.New("module not found")
	// ErrInvalidName indicates an empty or malformed registration name.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidInterval indicates a non-positive timer interval.
	ErrInvalidInterval = errors.New("interval must be positive")
	// ErrInvalidBinding indicates a timer binding is missing its component or mount.
	ErrInvalidBinding = errors.New("invalid binding")
	// ErrUnsupportedNode indicates a VNode type the renderer cannot handle.
	ErrUnsupportedNode = errors.New("unsupported node type")
	// ErrInvalidConfig indicates the configuration failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Hints returns the user-facing hints attached anywhere in err's chain.
func Hints(err error) []string {
	if err == nil {
		return nil
	}
	return errors.GetAllHints(err)
}
