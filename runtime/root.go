package runtime

import (
	"reflect"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/germtb/interop"
	"github.com/germtb/interop/logger"
)

// Root renders descriptors into the mount targets of a Document and keeps
// the per-mount state the lifecycle needs.
type Root struct {
	doc Document
	log *log.Logger

	mu      sync.Mutex
	mounted map[string]*mountState
}

type mountState struct {
	mount Mount
	top   interop.Class
	props interop.Props
}

var _ Renderer = (*Root)(nil)

// RootOption configures a Root.
type RootOption func(*Root)

// WithLogger sets the logger used for render events.
func WithLogger(l *log.Logger) RootOption {
	return func(r *Root) {
		r.log = l
	}
}

// NewRoot creates a Root rendering into doc.
func NewRoot(doc Document, opts ...RootOption) *Root {
	r := &Root{
		doc:     doc,
		log:     logger.Default(),
		mounted: make(map[string]*mountState),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders node into the mount target identified by mountID.
//
// When the mount already holds the same top-level class and that class
// implements interop.UpdateChecker, the render is skipped unless
// ShouldComponentUpdate approves the new props. ComponentDidMount is called
// for every class in the tree after the first render into a mount.
func (r *Root) Render(node interop.VNode, mountID string) error {
	mounters, err := r.render(node, mountID)
	if err != nil {
		return err
	}
	for _, m := range mounters {
		m.ComponentDidMount(mountID)
	}
	return nil
}

func (r *Root) render(node interop.VNode, mountID string) ([]interop.DidMounter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.mounted[mountID]
	if !ok {
		mount, err := r.doc.Lookup(mountID)
		if err != nil {
			return nil, err
		}
		state = &mountState{mount: mount}
	}

	top, _ := node.Type.(interop.Class)
	if ok && sameClass(state.top, top) {
		if checker, isChecker := top.(interop.UpdateChecker); isChecker && !checker.ShouldComponentUpdate(state.props, node.Props) {
			return nil, nil
		}
	}

	tree, classes, err := Expand(node)
	if err != nil {
		return nil, errors.Wrapf(err, "render into %q", mountID)
	}
	if err := state.mount.Replace(tree); err != nil {
		return nil, errors.Wrapf(err, "render into %q", mountID)
	}

	state.top = top
	state.props = node.Props.Clone()
	r.log.Log(logger.TraceLevel, "rendered", "mount", mountID, "nodes", CountNodes(tree))

	if ok {
		return nil, nil
	}
	r.mounted[mountID] = state

	// Children finish mounting before their parents.
	var mounters []interop.DidMounter
	for i := len(classes) - 1; i >= 0; i-- {
		if m, isMounter := classes[i].(interop.DidMounter); isMounter {
			mounters = append(mounters, m)
		}
	}
	return mounters, nil
}

// sameClass compares class identities without panicking on values of
// uncomparable types.
func sameClass(a, b interop.Class) bool {
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Unmount clears the mount target identified by mountID. It reports false
// when nothing had been rendered there.
func (r *Root) Unmount(mountID string) (bool, error) {
	r.mu.Lock()
	state, ok := r.mounted[mountID]
	delete(r.mounted, mountID)
	r.mu.Unlock()

	if !ok {
		return false, nil
	}
	if u, isUnmounter := state.top.(interop.WillUnmounter); isUnmounter {
		u.ComponentWillUnmount(mountID)
	}
	if err := state.mount.Clear(); err != nil {
		return true, errors.Wrapf(err, "unmount %q", mountID)
	}
	r.log.Debug("unmounted", "mount", mountID)
	return true, nil
}

// Mounted reports whether something is currently rendered at mountID.
func (r *Root) Mounted(mountID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.mounted[mountID]
	return ok
}
