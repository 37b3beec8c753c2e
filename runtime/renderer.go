// Package runtime connects VNode trees to host documents: it resolves
// components into intrinsic trees, looks up mount targets and drives the
// component lifecycle.
package runtime

import (
	"github.com/germtb/interop"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_renderer_test.go -package=runtime

// Renderer is the interface for connecting VNode trees to actual implementations.
// Render hands a descriptor to the mount target identified by mountID.
type Renderer interface {
	Render(node interop.VNode, mountID string) error
}

// RenderFunc is a function type that implements Renderer.
type RenderFunc func(interop.VNode, string) error

// Render implements the Renderer interface.
func (f RenderFunc) Render(node interop.VNode, mountID string) error {
	return f(node, mountID)
}

// Document looks up mount targets in a host UI tree.
type Document interface {
	Lookup(id string) (Mount, error)
}

// Mount is a location in the host UI tree owned by the host document.
// Replace receives fully expanded trees: intrinsic elements, text and fragments only.
type Mount interface {
	ID() string
	Replace(tree interop.VNode) error
	Clear() error
}

// Walker provides a way to traverse VNode trees.
type Walker interface {
	// Walk is called for each node in the tree.
	// Return false to stop walking children.
	Walk(vnode interop.VNode, depth int) bool
}

// WalkFunc is a function type that implements Walker.
type WalkFunc func(interop.VNode, int) bool

// Walk implements the Walker interface.
func (f WalkFunc) Walk(vnode interop.VNode, depth int) bool {
	return f(vnode, depth)
}

// WalkTree traverses a VNode tree depth-first, calling the walker for each node.
func WalkTree(root interop.VNode, walker Walker) {
	walkNode(root, walker, 0)
}

func walkNode(node interop.VNode, walker Walker, depth int) {
	if !walker.Walk(node, depth) {
		return
	}
	for _, child := range node.Children {
		walkNode(child, walker, depth+1)
	}
}

// CountNodes returns how many nodes tree holds, tree itself included.
func CountNodes(tree interop.VNode) int {
	n := 0
	WalkTree(tree, WalkFunc(func(interop.VNode, int) bool {
		n++
		return true
	}))
	return n
}
