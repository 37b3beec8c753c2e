// Package interop provides the component model shared by everything that
// renders into a host document: virtual nodes, props and component
// constructors.
package interop

// VNode is the core tree node type.
type VNode struct {
	Type     any // string for intrinsic elements, Component or Class for components
	Props    Props
	Children []VNode
}

// Component is a function that returns a VNode. It is the constructor shape
// handed to renderers and to the registry.
type Component func(props Props) VNode

// Class is a component with an identity, which lets it take part in the
// lifecycle (see DidMounter, WillUnmounter and UpdateChecker).
type Class interface {
	Render(props Props) VNode
}

// DidMounter is invoked once, right after the first render into a mount.
type DidMounter interface {
	ComponentDidMount(mountID string)
}

// WillUnmounter is invoked right before a mount is cleared.
type WillUnmounter interface {
	ComponentWillUnmount(mountID string)
}

// UpdateChecker decides whether a mounted component needs to be rendered
// again for the new props. It is not consulted for the first render.
type UpdateChecker interface {
	ShouldComponentUpdate(prev, next Props) bool
}

// NodeType constants for special node types.
const (
	TextNodeType     = "__text__"
	FragmentNodeType = "__fragment__"
)

// Factory returns a constructor for c. The descriptor it produces carries the
// class itself, so rendering is deferred until the descriptor is mounted.
func Factory(c Class) Component {
	return func(props Props) VNode {
		return Element(c, props)
	}
}

// IsText returns true if this VNode is a text node.
func (v VNode) IsText() bool {
	s, ok := v.Type.(string)
	return ok && s == TextNodeType
}

// IsFragment returns true if this VNode is a fragment.
func (v VNode) IsFragment() bool {
	s, ok := v.Type.(string)
	return ok && s == FragmentNodeType
}

// IsComponent returns true if this VNode represents a component.
func (v VNode) IsComponent() bool {
	switch v.Type.(type) {
	case Component, func(Props) VNode, Class:
		return true
	}
	return false
}

// IsIntrinsic returns true for plain elements such as "div" or "h1".
func (v VNode) IsIntrinsic() bool {
	s, ok := v.Type.(string)
	return ok && s != "" && s != TextNodeType && s != FragmentNodeType
}

// Tag returns the element name of an intrinsic node.
func (v VNode) Tag() string {
	if !v.IsIntrinsic() {
		return ""
	}
	return v.Type.(string)
}

// GetTextContent returns the text content if this is a text node.
func (v VNode) GetTextContent() (string, bool) {
	if !v.IsText() {
		return "", false
	}
	if content, ok := v.Props["content"].(string); ok {
		return content, true
	}
	return "", false
}

// Empty returns an empty VNode.
func Empty() VNode {
	return VNode{}
}

// IsEmpty returns true if this VNode is empty/nil.
func (v VNode) IsEmpty() bool {
	return v.Type == nil && v.Props == nil && v.Children == nil
}
