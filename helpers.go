package interop

import (
	"fmt"

	"github.com/samber/lo"
)

// Element creates a VNode for an element (intrinsic or component).
// typ can be a string (for intrinsic elements like "div", "h1"),
// a Component function or a Class.
func Element(typ any, props Props, children ...VNode) VNode {
	if props == nil {
		props = Props{}
	}
	return VNode{
		Type:     typ,
		Props:    props,
		Children: children,
	}
}

// E is a shorthand alias for Element.
func E(typ any, props Props, children ...VNode) VNode {
	return Element(typ, props, children...)
}

// Text creates a text VNode.
func Text(content string) VNode {
	return VNode{
		Type:  TextNodeType,
		Props: Props{"content": content},
	}
}

// V converts a prop value to a VNode: VNodes pass through, strings and
// scalars become text, []VNode becomes a fragment and nil is empty.
// Any other type panics.
func V(value any) VNode {
	switch v := value.(type) {
	case VNode:
		return v
	case string:
		return Text(v)
	case []VNode:
		return Fragment(v...)
	case nil:
		return Empty()
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, bool:
		return Text(fmt.Sprint(v))
	default:
		panic(fmt.Sprintf("interop: cannot render a %T prop", value))
	}
}

// Fragment wraps multiple children without a parent element.
func Fragment(children ...VNode) VNode {
	return VNode{
		Type:     FragmentNodeType,
		Children: children,
	}
}

// When returns child if condition is true, else an empty VNode.
func When(condition bool, child VNode) VNode {
	if condition {
		return child
	}
	return Empty()
}

// Map renders each item with fn.
func Map[T any](items []T, fn func(T) VNode) []VNode {
	return lo.Map(items, func(item T, _ int) VNode {
		return fn(item)
	})
}

// Spread turns a rendered list into a single child.
func Spread(nodes []VNode) VNode {
	return Fragment(nodes...)
}
