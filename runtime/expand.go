package runtime

import (
	"github.com/cockroachdb/errors"

	"github.com/germtb/interop"
	errUtils "github.com/germtb/interop/errors"
)

// maxExpandDepth bounds component nesting so a component that renders itself
// fails instead of recursing forever.
const maxExpandDepth = 256

// Expand resolves every component node in node into the tree it renders,
// leaving only intrinsic elements, text and fragments. It returns the classes
// that were rendered, in the order their Render methods ran.
func Expand(node interop.VNode) (interop.VNode, []interop.Class, error) {
	var classes []interop.Class
	out, err := expand(node, &classes, 0)
	if err != nil {
		return interop.Empty(), nil, err
	}
	return out, classes, nil
}

func expand(node interop.VNode, classes *[]interop.Class, depth int) (interop.VNode, error) {
	if depth > maxExpandDepth {
		return interop.Empty(), errors.Newf("component nesting deeper than %d", maxExpandDepth)
	}
	if node.IsEmpty() || node.IsText() {
		return node, nil
	}

	switch typ := node.Type.(type) {
	case string:
		if typ == "" {
			return interop.Empty(), errors.Wrap(errUtils.ErrUnsupportedNode, "element with empty tag")
		}
		children, err := expandChildren(node.Children, classes, depth)
		if err != nil {
			return interop.Empty(), err
		}
		return interop.VNode{Type: typ, Props: node.Props, Children: children}, nil
	case interop.Component:
		return expand(typ(componentProps(node)), classes, depth+1)
	case func(interop.Props) interop.VNode:
		return expand(typ(componentProps(node)), classes, depth+1)
	case interop.Class:
		*classes = append(*classes, typ)
		return expand(typ.Render(componentProps(node)), classes, depth+1)
	default:
		return interop.Empty(), errors.Wrapf(errUtils.ErrUnsupportedNode, "%T", node.Type)
	}
}

func expandChildren(children []interop.VNode, classes *[]interop.Class, depth int) ([]interop.VNode, error) {
	if len(children) == 0 {
		return nil, nil
	}
	out := make([]interop.VNode, 0, len(children))
	for _, child := range children {
		c, err := expand(child, classes, depth+1)
		if err != nil {
			return nil, err
		}
		if c.IsEmpty() {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// componentProps hands children to components through the "children" prop.
func componentProps(node interop.VNode) interop.Props {
	if len(node.Children) == 0 {
		return node.Props
	}
	props := node.Props.Clone()
	if props == nil {
		props = interop.Props{}
	}
	props["children"] = node.Children
	return props
}
