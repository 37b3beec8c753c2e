package dom

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/germtb/interop"
	errUtils "github.com/germtb/interop/errors"
)

// attrAliases maps prop names onto HTML attribute names.
var attrAliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// ToNodes converts an expanded VNode tree to HTML nodes. Component nodes must
// have been resolved beforehand (see runtime.Expand).
func ToNodes(v interop.VNode) ([]*html.Node, error) {
	switch {
	case v.IsEmpty():
		return nil, nil
	case v.IsText():
		content, _ := v.GetTextContent()
		return []*html.Node{{Type: html.TextNode, Data: content}}, nil
	case v.IsFragment():
		return childNodes(v.Children)
	case v.IsIntrinsic():
		n := &html.Node{
			Type:     html.ElementNode,
			Data:     v.Tag(),
			DataAtom: atom.Lookup([]byte(v.Tag())),
			Attr:     attributes(v.Props),
		}
		children, err := childNodes(v.Children)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			n.AppendChild(c)
		}
		return []*html.Node{n}, nil
	default:
		return nil, errors.Wrapf(errUtils.ErrUnsupportedNode, "cannot convert %T to HTML", v.Type)
	}
}

func childNodes(children []interop.VNode) ([]*html.Node, error) {
	var out []*html.Node
	for _, child := range children {
		nodes, err := ToNodes(child)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

// attributes converts scalar props to attributes in sorted key order.
// false, nil and non-scalar values are dropped; true renders as a bare attribute.
func attributes(props interop.Props) []html.Attribute {
	var attrs []html.Attribute
	for _, key := range props.Keys() {
		if key == "children" || key == "key" {
			continue
		}
		name := key
		if alias, ok := attrAliases[key]; ok {
			name = alias
		}
		switch val := props[key].(type) {
		case string:
			attrs = append(attrs, html.Attribute{Key: name, Val: val})
		case bool:
			if val {
				attrs = append(attrs, html.Attribute{Key: name})
			}
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			attrs = append(attrs, html.Attribute{Key: name, Val: fmt.Sprint(val)})
		}
	}
	return attrs
}
