//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/eltkit/elt/dom"
)

// Node wraps a browser node that is neither an element nor text.
type Node struct {
	v js.Value
}

// Wrap returns the dom view of a browser node: *Element, *Text or *Node.
// It returns nil for null or undefined.
func Wrap(v js.Value) dom.Node {
	if isNullish(v) {
		return nil
	}
	switch dom.NodeType(v.Get("nodeType").Int()) {
	case dom.ElementNode:
		return &Element{Node{v}}
	case dom.TextNode:
		return &Text{Node{v}}
	default:
		return &Node{v}
	}
}

func wrapElement(v js.Value) dom.Element {
	if isNullish(v) {
		return nil
	}
	return &Element{Node{v}}
}

func (n *Node) JSValue() js.Value       { return n.v }
func (n *Node) NodeType() dom.NodeType  { return dom.NodeType(n.v.Get("nodeType").Int()) }
func (n *Node) NodeName() string        { return n.v.Get("nodeName").String() }
func (n *Node) ParentNode() dom.Node    { return Wrap(n.v.Get("parentNode")) }
func (n *Node) IsSameNode(o *Node) bool { return o != nil && n.v.Equal(o.v) }

// TextContent implements dom.Node.
func (n *Node) TextContent() string {
	tc := n.v.Get("textContent")
	if isNullish(tc) {
		return ""
	}
	return tc.String()
}

// ChildNodes implements dom.Node.
func (n *Node) ChildNodes() []dom.Node {
	list := n.v.Get("childNodes")
	out := make([]dom.Node, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		out = append(out, Wrap(list.Index(i)))
	}
	return out
}

// AppendChild implements dom.Node.
func (n *Node) AppendChild(child dom.Node) error {
	cv, err := unwrap(child)
	if err != nil {
		return err
	}
	_, err = call(n.v, "appendChild", cv)
	return err
}

// RemoveChild implements dom.Node.
func (n *Node) RemoveChild(child dom.Node) error {
	cv, err := unwrap(child)
	if err != nil {
		return err
	}
	_, err = call(n.v, "removeChild", cv)
	return err
}

// Text wraps a browser text node.
type Text struct {
	Node
}

func (t *Text) Data() string        { return t.v.Get("data").String() }
func (t *Text) SetData(data string) { t.v.Set("data", data) }
