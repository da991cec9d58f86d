package memdom

import "github.com/eltkit/elt/dom"

// Text is a text node in a memdom document.
type Text struct {
	nodeBase
	data string
}

var _ dom.Text = (*Text)(nil)

func (t *Text) NodeType() dom.NodeType { return dom.TextNode }
func (t *Text) NodeName() string       { return "#text" }
func (t *Text) TextContent() string    { return t.data }
func (t *Text) Data() string           { return t.data }
func (t *Text) SetData(data string)    { t.data = data }
func (t *Text) ChildNodes() []dom.Node { return nil }

// AppendChild always fails: text nodes cannot have children.
func (t *Text) AppendChild(child dom.Node) error {
	return dom.Throw(dom.HierarchyRequestError, "text nodes cannot have children")
}

// RemoveChild always fails: text nodes have no children.
func (t *Text) RemoveChild(child dom.Node) error {
	return dom.Throw(dom.NotFoundError, "text nodes have no children")
}
