package memdom

import (
	"strings"

	"github.com/eltkit/elt/dom"
)

// Element is an HTML element in a memdom document.
type Element struct {
	nodeBase
	localName string
	attrs     []dom.Attribute
	children  []treeNode
	listeners []*listener
}

var _ dom.Element = (*Element)(nil)

// NodeType implements dom.Node.
func (e *Element) NodeType() dom.NodeType { return dom.ElementNode }

// NodeName implements dom.Node.
func (e *Element) NodeName() string { return e.TagName() }

// TagName implements dom.Element.
func (e *Element) TagName() string { return strings.ToUpper(e.localName) }

// LocalName returns the lowercase tag.
func (e *Element) LocalName() string { return e.localName }

// TextContent implements dom.Node.
func (e *Element) TextContent() string { return textContent(e.children) }

// SetTextContent replaces all children with a single text node. An empty
// string leaves the element without children.
func (e *Element) SetTextContent(s string) {
	for _, c := range e.children {
		c.base().parent = nil
	}
	e.children = nil
	if s != "" {
		t := e.doc.newText(s)
		t.parent = e
		e.children = append(e.children, t)
	}
}

// ChildNodes implements dom.Node.
func (e *Element) ChildNodes() []dom.Node {
	out := make([]dom.Node, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// Children implements dom.Element.
func (e *Element) Children() []dom.Element {
	var out []dom.Element
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// FirstElementChild implements dom.Element.
func (e *Element) FirstElementChild() dom.Element {
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			return el
		}
	}
	return nil
}

// LastElementChild implements dom.Element.
func (e *Element) LastElementChild() dom.Element {
	for i := len(e.children) - 1; i >= 0; i-- {
		if el, ok := e.children[i].(*Element); ok {
			return el
		}
	}
	return nil
}

// AppendChild implements dom.Node. A child that already has a parent is
// moved.
func (e *Element) AppendChild(child dom.Node) error {
	c, err := asTreeNode(child)
	if err != nil {
		return err
	}
	if el, ok := c.(*Element); ok && el.contains(e) {
		return dom.Throw(dom.HierarchyRequestError, "the new child <%s> is an ancestor of <%s>", el.localName, e.localName)
	}
	if p := c.base().parent; p != nil {
		p.detach(c)
	}
	c.base().parent = e
	c.base().doc = e.doc
	e.children = append(e.children, c)
	return nil
}

// RemoveChild implements dom.Node.
func (e *Element) RemoveChild(child dom.Node) error {
	c, err := asTreeNode(child)
	if err != nil {
		return err
	}
	if c.base().parent != e {
		return dom.Throw(dom.NotFoundError, "the node to be removed is not a child of <%s>", e.localName)
	}
	e.detach(c)
	return nil
}

func (e *Element) detach(c treeNode) {
	for i, n := range e.children {
		if n == c {
			e.children = append(e.children[:i], e.children[i+1:]...)
			break
		}
	}
	c.base().parent = nil
}

// contains reports whether other is e or one of its descendants.
func (e *Element) contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// GetAttribute implements dom.Element.
func (e *Element) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttribute implements dom.Element. Names are lowercased as in an HTML
// document.
func (e *Element) SetAttribute(name, value string) error {
	if err := checkName("attribute", name); err != nil {
		return err
	}
	name = strings.ToLower(name)
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return nil
		}
	}
	e.attrs = append(e.attrs, dom.Attribute{Name: name, Value: value})
	return nil
}

// HasAttribute implements dom.Element.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// RemoveAttribute implements dom.Element.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Attributes implements dom.Element.
func (e *Element) Attributes() []dom.Attribute {
	out := make([]dom.Attribute, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// ListenerCount returns the number of listeners registered for typ, or for
// all types when typ is empty.
func (e *Element) ListenerCount(typ string) int {
	n := 0
	for _, l := range e.listeners {
		if typ == "" || l.typ == typ {
			n++
		}
	}
	return n
}
