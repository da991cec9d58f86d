package memdom

import (
	"strings"

	"github.com/eltkit/elt/dom"
)

// treeNode is implemented by every node this package creates.
type treeNode interface {
	dom.Node
	base() *nodeBase
}

// nodeBase holds the links shared by elements and text nodes.
type nodeBase struct {
	doc    *Document
	parent *Element
}

func (n *nodeBase) base() *nodeBase { return n }

// OwnerDocument returns the document that created the node.
func (n *nodeBase) OwnerDocument() *Document { return n.doc }

// ParentNode implements dom.Node.
func (n *nodeBase) ParentNode() dom.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ParentElement returns the parent as *Element, or nil when detached.
func (n *nodeBase) ParentElement() *Element {
	return n.parent
}

// asTreeNode converts a foreign dom.Node into one of ours.
func asTreeNode(child dom.Node) (treeNode, error) {
	if child == nil {
		return nil, dom.Throw(dom.HierarchyRequestError, "cannot insert a nil node")
	}
	c, ok := child.(treeNode)
	if !ok {
		return nil, dom.Throw(dom.HierarchyRequestError, "node of type %T was not created by a memdom document", child)
	}
	switch v := c.(type) {
	case *Element:
		if v == nil {
			return nil, dom.Throw(dom.HierarchyRequestError, "cannot insert a nil *Element")
		}
	case *Text:
		if v == nil {
			return nil, dom.Throw(dom.HierarchyRequestError, "cannot insert a nil *Text")
		}
	}
	return c, nil
}

// textContent concatenates descendant text in tree order.
func textContent(nodes []treeNode) string {
	var b strings.Builder
	var walk func([]treeNode)
	walk = func(nodes []treeNode) {
		for _, n := range nodes {
			switch v := n.(type) {
			case *Text:
				b.WriteString(v.data)
			case *Element:
				walk(v.children)
			}
		}
	}
	walk(nodes)
	return b.String()
}
