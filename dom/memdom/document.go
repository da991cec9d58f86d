package memdom

import (
	"strings"

	"github.com/eltkit/elt/dom"
)

// Document is an in-memory HTML document.
type Document struct {
	root *Element
	head *Element
	body *Element
}

var _ dom.Document = (*Document)(nil)

// NewDocument returns a blank HTML document with html, head and body.
func NewDocument() *Document {
	d := &Document{}
	d.root = d.newElement("html")
	d.head = d.newElement("head")
	d.body = d.newElement("body")
	d.root.AppendChild(d.head)
	d.root.AppendChild(d.body)
	return d
}

func (d *Document) newElement(localName string) *Element {
	return &Element{nodeBase: nodeBase{doc: d}, localName: localName}
}

func (d *Document) newText(data string) *Text {
	return &Text{nodeBase: nodeBase{doc: d}, data: data}
}

// CreateElement implements dom.Document. The name must be a valid XML name
// and is lowercased.
func (d *Document) CreateElement(tag string) (dom.Element, error) {
	el, err := d.Element(tag)
	if err != nil {
		return nil, err
	}
	return el, nil
}

// Element is CreateElement returning the concrete type.
func (d *Document) Element(tag string) (*Element, error) {
	if err := checkName("element", tag); err != nil {
		return nil, err
	}
	return d.newElement(strings.ToLower(tag)), nil
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(data string) dom.Text {
	return d.newText(data)
}

// NewEvent implements dom.Document.
func (d *Document) NewEvent(typ string, init dom.EventInit) dom.Event {
	return NewEvent(typ, init)
}

// DocumentElement returns the html element.
func (d *Document) DocumentElement() *Element { return d.root }

// Head returns the head element.
func (d *Document) Head() *Element { return d.head }

// Body implements dom.Document.
func (d *Document) Body() dom.Element { return d.body }

// BodyElement is Body returning the concrete type.
func (d *Document) BodyElement() *Element { return d.body }

// GetElementByID implements dom.Document. Only attached elements are found.
func (d *Document) GetElementByID(id string) dom.Element {
	if found := findByID(d.root, id); found != nil {
		return found
	}
	return nil
}

func findByID(el *Element, id string) *Element {
	if v, ok := el.GetAttribute("id"); ok && v == id {
		return el
	}
	for _, c := range el.children {
		if ce, ok := c.(*Element); ok {
			if found := findByID(ce, id); found != nil {
				return found
			}
		}
	}
	return nil
}
