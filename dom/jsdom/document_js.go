//go:build js && wasm

package jsdom

import (
	"errors"
	"syscall/js"

	"github.com/eltkit/elt/dom"
)

// ErrNoDocument is returned by Window when the JavaScript context has no
// document, as in a web worker.
var ErrNoDocument = errors.New("jsdom: no document in this JavaScript context")

// Document wraps the browser document.
type Document struct {
	v js.Value
}

var _ dom.Document = (*Document)(nil)

// Window returns the document of the global window.
func Window() (*Document, error) {
	doc := js.Global().Get("document")
	if isNullish(doc) {
		return nil, ErrNoDocument
	}
	return &Document{v: doc}, nil
}

func (d *Document) JSValue() js.Value { return d.v }

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) (dom.Element, error) {
	v, err := call(d.v, "createElement", tag)
	if err != nil {
		return nil, err
	}
	return &Element{Node{v}}, nil
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(data string) dom.Text {
	return &Text{Node{d.v.Call("createTextNode", data)}}
}

// NewEvent implements dom.Document.
func (d *Document) NewEvent(typ string, init dom.EventInit) dom.Event {
	ctor := js.Global().Get("Event")
	v := ctor.New(typ, map[string]any{
		"bubbles":    init.Bubbles,
		"cancelable": init.Cancelable,
	})
	return &Event{v: v}
}

// NewMouseEvent creates a MouseEvent, as a real click would produce.
func (d *Document) NewMouseEvent(typ string, init dom.EventInit) dom.Event {
	ctor := js.Global().Get("MouseEvent")
	v := ctor.New(typ, map[string]any{
		"bubbles":    init.Bubbles,
		"cancelable": init.Cancelable,
	})
	return &Event{v: v}
}

func (d *Document) Body() dom.Element { return wrapElement(d.v.Get("body")) }

func (d *Document) GetElementByID(id string) dom.Element {
	return wrapElement(d.v.Call("getElementById", id))
}
