//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/eltkit/elt/dom"
)

// Event wraps a browser Event object.
type Event struct {
	v js.Value
}

var _ dom.Event = (*Event)(nil)

func (e *Event) JSValue() js.Value      { return e.v }
func (e *Event) Type() string           { return e.v.Get("type").String() }
func (e *Event) Bubbles() bool          { return e.v.Get("bubbles").Bool() }
func (e *Event) PreventDefault()        { e.v.Call("preventDefault") }
func (e *Event) DefaultPrevented() bool { return e.v.Get("defaultPrevented").Bool() }
func (e *Event) StopPropagation()       { e.v.Call("stopPropagation") }

// Target implements dom.Event. Targets that are not elements (window,
// document) are reported as nil.
func (e *Event) Target() dom.EventTarget {
	t := e.v.Get("target")
	if isNullish(t) || t.Get("nodeType").IsUndefined() {
		return nil
	}
	if dom.NodeType(t.Get("nodeType").Int()) != dom.ElementNode {
		return nil
	}
	return &Element{Node{t}}
}
