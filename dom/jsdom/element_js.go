//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/eltkit/elt/dom"
)

// Element wraps a browser element.
type Element struct {
	Node
}

var _ dom.Element = (*Element)(nil)

func (e *Element) TagName() string { return e.v.Get("tagName").String() }

// GetAttribute implements dom.Element.
func (e *Element) GetAttribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(name, value string) error {
	_, err := call(e.v, "setAttribute", name, value)
	return err
}

func (e *Element) HasAttribute(name string) bool { return e.v.Call("hasAttribute", name).Bool() }
func (e *Element) RemoveAttribute(name string)   { e.v.Call("removeAttribute", name) }

// Attributes implements dom.Element.
func (e *Element) Attributes() []dom.Attribute {
	attrs := e.v.Get("attributes")
	out := make([]dom.Attribute, 0, attrs.Length())
	for i := 0; i < attrs.Length(); i++ {
		a := attrs.Index(i)
		out = append(out, dom.Attribute{Name: a.Get("name").String(), Value: a.Get("value").String()})
	}
	return out
}

// Children implements dom.Element.
func (e *Element) Children() []dom.Element {
	coll := e.v.Get("children")
	out := make([]dom.Element, 0, coll.Length())
	for i := 0; i < coll.Length(); i++ {
		out = append(out, wrapElement(coll.Index(i)))
	}
	return out
}

func (e *Element) FirstElementChild() dom.Element { return wrapElement(e.v.Get("firstElementChild")) }
func (e *Element) LastElementChild() dom.Element  { return wrapElement(e.v.Get("lastElementChild")) }

// subscription is a listener registered through addEventListener.
type subscription struct {
	target js.Value
	typ    string
	fn     js.Func
	done   bool
}

func (s *subscription) Type() string { return s.typ }

// Remove unregisters the listener and releases the js.Func.
func (s *subscription) Remove() {
	if s.done {
		return
	}
	s.done = true
	s.target.Call("removeEventListener", s.typ, s.fn)
	s.fn.Release()
}

// AddEventListener implements dom.EventTarget.
func (e *Element) AddEventListener(typ string, fn func(dom.Event)) (dom.Subscription, error) {
	if fn == nil {
		return nil, dom.Throw(dom.NotSupportedError, "listener for %q is nil", typ)
	}
	jsFn := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(&Event{v: ev})
		return nil
	})
	if _, err := call(e.v, "addEventListener", typ, jsFn); err != nil {
		jsFn.Release()
		return nil, err
	}
	return &subscription{target: e.v, typ: typ, fn: jsFn}, nil
}

// DispatchEvent implements dom.EventTarget.
func (e *Element) DispatchEvent(ev dom.Event) (bool, error) {
	w, ok := ev.(Wrapper)
	if !ok {
		return false, dom.Throw(dom.NotSupportedError, "event of type %T is not a browser event", ev)
	}
	r, err := call(e.v, "dispatchEvent", w.JSValue())
	if err != nil {
		return false, err
	}
	return r.Bool(), nil
}
