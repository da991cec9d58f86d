//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/eltkit/elt/dom"
)

// Wrapper is implemented by every node, event and document of this package.
type Wrapper interface {
	JSValue() js.Value
}

// call invokes a method and converts a thrown JavaScript exception into a
// *dom.Exception.
func call(v js.Value, method string, args ...any) (result js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = toException(r)
		}
	}()
	return v.Call(method, args...), nil
}

func toException(r any) error {
	switch e := r.(type) {
	case js.Error:
		name := e.Value.Get("name")
		msg := e.Value.Get("message")
		ex := &dom.Exception{Name: "Error"}
		if name.Type() == js.TypeString {
			ex.Name = name.String()
		}
		if msg.Type() == js.TypeString {
			ex.Message = msg.String()
		}
		return ex
	case *js.ValueError:
		return &dom.Exception{Name: "TypeError", Message: e.Error()}
	case error:
		return &dom.Exception{Name: "Error", Message: e.Error()}
	}
	panic(r)
}

func isNullish(v js.Value) bool {
	return v.IsNull() || v.IsUndefined()
}

// unwrap returns the JavaScript value behind a node of this package.
func unwrap(n dom.Node) (js.Value, error) {
	if n == nil {
		return js.Value{}, dom.Throw(dom.HierarchyRequestError, "cannot insert a nil node")
	}
	w, ok := n.(Wrapper)
	if !ok {
		return js.Value{}, dom.Throw(dom.HierarchyRequestError, "node of type %T is not backed by the browser DOM", n)
	}
	return w.JSValue(), nil
}
