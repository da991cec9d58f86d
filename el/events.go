package el

import (
	"github.com/eltkit/elt"
	"github.com/eltkit/elt/dom"
)

// On registers fn for events of the given type: On("click", fn) is the
// onclick prop.
func On(event string, fn func(dom.Event)) elt.Prop {
	return elt.P(elt.EventPrefix+event, elt.Callback(fn))
}

// Mouse events

func OnClick(fn func(dom.Event)) elt.Prop      { return On("click", fn) }
func OnDblClick(fn func(dom.Event)) elt.Prop   { return On("dblclick", fn) }
func OnMouseDown(fn func(dom.Event)) elt.Prop  { return On("mousedown", fn) }
func OnMouseUp(fn func(dom.Event)) elt.Prop    { return On("mouseup", fn) }
func OnMouseEnter(fn func(dom.Event)) elt.Prop { return On("mouseenter", fn) }
func OnMouseLeave(fn func(dom.Event)) elt.Prop { return On("mouseleave", fn) }

// Keyboard events

func OnKeyDown(fn func(dom.Event)) elt.Prop { return On("keydown", fn) }
func OnKeyUp(fn func(dom.Event)) elt.Prop   { return On("keyup", fn) }

// Form events

func OnInput(fn func(dom.Event)) elt.Prop  { return On("input", fn) }
func OnChange(fn func(dom.Event)) elt.Prop { return On("change", fn) }
func OnSubmit(fn func(dom.Event)) elt.Prop { return On("submit", fn) }
func OnFocus(fn func(dom.Event)) elt.Prop  { return On("focus", fn) }
func OnBlur(fn func(dom.Event)) elt.Prop   { return On("blur", fn) }
