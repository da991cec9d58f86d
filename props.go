package elt

import (
	"fmt"
	"strings"

	"github.com/eltkit/elt/dom"
	"github.com/eltkit/elt/internal/errors"
)

// EventPrefix marks property keys that register event listeners.
const EventPrefix = "on"

// Kind is the PropValue variant discriminator.
type Kind uint8

const (
	KindInvalid  Kind = iota // zero PropValue
	KindAttr                 // literal attribute string
	KindCallback             // event listener
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindAttr:
		return "Attr"
	case KindCallback:
		return "Callback"
	default:
		return "Invalid"
	}
}

// PropValue is either an attribute string or an event callback. Build one
// with Attr or Callback.
type PropValue struct {
	kind    Kind
	text    string
	handler func(dom.Event)
}

// Attr wraps v, formatted with fmt.Sprint, as an attribute value.
func Attr(v any) PropValue {
	if s, ok := v.(string); ok {
		return PropValue{kind: KindAttr, text: s}
	}
	return PropValue{kind: KindAttr, text: fmt.Sprint(v)}
}

// Callback wraps fn as an event listener. State captured by fn lives as
// long as the listener stays registered. A nil fn yields an invalid value.
func Callback(fn func(dom.Event)) PropValue {
	if fn == nil {
		return PropValue{}
	}
	return PropValue{kind: KindCallback, handler: fn}
}

// Kind reports which variant v holds.
func (v PropValue) Kind() Kind { return v.kind }

// Text returns the attribute string of an Attr value.
func (v PropValue) Text() string { return v.text }

// Handler returns the function of a Callback value.
func (v PropValue) Handler() func(dom.Event) { return v.handler }

// String implements fmt.Stringer.
func (v PropValue) String() string {
	switch v.kind {
	case KindAttr:
		return fmt.Sprintf("Attr(%q)", v.text)
	case KindCallback:
		return "Callback(func)"
	default:
		return "Invalid"
	}
}

// Prop is one keyed property of an element.
type Prop struct {
	Key   string
	Value PropValue
}

// IsEvent reports whether the key carries the event prefix.
func (p Prop) IsEvent() bool {
	return strings.HasPrefix(p.Key, EventPrefix)
}

// EventName is the key without the event prefix ("onclick" -> "click").
func (p Prop) EventName() string {
	return strings.TrimPrefix(p.Key, EventPrefix)
}

// Check verifies that the key shape and the value variant agree.
func (p Prop) Check() error {
	switch {
	case p.Value.kind == KindInvalid:
		return errors.New(errors.CodeShapeMismatch).
			WithDetailf("property %q has no value", p.Key).
			WithSuggestion("Construct values with elt.Attr or elt.Callback")
	case p.IsEvent() && p.EventName() == "":
		return errors.New(errors.CodeShapeMismatch).
			WithDetailf("property %q has no event name", p.Key)
	case p.IsEvent() && p.Value.kind != KindCallback:
		return errors.New(errors.CodeShapeMismatch).
			WithDetailf("property %q is an event and needs a callback, got %s", p.Key, p.Value).
			WithExample(fmt.Sprintf("elt.Prop{Key: %q, Value: elt.Callback(func(e dom.Event) { ... })}", p.Key))
	case !p.IsEvent() && p.Value.kind != KindAttr:
		return errors.New(errors.CodeShapeMismatch).
			WithDetailf("property %q is not an event and needs an attribute, got %s", p.Key, p.Value).
			WithSuggestion(fmt.Sprintf("Event keys start with %q, e.g. %q", EventPrefix, EventPrefix+p.Key))
	}
	return nil
}

// Props is an ordered list of properties. Order is the order in which
// attributes are set and listeners registered.
type Props []Prop

// P is shorthand for a single Prop.
func P(key string, value PropValue) Prop {
	return Prop{Key: key, Value: value}
}

// Set replaces the value of key in place, or appends it.
func (ps Props) Set(key string, value PropValue) Props {
	for i := range ps {
		if ps[i].Key == key {
			ps[i].Value = value
			return ps
		}
	}
	return append(ps, Prop{Key: key, Value: value})
}

// Get returns the value stored under key.
func (ps Props) Get(key string) (PropValue, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Value, true
		}
	}
	return PropValue{}, false
}

// Validate checks every property and returns the first mismatch.
func (ps Props) Validate() error {
	for _, p := range ps {
		if err := p.Check(); err != nil {
			return err
		}
	}
	return nil
}
