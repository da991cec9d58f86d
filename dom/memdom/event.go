package memdom

import "github.com/eltkit/elt/dom"

// Event is a memdom event. Create one with Document.NewEvent or NewEvent.
type Event struct {
	typ              string
	bubbles          bool
	cancelable       bool
	target           *Element
	current          *Element
	defaultPrevented bool
	stopped          bool
	dispatching      bool
}

var _ dom.Event = (*Event)(nil)

// NewEvent creates an event that has not been dispatched yet.
func NewEvent(typ string, init dom.EventInit) *Event {
	return &Event{typ: typ, bubbles: init.Bubbles, cancelable: init.Cancelable}
}

func (e *Event) Type() string  { return e.typ }
func (e *Event) Bubbles() bool { return e.bubbles }

// Target implements dom.Event.
func (e *Event) Target() dom.EventTarget {
	if e.target == nil {
		return nil
	}
	return e.target
}

// CurrentTarget returns the element whose listeners are running.
func (e *Event) CurrentTarget() *Element { return e.current }

// PreventDefault implements dom.Event. It has no effect on events that are
// not cancelable.
func (e *Event) PreventDefault() {
	if e.cancelable {
		e.defaultPrevented = true
	}
}

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }
func (e *Event) StopPropagation()       { e.stopped = true }

type listener struct {
	owner   *Element
	typ     string
	fn      func(dom.Event)
	removed bool
}

func (l *listener) Type() string { return l.typ }

// Remove implements dom.Subscription.
func (l *listener) Remove() {
	if l.removed {
		return
	}
	l.removed = true
	ls := l.owner.listeners
	for i, other := range ls {
		if other == l {
			l.owner.listeners = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

// AddEventListener implements dom.EventTarget.
func (e *Element) AddEventListener(typ string, fn func(dom.Event)) (dom.Subscription, error) {
	if typ == "" {
		return nil, dom.Throw(dom.NotSupportedError, "event type must not be empty")
	}
	if fn == nil {
		return nil, dom.Throw(dom.NotSupportedError, "listener for %q is nil", typ)
	}
	l := &listener{owner: e, typ: typ, fn: fn}
	e.listeners = append(e.listeners, l)
	return l, nil
}

// DispatchEvent implements dom.EventTarget. Listeners run synchronously on
// the target and then, for bubbling events, on each ancestor.
func (e *Element) DispatchEvent(ev dom.Event) (bool, error) {
	me, ok := ev.(*Event)
	if !ok {
		return false, dom.Throw(dom.NotSupportedError, "event of type %T was not created by memdom", ev)
	}
	if me.dispatching {
		return false, dom.Throw(dom.InvalidStateError, "event %q is already being dispatched", me.typ)
	}
	me.dispatching = true
	me.target = e
	me.stopped = false
	defer func() {
		me.dispatching = false
		me.current = nil
	}()

	for n := e; n != nil; n = n.parent {
		me.current = n
		// Snapshot so listeners added or removed during dispatch do not
		// affect this round.
		snapshot := make([]*listener, len(n.listeners))
		copy(snapshot, n.listeners)
		for _, l := range snapshot {
			if l.removed || l.typ != me.typ {
				continue
			}
			l.fn(me)
		}
		if me.stopped || !me.bubbles {
			break
		}
	}
	return !me.defaultPrevented, nil
}
