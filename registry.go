package elt

import (
	"sync"

	"github.com/eltkit/elt/dom"
)

// Registry keeps the listeners a Builder registered, keyed by element.
//
// Listeners are retained for the life of the page unless Release is called:
// the registry is what keeps a callback's captured state reachable after
// Build returns. Elements used as keys must be comparable, which holds for
// the pointer types of dom/memdom and dom/jsdom.
type Registry struct {
	mu      sync.Mutex
	entries map[dom.Element][]dom.Subscription
	total   int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[dom.Element][]dom.Subscription)}
}

func (r *Registry) track(el dom.Element, subs []dom.Subscription) {
	if len(subs) == 0 {
		return
	}
	r.mu.Lock()
	r.entries[el] = append(r.entries[el], subs...)
	r.total += len(subs)
	r.mu.Unlock()
}

// Len returns the number of retained listeners.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

// Events returns the event types registered on el, in registration order.
func (r *Registry) Events(el dom.Element) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs := r.entries[el]
	out := make([]string, len(subs))
	for i, s := range subs {
		out[i] = s.Type()
	}
	return out
}

// Release removes every listener registered on el and returns how many
// were removed.
func (r *Registry) Release(el dom.Element) int {
	r.mu.Lock()
	subs := r.entries[el]
	delete(r.entries, el)
	r.total -= len(subs)
	r.mu.Unlock()

	for _, s := range subs {
		s.Remove()
	}
	return len(subs)
}

// ReleaseAll removes every retained listener.
func (r *Registry) ReleaseAll() int {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[dom.Element][]dom.Subscription)
	r.total = 0
	r.mu.Unlock()

	n := 0
	for _, subs := range entries {
		for _, s := range subs {
			s.Remove()
			n++
		}
	}
	return n
}
