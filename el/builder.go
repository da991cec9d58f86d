package el

import (
	"sync"

	"github.com/eltkit/elt"
	"github.com/eltkit/elt/dom"
)

var (
	mu      sync.RWMutex
	current *elt.Builder
)

// Use makes the DSL build with b and returns a function restoring the
// previous builder. Passing nil reverts to elt.Default.
func Use(b *elt.Builder) (restore func()) {
	mu.Lock()
	prev := current
	current = b
	mu.Unlock()
	return func() {
		mu.Lock()
		current = prev
		mu.Unlock()
	}
}

// Builder returns the builder the DSL is using.
func Builder() *elt.Builder {
	mu.RLock()
	b := current
	mu.RUnlock()
	if b == nil {
		return elt.Default()
	}
	return b
}

// Element builds an element for any tag, including custom elements.
func Element(tag string, args ...any) dom.Element {
	return Builder().MustElt(tag, args...)
}
