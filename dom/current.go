package dom

import (
	"strings"
	"sync"
)

var (
	currentMu sync.RWMutex
	current   Document
)

// SetCurrent installs doc as the current document and returns a function
// that restores the previous one. Passing nil clears it.
func SetCurrent(doc Document) (restore func()) {
	currentMu.Lock()
	prev := current
	current = doc
	currentMu.Unlock()

	return func() {
		currentMu.Lock()
		current = prev
		currentMu.Unlock()
	}
}

// Current returns the current document, if any.
func Current() (Document, bool) {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current, current != nil
}

// LocalName returns the lowercase tag of an HTML element.
func LocalName(el Element) string {
	return strings.ToLower(el.TagName())
}
