//go:build js && wasm

package jsdom

import "github.com/eltkit/elt/dom"

func init() {
	if doc, err := Window(); err == nil {
		dom.SetCurrent(doc)
	}
}
