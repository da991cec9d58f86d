//go:build js && wasm

package elt

import _ "github.com/eltkit/elt/dom/jsdom"
