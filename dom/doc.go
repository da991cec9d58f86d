// Package dom defines the DOM access layer that elt builds on.
//
// The interfaces mirror the small slice of the browser DOM that element
// construction needs: creating elements and text nodes, reading and
// writing attributes, appending children and registering event listeners.
//
// Two implementations ship with elt:
//
//   - dom/jsdom wraps the browser's document through syscall/js and is
//     only available when building for js/wasm.
//   - dom/memdom is an in-memory document that follows the same
//     observable rules. It backs host-side tests, HTML rendering and the
//     elt CLI.
//
// # Current document
//
// SetCurrent installs the document used by code that does not pass one
// explicitly. dom/jsdom installs the browser document when it is linked
// into a js/wasm program; on other platforms there is no current document
// until one is set.
//
// # Errors
//
// Operations the DOM refuses return an *Exception carrying the DOMException
// name (for example "InvalidCharacterError").
package dom
