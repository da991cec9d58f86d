// Package jsdom implements the dom interfaces on top of the browser DOM
// through syscall/js. It is only functional when built with GOOS=js
// GOARCH=wasm; on other platforms the package is empty.
//
// Importing the package installs the page's document as dom.Current, so
// elt's package-level constructors work without further setup:
//
//	import _ "github.com/eltkit/elt/dom/jsdom"
//
// JavaScript exceptions thrown by DOM calls are recovered and returned as
// *dom.Exception values. Listener functions are js.Func values that stay
// registered, and allocated, until their Subscription is removed.
package jsdom
