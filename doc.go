// Package elt builds DOM element trees from Go.
//
// An element is a tag, an ordered list of properties and an ordered list of
// children:
//
//	count := 0
//	btn, err := elt.Build("button", elt.Props{
//		elt.P("class", elt.Attr("primary")),
//		elt.P("onclick", elt.Callback(func(dom.Event) { count++ })),
//	}, "Add")
//
// Keys starting with "on" register event listeners and must carry a
// Callback; every other key sets an attribute and must carry an Attr.
//
// Builders create nodes in a dom.Document. In a js/wasm program the
// browser document is installed as dom.Current when dom/jsdom is linked,
// which this package does for that target. Elsewhere, bind a builder to a
// dom/memdom document with WithDocument.
package elt
