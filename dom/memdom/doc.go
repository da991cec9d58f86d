// Package memdom is an in-memory implementation of the dom interfaces.
//
// A Document starts as a blank HTML page (html, head and body elements).
// Element names are validated and lowercased the way an HTML document's
// createElement does, TagName is uppercased, and DispatchEvent runs
// listeners synchronously with bubbling through ancestors.
//
// A Document and its nodes are not safe for concurrent use.
package memdom
