package el

import (
	"fmt"

	"github.com/eltkit/elt/dom"
)

// Text creates a text node holding fmt.Sprint(v).
func Text(v any) dom.Text { return Builder().MustText(v) }

// Textf creates a text node from a format string.
func Textf(format string, args ...any) dom.Text {
	return Builder().MustText(fmt.Sprintf(format, args...))
}

// If returns node when condition is true and nil otherwise. Nil children
// are skipped.
func If(condition bool, node dom.Node) dom.Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue when condition is true, ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse dom.Node) dom.Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When calls fn only when condition is true.
func When(condition bool, fn func() dom.Node) dom.Node {
	if condition {
		return fn()
	}
	return nil
}

// Range maps items to nodes. Nil results are dropped.
func Range[T any](items []T, fn func(item T, index int) dom.Node) []dom.Node {
	out := make([]dom.Node, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Repeat calls fn n times.
func Repeat(n int, fn func(i int) dom.Node) []dom.Node {
	out := make([]dom.Node, 0, n)
	for i := 0; i < n; i++ {
		if node := fn(i); node != nil {
			out = append(out, node)
		}
	}
	return out
}
