// Command elt-demo is a counter built with the el DSL. Compiled to wasm
// it mounts into #app; on other platforms it prints the markup.
package main

import (
	"strconv"

	"github.com/eltkit/elt/dom"
	"github.com/eltkit/elt/el"
)

// counter is a button pair around a count.
type counter struct {
	count int
	value dom.Text
	root  dom.Element
}

func newCounter(start int) *counter {
	c := &counter{count: start}
	c.value = el.Builder().MustText(strconv.Itoa(start))
	c.root = el.Div(el.ID("counter"), el.Class("counter"),
		el.H1("elt counter"),
		el.Button(el.Type("button"), el.AriaLabel("decrement"), el.OnClick(c.add(-1)), "-"),
		el.Span(el.Class("value"), c.value),
		el.Button(el.Type("button"), el.AriaLabel("increment"), el.OnClick(c.add(1)), "+"),
	)
	return c
}

func (c *counter) add(n int) func(dom.Event) {
	return func(dom.Event) {
		c.count += n
		c.value.SetData(strconv.Itoa(c.count))
	}
}
