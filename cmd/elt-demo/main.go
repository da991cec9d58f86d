//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"

	"github.com/eltkit/elt"
	"github.com/eltkit/elt/dom/memdom"
	"github.com/eltkit/elt/el"
	"github.com/eltkit/elt/pkg/render"
)

// Outside the browser the counter is rendered once to stdout.
func main() {
	defer el.Use(elt.New(elt.WithDocument(memdom.NewDocument())))()

	r := render.NewRenderer(render.Config{Pretty: true})
	if err := r.RenderToWriter(os.Stdout, newCounter(0).root); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
