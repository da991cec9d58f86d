//go:build js && wasm

package main

import (
	"log/slog"
	"os"

	"github.com/eltkit/elt"
	"github.com/eltkit/elt/dom/jsdom"
	"github.com/eltkit/elt/el"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	doc, err := jsdom.Window()
	if err != nil {
		logger.Error("no document", "err", err)
		os.Exit(1)
	}
	restore := el.Use(elt.New(elt.WithDocument(doc), elt.WithLogger(logger)))
	defer restore()

	mount := doc.GetElementByID("app")
	if mount == nil {
		mount = doc.Body()
	}
	if err := mount.AppendChild(newCounter(0).root); err != nil {
		logger.Error("mount failed", "err", err)
		os.Exit(1)
	}

	select {}
}
