package build

import (
	"os"

	"github.com/eltkit/elt"
	"github.com/eltkit/elt/dom"
	"github.com/eltkit/elt/dom/memdom"
	"github.com/eltkit/elt/pkg/render"
)

const (
	// WasmFile is the name of the compiled application.
	WasmFile = "main.wasm"

	// IndexFile is the name of the host page.
	IndexFile = "index.html"

	// AppElementID is the id of the element the page reserves for the
	// application.
	AppElementID = "app"
)

const bootScript = `const go = new Go();
WebAssembly.instantiateStreaming(fetch("` + WasmFile + `"), go.importObject)
  .then((result) => go.run(result.instance))
  .catch((err) => console.error(err));`

// IndexPage returns the host page that loads wasm_exec.js and runs
// main.wasm. The body holds an empty #app element and a noscript notice.
// A nil b builds on a fresh memdom document.
func IndexPage(b *elt.Builder, title string) (render.Page, error) {
	if b == nil {
		b = elt.New(elt.WithDocument(memdom.NewDocument()))
	}

	app, err := b.Build("div", elt.Props{elt.P("id", elt.Attr(AppElementID))})
	if err != nil {
		return render.Page{}, err
	}
	notice, err := b.Build("noscript", nil, "This application requires JavaScript and WebAssembly.")
	if err != nil {
		return render.Page{}, err
	}

	return render.Page{
		Title: title,
		Body:  []dom.Node{app, notice},
		Scripts: []render.ScriptTag{
			{Src: WasmExecFile},
			{Inline: bootScript},
		},
	}, nil
}

// WriteIndex renders page to path.
func WriteIndex(path string, page render.Page) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = render.NewRenderer(render.Config{Pretty: true}).RenderPage(f, page)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
