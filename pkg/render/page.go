package render

import (
	"bytes"
	"io"

	"github.com/eltkit/elt/dom"
)

// Page contains everything needed to render a complete HTML document.
type Page struct {
	// Title is the page title.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	// Meta contains meta tags written after charset and viewport.
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS.
	Styles []string

	// Head contains extra nodes appended to the head.
	Head []dom.Node

	// Body contains the body content. The sanitize policy applies here
	// only.
	Body []dom.Node

	// Scripts are written in the head when deferred or async, and at the
	// end of the body otherwise.
	Scripts []ScriptTag
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string
	Property string
	Content  string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string
	Type   string
	Defer  bool
	Async  bool
	Inline string
}

// RenderPage renders a complete HTML document to w.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	if err := r.renderDocumentHead(w, page); err != nil {
		return err
	}
	return r.renderDocumentBody(w, page)
}

// RenderPageString renders a complete HTML document.
func (r *Renderer) RenderPageString(page Page) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderPage(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) renderDocumentHead(w io.Writer, page Page) error {
	if r.err != nil {
		return r.err
	}
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	hw := &htmlWriter{w: w}
	hw.str("<!DOCTYPE html>\n")
	hw.str(`<html lang="` + EscapeAttr(lang) + `">` + "\n")
	hw.str("<head>\n")
	hw.str(`  <meta charset="utf-8">` + "\n")
	hw.str(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	if page.Title != "" {
		hw.str("  <title>" + EscapeText(page.Title) + "</title>\n")
	}
	for _, m := range page.Meta {
		hw.str("  <meta")
		if m.Name != "" {
			hw.str(` name="` + EscapeAttr(m.Name) + `"`)
		}
		if m.Property != "" {
			hw.str(` property="` + EscapeAttr(m.Property) + `"`)
		}
		hw.str(` content="` + EscapeAttr(m.Content) + `">` + "\n")
	}
	for _, href := range page.StyleSheets {
		hw.str(`  <link rel="stylesheet" href="` + EscapeAttr(href) + `">` + "\n")
	}
	for _, css := range page.Styles {
		hw.str("  <style>" + css + "</style>\n")
	}
	for _, n := range page.Head {
		hw.str("  ")
		r.renderNode(hw, n, 1, false)
		hw.str("\n")
	}
	for _, s := range page.Scripts {
		if s.Defer || s.Async {
			renderScriptTag(hw, s)
		}
	}
	hw.str("</head>\n")
	return hw.err
}

func (r *Renderer) renderDocumentBody(w io.Writer, page Page) error {
	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}
	if err := r.renderNodes(w, page.Body, 0); err != nil {
		return err
	}
	if !r.config.Pretty && len(page.Body) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	hw := &htmlWriter{w: w}
	for _, s := range page.Scripts {
		if !s.Defer && !s.Async {
			renderScriptTag(hw, s)
		}
	}
	hw.str("</body>\n</html>\n")
	return hw.err
}

func renderScriptTag(hw *htmlWriter, s ScriptTag) {
	hw.str("  <script")
	if s.Src != "" {
		hw.str(` src="` + EscapeAttr(s.Src) + `"`)
	}
	if s.Type != "" {
		hw.str(` type="` + EscapeAttr(s.Type) + `"`)
	}
	if s.Defer {
		hw.str(" defer")
	}
	if s.Async {
		hw.str(" async")
	}
	hw.str(">")
	hw.str(escapeRawText("script", s.Inline))
	hw.str("</script>\n")
}
