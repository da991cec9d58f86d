// Package render serialises DOM trees to HTML.
//
// Any dom.Node can be rendered, which in practice means trees built with
// elt on a dom/memdom document:
//
//	doc := memdom.NewDocument()
//	b := elt.New(elt.WithDocument(doc))
//	node := b.MustElt("p", elt.P("class", elt.Attr("lead")), "Hello")
//
//	html, err := render.NewRenderer(render.Config{}).RenderToString(node)
//	// <p class="lead">Hello</p>
//
// Output follows the HTML5 serialisation rules: text and attribute values
// are escaped, void elements have no closing tag, boolean attributes are
// written bare, and script and style content is written raw.
//
// # Pages
//
// RenderPage wraps body content in a complete document with a doctype, a
// head carrying title, meta, stylesheets and scripts, and a body.
//
// # Sanitising
//
// Config.Sanitize runs rendered body content through a bluemonday policy:
// "ugc" keeps safe formatting markup, "strict" keeps text only. Event
// listeners are never serialised, so a sanitised page has no behaviour.
package render
