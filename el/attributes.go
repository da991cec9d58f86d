package el

import (
	"strings"

	"github.com/eltkit/elt"
)

func attr(name string, value any) elt.Prop { return elt.P(name, elt.Attr(value)) }

// Attr sets any attribute.
func Attr(name string, value any) elt.Prop { return attr(name, value) }

// Global attributes

func ID(id string) elt.Prop { return attr("id", id) }

// Class joins classes with spaces, skipping empty ones.
func Class(classes ...string) elt.Prop {
	kept := classes[:0:0]
	for _, c := range classes {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return attr("class", strings.Join(kept, " "))
}

// StyleAttr sets the style attribute (Style is the element).
func StyleAttr(style string) elt.Prop { return attr("style", style) }

// TitleAttr sets the title attribute (Title is the element).
func TitleAttr(title string) elt.Prop { return attr("title", title) }

// Data sets a data-* attribute: Data("id", "7") is data-id="7".
func Data(key string, value any) elt.Prop { return attr("data-"+key, value) }

func Role(role string) elt.Prop       { return attr("role", role) }
func AriaLabel(label string) elt.Prop { return attr("aria-label", label) }
func TabIndex(i int) elt.Prop         { return attr("tabindex", i) }
func Lang(lang string) elt.Prop       { return attr("lang", lang) }

// Links and media

func Href(url string) elt.Prop      { return attr("href", url) }
func Target(target string) elt.Prop { return attr("target", target) }
func Rel(rel string) elt.Prop       { return attr("rel", rel) }
func Src(url string) elt.Prop       { return attr("src", url) }
func Alt(text string) elt.Prop      { return attr("alt", text) }
func Width(w int) elt.Prop          { return attr("width", w) }
func Height(h int) elt.Prop         { return attr("height", h) }

// Forms

func Type(t string) elt.Prop          { return attr("type", t) }
func Name(name string) elt.Prop       { return attr("name", name) }
func Value(v any) elt.Prop            { return attr("value", v) }
func Placeholder(p string) elt.Prop   { return attr("placeholder", p) }
func For(id string) elt.Prop          { return attr("for", id) }
func Action(url string) elt.Prop      { return attr("action", url) }
func Method(m string) elt.Prop        { return attr("method", m) }
func Charset(charset string) elt.Prop { return attr("charset", charset) }
func Content(c string) elt.Prop       { return attr("content", c) }

// Boolean attributes are present with an empty value.

func Disabled() elt.Prop  { return attr("disabled", "") }
func Checked() elt.Prop   { return attr("checked", "") }
func Required() elt.Prop  { return attr("required", "") }
func Readonly() elt.Prop  { return attr("readonly", "") }
func Hidden() elt.Prop    { return attr("hidden", "") }
func Autofocus() elt.Prop { return attr("autofocus", "") }
