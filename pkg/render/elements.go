package render

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// voidElements have no closing tag and never have children.
var voidElements = set(
	"area", "base", "br", "col", "embed", "hr", "img",
	"input", "link", "meta", "source", "track", "wbr",
)

// IsVoidElement reports whether tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// rawTextElements hold text that is written without escaping.
var rawTextElements = set("script", "style")

// preformatted elements keep their whitespace in pretty mode.
var preformatted = set("pre", "textarea")

// inlineElements stay on their parent's line in pretty mode.
var inlineElements = set(
	"a", "abbr", "b", "br", "cite", "code", "em", "i", "kbd", "label", "mark",
	"q", "s", "small", "span", "strong", "sub", "sup", "time", "u", "wbr",
)

// booleanAttrs are written bare when their value is empty or repeats the
// attribute name.
var booleanAttrs = set(
	"allowfullscreen", "async", "autofocus", "autoplay", "checked", "controls",
	"default", "defer", "disabled", "hidden", "loop", "multiple", "muted",
	"nomodule", "novalidate", "open", "readonly", "required", "reversed",
	"selected",
)
