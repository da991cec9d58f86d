package render

import "strings"

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\u00a0", "&nbsp;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"<", "&lt;",
		">", "&gt;",
		"\u00a0", "&nbsp;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// EscapeText escapes s for use as element content.
func EscapeText(s string) string { return textEscaper.Replace(s) }

// EscapeAttr escapes s for use inside a double-quoted attribute value.
func EscapeAttr(s string) string { return attrEscaper.Replace(s) }

// escapeRawText stops script and style content from closing its element
// early. "<\/" means the same in JavaScript strings and CSS.
func escapeRawText(tag, s string) string {
	if !rawTextElements[tag] {
		return s
	}
	return strings.ReplaceAll(s, "</", `<\/`)
}
