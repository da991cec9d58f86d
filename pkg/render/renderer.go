package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/eltkit/elt/dom"
	"github.com/microcosm-cc/bluemonday"
)

// Sanitize policy names accepted by Config.Sanitize.
const (
	SanitizeNone   = ""
	SanitizeUGC    = "ugc"
	SanitizeStrict = "strict"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty puts block elements on their own lines, indented.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string

	// Sanitize names the bluemonday policy applied to rendered content.
	Sanitize string
}

// Renderer serialises DOM trees. A Renderer holds no per-render state and
// may be reused.
type Renderer struct {
	config Config
	policy *bluemonday.Policy
	err    error
}

// NewRenderer creates a Renderer. An unknown Sanitize policy is reported
// by the first render call.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	r := &Renderer{config: config}
	r.policy, r.err = Policy(config.Sanitize)
	return r
}

// Policy returns the bluemonday policy for name, or nil for SanitizeNone.
func Policy(name string) (*bluemonday.Policy, error) {
	switch strings.ToLower(name) {
	case SanitizeNone:
		return nil, nil
	case SanitizeUGC:
		return bluemonday.UGCPolicy(), nil
	case SanitizeStrict:
		return bluemonday.StrictPolicy(), nil
	default:
		return nil, fmt.Errorf("render: unknown sanitize policy %q (want %q or %q)", name, SanitizeUGC, SanitizeStrict)
	}
}

// RenderToString renders a node and its descendants.
func (r *Renderer) RenderToString(node dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter renders a node and its descendants to w.
func (r *Renderer) RenderToWriter(w io.Writer, node dom.Node) error {
	return r.renderNodes(w, []dom.Node{node}, 0)
}

// renderNodes renders nodes and applies the sanitize policy to the result.
func (r *Renderer) renderNodes(w io.Writer, nodes []dom.Node, depth int) error {
	if r.err != nil {
		return r.err
	}
	if r.policy == nil {
		hw := &htmlWriter{w: w}
		for _, n := range nodes {
			r.renderNode(hw, n, depth, r.config.Pretty)
		}
		return hw.err
	}

	var buf bytes.Buffer
	hw := &htmlWriter{w: &buf}
	for _, n := range nodes {
		r.renderNode(hw, n, depth, r.config.Pretty)
	}
	if hw.err != nil {
		return hw.err
	}
	_, err := r.policy.SanitizeReader(&buf).WriteTo(w)
	return err
}

// renderNode writes n. When line is set the node sits on its own indented
// line.
func (r *Renderer) renderNode(w *htmlWriter, n dom.Node, depth int, line bool) {
	if n == nil {
		return
	}
	switch n.NodeType() {
	case dom.ElementNode:
		el, ok := n.(dom.Element)
		if !ok {
			w.fail(fmt.Errorf("render: element node %T does not implement dom.Element", n))
			return
		}
		r.renderElement(w, el, depth, line)
	case dom.TextNode:
		r.renderText(w, n.TextContent(), depth, line)
	case dom.CommentNode:
		if line {
			r.indent(w, depth)
		}
		w.str("<!--")
		w.str(strings.ReplaceAll(n.TextContent(), "--", "- -"))
		w.str("-->")
		if line {
			w.str("\n")
		}
	case dom.DocumentNode:
		for _, c := range n.ChildNodes() {
			r.renderNode(w, c, depth, line)
		}
	default:
		w.fail(fmt.Errorf("render: unsupported node type %v", n.NodeType()))
	}
}

func (r *Renderer) renderText(w *htmlWriter, text string, depth int, line bool) {
	if !line {
		w.str(EscapeText(text))
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	r.indent(w, depth)
	w.str(EscapeText(text))
	w.str("\n")
}

func (r *Renderer) renderElement(w *htmlWriter, el dom.Element, depth int, line bool) {
	tag := dom.LocalName(el)

	if line {
		r.indent(w, depth)
	}
	w.str("<")
	w.str(tag)
	r.renderAttributes(w, el)
	w.str(">")

	if voidElements[tag] {
		if line {
			w.str("\n")
		}
		return
	}

	if rawTextElements[tag] {
		w.str(escapeRawText(tag, el.TextContent()))
	} else {
		children := el.ChildNodes()
		block := r.config.Pretty && !preformatted[tag] && !inlineElements[tag] && hasBlockChild(children)
		if block {
			w.str("\n")
		}
		for _, c := range children {
			r.renderNode(w, c, depth+1, block)
		}
		if block {
			r.indent(w, depth)
		}
	}

	w.str("</")
	w.str(tag)
	w.str(">")
	if line {
		w.str("\n")
	}
}

// renderAttributes writes attributes in element order.
func (r *Renderer) renderAttributes(w *htmlWriter, el dom.Element) {
	for _, a := range el.Attributes() {
		w.str(" ")
		w.str(a.Name)
		if booleanAttrs[a.Name] && (a.Value == "" || strings.EqualFold(a.Value, a.Name)) {
			continue
		}
		w.str(`="`)
		w.str(EscapeAttr(a.Value))
		w.str(`"`)
	}
}

func hasBlockChild(children []dom.Node) bool {
	for _, c := range children {
		if el, ok := c.(dom.Element); ok && !inlineElements[dom.LocalName(el)] {
			return true
		}
	}
	return false
}

func (r *Renderer) indent(w *htmlWriter, depth int) {
	if depth > 0 {
		w.str(strings.Repeat(r.config.Indent, depth))
	}
}

// htmlWriter remembers the first write error and drops later writes.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) str(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) fail(err error) {
	if hw.err == nil {
		hw.err = err
	}
}
