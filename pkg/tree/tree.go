package tree

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eltkit/elt/internal/errors"
)

// Codes reported by this package.
const (
	CodeInvalidFile   = "E140"
	CodeInvalidNode   = "E141"
	CodeUnknownAction = "E142"
)

// Node is one element or text node of a tree file.
type Node struct {
	// Tag is empty for text nodes.
	Tag      string
	Props    []Prop
	Children []*Node
	Text     string

	// Source is the file the node was read from.
	Source string
	Line   int
	Column int
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n.Tag == "" }

// Prop is one entry of a node's props mapping.
type Prop struct {
	Key   string
	Value string
	Line  int
}

// Load reads and parses a tree file.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(CodeInvalidFile).
			WithDetailf("cannot read %s", path).
			Wrap(err)
	}
	return Parse(data, path)
}

// Parse parses a tree document. source names the document in errors and
// is read again for context lines when it is a file path.
func Parse(data []byte, source string) (*Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New(CodeInvalidFile).WithDetailf("%s is empty", source)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(CodeInvalidFile).
			WithDetailf("cannot parse %s", source).
			Wrap(err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, errors.New(CodeInvalidFile).WithDetailf("%s holds no tree", source)
	}

	p := parser{source: source, open: make(map[*yaml.Node]bool)}
	root, err := p.node(doc.Content[0])
	if err != nil {
		return nil, err
	}
	if root == nil || root.IsText() {
		return nil, p.fail(doc.Content[0], "the root must be an element mapping with a tag")
	}
	return root, nil
}

type parser struct {
	source string
	// open holds the mappings being converted, so an alias pointing back
	// at one of them is caught instead of recursing forever.
	open map[*yaml.Node]bool
}

func (p *parser) fail(n *yaml.Node, format string, args ...any) *errors.Error {
	return errors.New(CodeInvalidNode).
		WithDetailf(format, args...).
		WithLocation(p.source, n.Line, n.Column)
}

// node converts n. It returns nil for null scalars.
func (p *parser) node(n *yaml.Node) (*Node, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if p.open[n.Alias] {
			return nil, p.fail(n, "recursive alias *%s", n.Value)
		}
		return p.node(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return &Node{Text: n.Value, Source: p.source, Line: n.Line, Column: n.Column}, nil
	case yaml.MappingNode:
		return p.element(n)
	default:
		return nil, p.fail(n, "a node must be a mapping or a scalar, got a sequence")
	}
}

func (p *parser) element(n *yaml.Node) (*Node, error) {
	p.open[n] = true
	defer delete(p.open, n)

	out := &Node{Source: p.source, Line: n.Line, Column: n.Column}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "tag":
			if val.Kind != yaml.ScalarNode || val.Value == "" {
				return nil, p.fail(val, "tag must be a non-empty string")
			}
			out.Tag = val.Value
		case "props":
			props, err := p.props(val)
			if err != nil {
				return nil, err
			}
			out.Props = props
		case "children":
			children, err := p.children(val)
			if err != nil {
				return nil, err
			}
			out.Children = children
		case "text":
			if val.Kind != yaml.ScalarNode {
				return nil, p.fail(val, "text must be a scalar")
			}
			out.Children = append(out.Children, &Node{Text: val.Value, Source: p.source, Line: val.Line, Column: val.Column})
		default:
			return nil, p.fail(key, "unknown field %q (want tag, props, children or text)", key.Value)
		}
	}
	if out.Tag == "" {
		return nil, p.fail(n, "element has no tag")
	}
	return out, nil
}

func (p *parser) props(n *yaml.Node) ([]Prop, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, p.fail(n, "props must be a mapping")
	}
	props := make([]Prop, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind == yaml.AliasNode {
			val = val.Alias
		}
		if val.Kind != yaml.ScalarNode {
			return nil, p.fail(val, "prop %q must have a scalar value", key.Value)
		}
		value := val.Value
		if val.Tag == "!!null" {
			value = ""
		}
		props = append(props, Prop{Key: key.Value, Value: value, Line: key.Line})
	}
	return props, nil
}

func (p *parser) children(n *yaml.Node) ([]*Node, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, p.fail(n, "children must be a sequence")
	}
	out := make([]*Node, 0, len(n.Content))
	for _, c := range n.Content {
		child, err := p.node(c)
		if err != nil {
			return nil, err
		}
		if child != nil {
			out = append(out, child)
		}
	}
	return out, nil
}

// String returns a short description used in logs.
func (n *Node) String() string {
	if n.IsText() {
		return fmt.Sprintf("text %q", n.Text)
	}
	return fmt.Sprintf("<%s> with %d props and %d children", n.Tag, len(n.Props), len(n.Children))
}
