package tree

import (
	"sort"
	"strings"

	"github.com/eltkit/elt"
	"github.com/eltkit/elt/dom"
	"github.com/eltkit/elt/internal/errors"
)

// Actions maps the action names used by event props to callbacks.
type Actions map[string]func(dom.Event)

// Names returns the action names in sorted order.
func (a Actions) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates the DOM tree for n with b.
//
// Event props resolve through actions. With nil actions event props are
// passed on as attributes, which the builder rejects as a shape mismatch;
// with non-nil actions an unknown name fails with CodeUnknownAction.
// Errors carry the file location of the offending node.
func (n *Node) Build(b *elt.Builder, actions Actions) (dom.Node, error) {
	if n.IsText() {
		return b.Text(n.Text)
	}

	props := make(elt.Props, 0, len(n.Props))
	for _, p := range n.Props {
		v, err := n.propValue(p, actions)
		if err != nil {
			return nil, err
		}
		props = append(props, elt.P(p.Key, v))
	}

	children := make([]any, 0, len(n.Children))
	for _, c := range n.Children {
		child, err := c.Build(b, actions)
		if err != nil {
			release(b, children)
			return nil, err
		}
		children = append(children, child)
	}

	el, err := b.Build(n.Tag, props, children...)
	if err != nil {
		release(b, children)
		if e, ok := err.(*errors.Error); ok && e.Location == nil {
			e.WithLocation(n.Source, n.Line, n.Column)
		}
		return nil, err
	}
	return el, nil
}

// release removes the listeners registered by b on the already built
// subtrees of a node whose build failed.
func release(b *elt.Builder, built []any) {
	var walk func(dom.Node)
	walk = func(n dom.Node) {
		if el, ok := n.(dom.Element); ok {
			b.Registry().Release(el)
		}
		for _, c := range n.ChildNodes() {
			walk(c)
		}
	}
	for _, c := range built {
		if n, ok := c.(dom.Node); ok && n != nil {
			walk(n)
		}
	}
}

func (n *Node) propValue(p Prop, actions Actions) (elt.PropValue, error) {
	if !strings.HasPrefix(p.Key, elt.EventPrefix) || actions == nil {
		return elt.Attr(p.Value), nil
	}
	fn, ok := actions[p.Value]
	if !ok {
		e := errors.New(CodeUnknownAction).
			WithDetailf("prop %q names action %q", p.Key, p.Value).
			WithLocation(n.Source, p.Line, 0)
		if names := actions.Names(); len(names) > 0 {
			e.WithSuggestion("Known actions: " + strings.Join(names, ", "))
		}
		return elt.PropValue{}, e
	}
	return elt.Callback(fn), nil
}

// ActionNames returns the action names used by event props in the tree
// rooted at n, sorted and without duplicates.
func (n *Node) ActionNames() []string {
	seen := make(map[string]bool)
	var walk func(*Node)
	walk = func(n *Node) {
		for _, p := range n.Props {
			if strings.HasPrefix(p.Key, elt.EventPrefix) {
				seen[p.Value] = true
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
