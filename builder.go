package elt

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/eltkit/elt/dom"
	"github.com/eltkit/elt/internal/errors"
)

// Builder constructs DOM elements. The zero value is not usable; create
// one with New.
type Builder struct {
	doc      dom.Document
	registry *Registry
	observer Observer
	logger   *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithDocument binds the builder to doc instead of dom.Current.
func WithDocument(doc dom.Document) Option {
	return func(b *Builder) {
		b.doc = doc
	}
}

// WithRegistry sets the registry that retains listeners.
func WithRegistry(r *Registry) Option {
	return func(b *Builder) {
		if r != nil {
			b.registry = r
		}
	}
}

// WithObserver sets an observer for build events.
func WithObserver(o Observer) Option {
	return func(b *Builder) {
		if o != nil {
			b.observer = o
		}
	}
}

// WithLogger sets the logger. Builders log at debug level on success and
// at warn level on failure.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		registry: NewRegistry(),
		observer: nopObserver{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry returns the registry holding this builder's listeners.
func (b *Builder) Registry() *Registry { return b.registry }

// Document returns the bound document, falling back to dom.Current.
func (b *Builder) Document() (dom.Document, error) {
	if b.doc != nil {
		return b.doc, nil
	}
	if doc, ok := dom.Current(); ok {
		return doc, nil
	}
	return nil, errors.New(errors.CodeMissingContext).
		WithSuggestion("Import github.com/eltkit/elt/dom/jsdom in a js/wasm program, or pass elt.WithDocument")
}

// Build creates a tag element, applies props in order and appends children
// in order.
//
// Props are checked before anything is created. A child that is a dom.Node
// is appended as is; []dom.Node and []dom.Element are appended element by
// element; nil is skipped; any other value becomes a text node holding
// fmt.Sprint(value).
//
// On error no element is returned and listeners already registered for it
// are removed.
func (b *Builder) Build(tag string, props Props, children ...any) (dom.Element, error) {
	el, err := b.build(tag, props, children)
	if err != nil {
		code := ""
		if e, ok := err.(*errors.Error); ok {
			code = e.Code
		}
		b.observer.BuildFailed(tag, code)
		b.logger.Warn("element build failed", "tag", tag, "code", code, "error", err)
		return nil, err
	}
	b.observer.ElementBuilt(tag, len(props), len(children))
	b.logger.Debug("element built", "tag", tag, "props", len(props), "children", len(children))
	return el, nil
}

func (b *Builder) build(tag string, props Props, children []any) (dom.Element, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}

	doc, err := b.Document()
	if err != nil {
		return nil, err
	}

	el, err := doc.CreateElement(tag)
	if err != nil {
		return nil, rejected(err, "createElement(%q)", tag)
	}

	var subs []dom.Subscription
	rollback := func() {
		for _, s := range subs {
			s.Remove()
		}
	}

	for _, p := range props {
		switch p.Value.kind {
		case KindCallback:
			sub, err := el.AddEventListener(p.EventName(), p.Value.handler)
			if err != nil {
				rollback()
				return nil, rejected(err, "addEventListener(%q) on <%s>", p.EventName(), tag)
			}
			subs = append(subs, sub)
		case KindAttr:
			if err := el.SetAttribute(p.Key, p.Value.text); err != nil {
				rollback()
				return nil, rejected(err, "setAttribute(%q) on <%s>", p.Key, tag)
			}
		}
	}

	for i, child := range children {
		if err := b.appendChild(doc, el, child); err != nil {
			rollback()
			return nil, rejected(err, "appendChild #%d on <%s>", i, tag)
		}
	}

	b.registry.track(el, subs)
	for _, s := range subs {
		b.observer.ListenerRegistered(s.Type())
	}
	return el, nil
}

func (b *Builder) appendChild(doc dom.Document, el dom.Element, child any) error {
	switch c := child.(type) {
	case nil:
		return nil
	case dom.Node:
		return el.AppendChild(c)
	case []dom.Node:
		for _, n := range c {
			if n == nil {
				continue
			}
			if err := el.AppendChild(n); err != nil {
				return err
			}
		}
		return nil
	case []dom.Element:
		for _, n := range c {
			if n == nil {
				continue
			}
			if err := el.AppendChild(n); err != nil {
				return err
			}
		}
		return nil
	default:
		return el.AppendChild(doc.CreateTextNode(textOf(child)))
	}
}

// Elt is Build with props and children mixed in one argument list: Prop
// and Props arguments are collected as props in order, everything else is
// a child.
func (b *Builder) Elt(tag string, args ...any) (dom.Element, error) {
	var props Props
	var children []any
	for _, arg := range args {
		switch v := arg.(type) {
		case Prop:
			props = append(props, v)
		case Props:
			props = append(props, v...)
		default:
			children = append(children, arg)
		}
	}
	return b.Build(tag, props, children...)
}

// Text creates a standalone text node holding fmt.Sprint(v).
func (b *Builder) Text(v any) (dom.Text, error) {
	doc, err := b.Document()
	if err != nil {
		return nil, err
	}
	return doc.CreateTextNode(textOf(v)), nil
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild(tag string, props Props, children ...any) dom.Element {
	el, err := b.Build(tag, props, children...)
	if err != nil {
		panic(err)
	}
	return el
}

// MustElt is Elt that panics on error.
func (b *Builder) MustElt(tag string, args ...any) dom.Element {
	el, err := b.Elt(tag, args...)
	if err != nil {
		panic(err)
	}
	return el
}

// MustText is Text that panics on error.
func (b *Builder) MustText(v any) dom.Text {
	t, err := b.Text(v)
	if err != nil {
		panic(err)
	}
	return t
}

func textOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func rejected(cause error, format string, args ...any) *errors.Error {
	return errors.New(errors.CodeRejected).WithDetailf(format, args...).Wrap(cause)
}

var (
	defaultMu      sync.RWMutex
	defaultBuilder = New()
)

// Default returns the package-level builder, bound to dom.Current.
func Default() *Builder {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultBuilder
}

// SetDefault replaces the package-level builder and returns the previous
// one.
func SetDefault(b *Builder) *Builder {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultBuilder
	defaultBuilder = b
	return prev
}

// Build calls Build on the default builder.
func Build(tag string, props Props, children ...any) (dom.Element, error) {
	return Default().Build(tag, props, children...)
}

// MustBuild calls MustBuild on the default builder.
func MustBuild(tag string, props Props, children ...any) dom.Element {
	return Default().MustBuild(tag, props, children...)
}

// Elt calls Elt on the default builder.
func Elt(tag string, args ...any) (dom.Element, error) {
	return Default().Elt(tag, args...)
}

// MustElt calls MustElt on the default builder.
func MustElt(tag string, args ...any) dom.Element {
	return Default().MustElt(tag, args...)
}

// Text calls Text on the default builder.
func Text(v any) (dom.Text, error) {
	return Default().Text(v)
}

// MustText calls MustText on the default builder.
func MustText(v any) dom.Text {
	return Default().MustText(v)
}
