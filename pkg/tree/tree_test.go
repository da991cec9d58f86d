package tree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eltkit/elt"
	"github.com/eltkit/elt/dom"
	"github.com/eltkit/elt/dom/memdom"
	elterrors "github.com/eltkit/elt/internal/errors"
	"github.com/google/go-cmp/cmp"
)

const counterYAML = `tag: div
props:
  id: counter
  class: box
  data-step: 1
children:
  - tag: button
    props:
      type: button
      onclick: increment
    children: ["+1"]
  - " "
  - {tag: span, props: {id: value}, children: [0]}
  - ~
`

func TestParse(t *testing.T) {
	root, err := Parse([]byte(counterYAML), "counter.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Tag != "div" || root.Line != 1 {
		t.Errorf("root = %s at line %d", root, root.Line)
	}

	want := []Prop{
		{Key: "id", Value: "counter", Line: 3},
		{Key: "class", Value: "box", Line: 4},
		{Key: "data-step", Value: "1", Line: 5},
	}
	if diff := cmp.Diff(want, root.Props); diff != "" {
		t.Errorf("props mismatch (-want +got):\n%s", diff)
	}

	if len(root.Children) != 3 {
		t.Fatalf("children = %d, want 3 (null skipped)", len(root.Children))
	}
	btn := root.Children[0]
	if btn.Tag != "button" || btn.Line != 7 {
		t.Errorf("button = %s at line %d", btn, btn.Line)
	}
	if !root.Children[1].IsText() || root.Children[1].Text != " " {
		t.Errorf("second child = %s, want text \" \"", root.Children[1])
	}
	if got := root.Children[2].Children[0].Text; got != "0" {
		t.Errorf("span text = %q, want 0", got)
	}
	if root.Source != "counter.yaml" || btn.Source != "counter.yaml" {
		t.Errorf("Source not propagated")
	}
}

func TestParseJSON(t *testing.T) {
	root, err := Parse([]byte(`{"tag": "p", "props": {"title": "t"}, "text": "hi"}`), "p.json")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Tag != "p" || len(root.Children) != 1 || root.Children[0].Text != "hi" {
		t.Errorf("root = %s, children %v", root, root.Children)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code string
		line int
	}{
		{"empty", "  \n", CodeInvalidFile, 0},
		{"syntax", "tag: [div", CodeInvalidFile, 0},
		{"scalar root", "hello", CodeInvalidNode, 1},
		{"sequence root", "- tag: div", CodeInvalidNode, 1},
		{"missing tag", "props: {id: x}", CodeInvalidNode, 1},
		{"unknown field", "tag: div\nattrs: {}", CodeInvalidNode, 2},
		{"props not mapping", "tag: div\nprops: [a]", CodeInvalidNode, 2},
		{"nested prop value", "tag: div\nprops:\n  id: {a: b}", CodeInvalidNode, 3},
		{"children not sequence", "tag: div\nchildren: x", CodeInvalidNode, 2},
		{"nested child sequence", "tag: div\nchildren:\n  - [a]", CodeInvalidNode, 3},
		{"empty tag", "tag: ''", CodeInvalidNode, 1},
		{"recursive alias", "&root\ntag: div\nchildren:\n  - *root\n", CodeInvalidNode, 4},
		{"nested recursive alias", "tag: div\nchildren:\n  - &inner\n    tag: p\n    children: [{tag: b, children: [*inner]}]\n", CodeInvalidNode, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in), "bad.yaml")
			if err == nil {
				t.Fatal("expected error")
			}
			var e *elterrors.Error
			if !errors.As(err, &e) {
				t.Fatalf("error %T is not *errors.Error", err)
			}
			if e.Code != tt.code {
				t.Errorf("code = %s, want %s (%v)", e.Code, tt.code, err)
			}
			if tt.line > 0 && (e.Location == nil || e.Location.Line != tt.line) {
				t.Errorf("location = %v, want line %d", e.Location, tt.line)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	doc := memdom.NewDocument()
	b := elt.New(elt.WithDocument(doc))

	root, err := Parse([]byte(counterYAML), "counter.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	count := 0
	node, err := root.Build(b, Actions{"increment": func(dom.Event) { count++ }})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	el := node.(dom.Element)
	if err := doc.Body().AppendChild(el); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}

	want := []dom.Attribute{
		{Name: "id", Value: "counter"},
		{Name: "class", Value: "box"},
		{Name: "data-step", Value: "1"},
	}
	if diff := cmp.Diff(want, el.Attributes()); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
	if got := el.TextContent(); got != "+1 0" {
		t.Errorf("TextContent = %q, want %q", got, "+1 0")
	}

	btn := el.FirstElementChild()
	if btn.HasAttribute("onclick") {
		t.Error("onclick must not become an attribute")
	}
	btn.DispatchEvent(doc.NewEvent("click", dom.EventInit{Bubbles: true}))
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if doc.GetElementByID("value") == nil {
		t.Error("span#value not found")
	}
}

func TestBuild_UnresolvedEventIsShapeMismatch(t *testing.T) {
	b := elt.New(elt.WithDocument(memdom.NewDocument()))
	root, err := Parse([]byte("tag: div\nchildren:\n  - tag: button\n    props:\n      onclick: go\n"), "x.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	_, err = root.Build(b, nil)
	if !errors.Is(err, elt.ErrPropertyShapeMismatch) {
		t.Fatalf("err = %v, want ErrPropertyShapeMismatch", err)
	}
	var e *elterrors.Error
	errors.As(err, &e)
	if e.Location == nil || e.Location.Line != 3 {
		t.Errorf("location = %v, want line 3", e.Location)
	}
}

func TestBuild_UnknownAction(t *testing.T) {
	b := elt.New(elt.WithDocument(memdom.NewDocument()))
	root, err := Parse([]byte("tag: button\nprops:\n  onclick: launch\n"), "x.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	_, err = root.Build(b, Actions{"reset": func(dom.Event) {}, "increment": func(dom.Event) {}})
	var e *elterrors.Error
	if !errors.As(err, &e) || e.Code != CodeUnknownAction {
		t.Fatalf("err = %v, want %s", err, CodeUnknownAction)
	}
	if e.Location == nil || e.Location.Line != 3 {
		t.Errorf("location = %v, want line 3", e.Location)
	}
	if !strings.Contains(e.Suggestion, "increment, reset") {
		t.Errorf("suggestion = %q", e.Suggestion)
	}
}

func TestBuild_InvalidTag(t *testing.T) {
	b := elt.New(elt.WithDocument(memdom.NewDocument()))
	root, err := Parse([]byte("tag: div\nchildren:\n  - tag: 'not valid'\n"), "x.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := root.Build(b, nil); !errors.Is(err, elt.ErrRejectedOperation) {
		t.Errorf("err = %v, want ErrRejectedOperation", err)
	}
}

func TestParse_SharedAlias(t *testing.T) {
	in := "tag: ul\nchildren:\n  - &item {tag: li, children: [x]}\n  - *item\n"
	root, err := Parse([]byte(in), "list.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Children) != 2 || root.Children[1].Tag != "li" {
		t.Errorf("children = %v", root.Children)
	}
}

func TestBuild_FailureReleasesListeners(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"later sibling fails", "tag: div\nchildren:\n  - {tag: button, props: {onclick: inc}}\n  - {tag: 1bad}\n"},
		{"nested listeners", "tag: div\nchildren:\n  - tag: section\n    props: {onfocus: inc}\n    children:\n      - {tag: button, props: {onclick: inc}}\n  - {tag: 1bad}\n"},
		{"parent fails", "tag: div\nprops: {'bad name': x}\nchildren:\n  - {tag: button, props: {onclick: inc}}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := elt.New(elt.WithDocument(memdom.NewDocument()))
			root, err := Parse([]byte(tt.in), "x.yaml")
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			node, err := root.Build(b, Actions{"inc": func(dom.Event) {}})
			if !errors.Is(err, elt.ErrRejectedOperation) {
				t.Errorf("err = %v, want ErrRejectedOperation", err)
			}
			if node != nil {
				t.Error("Build returned a node alongside the error")
			}
			if n := b.Registry().Len(); n != 0 {
				t.Errorf("registry holds %d listeners after a failed build, want 0", n)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	if err := os.WriteFile(path, []byte("tag: p\ntext: loaded\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	root, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if root.Source != path || root.Children[0].Text != "loaded" {
		t.Errorf("root = %s from %s", root, root.Source)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var e *elterrors.Error
	if !errors.As(err, &e) || e.Code != CodeInvalidFile {
		t.Errorf("err = %v, want %s", err, CodeInvalidFile)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v should wrap os.ErrNotExist", err)
	}
}

func TestActionNames(t *testing.T) {
	root, err := Parse([]byte(`tag: form
props: {onsubmit: save}
children:
  - {tag: button, props: {onclick: save}}
  - {tag: input, props: {oninput: validate, name: email}}
`), "form.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"save", "validate"}, root.ActionNames()); diff != "" {
		t.Errorf("ActionNames mismatch (-want +got):\n%s", diff)
	}
}
