package elt

import (
	"errors"
	"strings"
	"testing"

	"github.com/eltkit/elt/dom"
	"github.com/google/go-cmp/cmp"
)

func TestAttr(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"text", "text"},
		{"", ""},
		{10, "10"},
		{true, "true"},
		{2.5, "2.5"},
	}
	for _, tt := range tests {
		v := Attr(tt.in)
		if v.Kind() != KindAttr {
			t.Errorf("Attr(%v).Kind() = %v, want Attr", tt.in, v.Kind())
		}
		if v.Text() != tt.want {
			t.Errorf("Attr(%v).Text() = %q, want %q", tt.in, v.Text(), tt.want)
		}
		if v.Handler() != nil {
			t.Errorf("Attr(%v) has a handler", tt.in)
		}
	}
}

func TestCallback(t *testing.T) {
	calls := 0
	v := Callback(func(dom.Event) { calls++ })
	if v.Kind() != KindCallback {
		t.Fatalf("Kind = %v, want Callback", v.Kind())
	}
	v.Handler()(nil)
	v.Handler()(nil)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}

	if got := Callback(nil).Kind(); got != KindInvalid {
		t.Errorf("Callback(nil).Kind() = %v, want Invalid", got)
	}
}

func TestPropValue_String(t *testing.T) {
	tests := []struct {
		v    PropValue
		want string
	}{
		{Attr("x"), `Attr("x")`},
		{Callback(func(dom.Event) {}), "Callback(func)"},
		{PropValue{}, "Invalid"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestProp_EventName(t *testing.T) {
	tests := []struct {
		key     string
		isEvent bool
		event   string
	}{
		{"onclick", true, "click"},
		{"onDOMContentLoaded", true, "DOMContentLoaded"},
		{"on", true, ""},
		{"class", false, "class"},
		{"Onclick", false, "Onclick"},
		{"one", true, "e"},
	}
	for _, tt := range tests {
		p := Prop{Key: tt.key}
		if got := p.IsEvent(); got != tt.isEvent {
			t.Errorf("%q.IsEvent() = %v, want %v", tt.key, got, tt.isEvent)
		}
		if got := p.EventName(); got != tt.event {
			t.Errorf("%q.EventName() = %q, want %q", tt.key, got, tt.event)
		}
	}
}

func TestProp_Check(t *testing.T) {
	fn := func(dom.Event) {}
	tests := []struct {
		name    string
		prop    Prop
		wantErr bool
		detail  string
	}{
		{"attr", P("id", Attr("x")), false, ""},
		{"callback", P("onclick", Callback(fn)), false, ""},
		{"attr under event key", P("onclick", Attr("x")), true, "needs a callback"},
		{"callback under plain key", P("id", Callback(fn)), true, "needs an attribute"},
		{"zero value", Prop{Key: "id"}, true, "has no value"},
		{"empty event name", P("on", Callback(fn)), true, "no event name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prop.Check()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrPropertyShapeMismatch) {
				t.Errorf("error = %v, want ErrPropertyShapeMismatch", err)
			}
			if !strings.Contains(err.Error(), tt.detail) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.detail)
			}
			if !strings.Contains(err.Error(), tt.prop.Key) {
				t.Errorf("error %q does not name key %q", err.Error(), tt.prop.Key)
			}
		})
	}
}

func TestProps_SetGet(t *testing.T) {
	var ps Props
	ps = ps.Set("id", Attr("a"))
	ps = ps.Set("class", Attr("b"))
	ps = ps.Set("id", Attr("c"))

	var keys []string
	for _, p := range ps {
		keys = append(keys, p.Key)
	}
	if diff := cmp.Diff([]string{"id", "class"}, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, ok := ps.Get("id"); !ok || v.Text() != "c" {
		t.Errorf("Get(id) = %v, %v; want c, true", v, ok)
	}
	if _, ok := ps.Get("missing"); ok {
		t.Error("Get(missing) should report false")
	}
}

func TestProps_Validate(t *testing.T) {
	fn := func(dom.Event) {}
	if err := (Props{}).Validate(); err != nil {
		t.Errorf("empty Validate() = %v", err)
	}
	ok := Props{P("id", Attr("x")), P("onclick", Callback(fn))}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	bad := Props{P("id", Attr("x")), P("title", Callback(fn)), P("onclick", Attr("y"))}
	err := bad.Validate()
	if err == nil || !strings.Contains(err.Error(), `"title"`) {
		t.Errorf("Validate() = %v, want first mismatch on title", err)
	}
}

func TestKind_String(t *testing.T) {
	for k, want := range map[Kind]string{KindInvalid: "Invalid", KindAttr: "Attr", KindCallback: "Callback", Kind(9): "Invalid"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
