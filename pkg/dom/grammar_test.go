package dom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	terrors "github.com/topus-dev/topus/internal/errors"
)

func renderAll(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = Render(n)
	}
	return out
}

func TestGroup(t *testing.T) {
	title := "Topus"

	tests := []struct {
		name         string
		items        []any
		wantAttrs    []Attribute
		wantChildren []string
	}{
		{
			name: "empty",
		},
		{
			name:      "bare name is a flag",
			items:     []any{"hidden"},
			wantAttrs: []Attribute{Flag("hidden")},
		},
		{
			name:      "flag then key value keeps order",
			items:     []any{"html", "style", Eq, "display:None"},
			wantAttrs: []Attribute{Flag("html"), KeyValue("style", "display:None")},
		},
		{
			name:      "repeated flags",
			items:     []any{"html", "html"},
			wantAttrs: []Attribute{Flag("html"), Flag("html")},
		},
		{
			name:      "repeated key values",
			items:     []any{"style", Eq, "display:None", "style", Eq, "display:None"},
			wantAttrs: []Attribute{KeyValue("style", "display:None"), KeyValue("style", "display:None")},
		},
		{
			name:      "hyphenated key is one attribute",
			items:     []any{"http", Dash, "equiv", Eq, "X-UA-Compatible", "content", Eq, "IE=edge"},
			wantAttrs: []Attribute{KeyValue("http-equiv", "X-UA-Compatible"), KeyValue("content", "IE=edge")},
		},
		{
			name:      "longer hyphen chain",
			items:     []any{"aria", Dash, "described", Dash, "by", Eq, "tip"},
			wantAttrs: []Attribute{KeyValue("aria-described-by", "tip")},
		},
		{
			name:      "dashed string used verbatim",
			items:     []any{"http-equiv", Eq, "refresh", "data-x"},
			wantAttrs: []Attribute{KeyValue("http-equiv", "refresh"), Flag("data-x")},
		},
		{
			name:      "value expressions are stringified",
			items:     []any{"tabindex", Eq, 3, "draggable", Eq, true, "title", Eq, title, "ratio", Eq, 1.5},
			wantAttrs: []Attribute{KeyValue("tabindex", "3"), KeyValue("draggable", "true"), KeyValue("title", "Topus"), KeyValue("ratio", "1.5")},
		},
		{
			name:      "value that looks like a name",
			items:     []any{"rel", Eq, "stylesheet", "defer"},
			wantAttrs: []Attribute{KeyValue("rel", "stylesheet"), Flag("defer")},
		},
		{
			name:      "Name token and Pair sugar",
			items:     []any{Name("async"), KV("src", "app.js"), Name("type"), Eq, "module"},
			wantAttrs: []Attribute{Flag("async"), KeyValue("src", "app.js"), KeyValue("type", "module")},
		},
		{
			name:      "attribute values and splices",
			items:     []any{Flag("a"), []Attribute{KeyValue("b", "1"), Flag("c")}, "d"},
			wantAttrs: []Attribute{Flag("a"), KeyValue("b", "1"), Flag("c"), Flag("d")},
		},
		{
			name:         "nodes are children without separator",
			items:        []any{"hidden", NewText("x"), "id", Eq, "main", NewComment("c")},
			wantAttrs:    []Attribute{Flag("hidden"), KeyValue("id", "main")},
			wantChildren: []string{"x", "<!--c-->"},
		},
		{
			name:         "node splices keep order",
			items:        []any{[]Node{NewText("1"), NewText("2")}, []*Element{El("br"), El("hr")}, NewText("3")},
			wantChildren: []string{"1", "2", "<br>", "<hr>", "3"},
		},
		{
			name:         "separator then children",
			items:        []any{"charset", Eq, "UTF-8", Sep, El("head"), El("body", Sep, NewText(""))},
			wantAttrs:    []Attribute{KeyValue("charset", "UTF-8")},
			wantChildren: []string{"<head>", "<body></body>"},
		},
		{
			name:         "bare names after separator are elements",
			items:        []any{Sep, "head", Name("body")},
			wantChildren: []string{"<head>", "<body>"},
		},
		{
			name:         "separator first with no items after",
			items:        []any{"hidden", Sep},
			wantAttrs:    []Attribute{Flag("hidden")},
			wantChildren: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, children, err := Group(tt.items...)
			if err != nil {
				t.Fatalf("Group() error = %v", err)
			}
			if diff := cmp.Diff(tt.wantAttrs, attrs); diff != "" {
				t.Errorf("attributes mismatch (-want +got):\n%s", diff)
			}
			var want []string
			if len(tt.wantChildren) > 0 {
				want = tt.wantChildren
			}
			got := renderAll(children)
			if len(got) == 0 {
				got = nil
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("children mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroupMalformed(t *testing.T) {
	var nilElement *Element

	tests := []struct {
		name      string
		items     []any
		wantCode  string
		wantIndex int
	}{
		{"unsupported type", []any{"a", 42}, "T001", 1},
		{"nil item", []any{nil}, "T001", 0},
		{"struct item", []any{struct{}{}}, "T001", 0},
		{"eq without key", []any{Eq, "x"}, "T003", 0},
		{"key without value", []any{"style", Eq}, "T002", 0},
		{"key followed by punctuation", []any{"style", Eq, Sep}, "T002", 2},
		{"key with nil value", []any{"style", Eq, nil}, "T002", 2},
		{"pair with nil value", []any{KV("style", nil)}, "T002", 0},
		{"dash without head", []any{Dash, "equiv"}, "T004", 0},
		{"dash without tail", []any{"http", Dash}, "T004", 1},
		{"dash with non-name tail", []any{"http", Dash, 3, Eq, "x"}, "T004", 2},
		{"dashed key without eq", []any{"http", Dash, "equiv", "x"}, "T004", 3},
		{"empty name", []any{""}, "T005", 0},
		{"empty pair key", []any{KV("", "v")}, "T005", 0},
		{"empty attribute key", []any{[]Attribute{Flag("")}}, "T005", 0},
		{"two separators", []any{Sep, "a", Sep}, "T006", 2},
		{"attribute after separator", []any{Sep, Flag("hidden")}, "T007", 1},
		{"attribute splice after separator", []any{Sep, []Attribute{Flag("hidden")}}, "T007", 1},
		{"pair after separator", []any{Sep, KV("a", "b")}, "T007", 1},
		{"assignment after separator", []any{Sep, "style", Eq, "x"}, "T007", 1},
		{"eq after separator", []any{Sep, Eq}, "T007", 1},
		{"empty element name after separator", []any{Sep, ""}, "T005", 1},
		{"nil element", []any{nilElement}, "T008", 0},
		{"nil in node splice", []any{"a", []Node{NewText("x"), nil}}, "T008", 1},
		{"nil in element splice", []any{[]*Element{nil}}, "T008", 0},
		{"unsupported after separator", []any{Sep, 1.5}, "T001", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, children, err := Group(tt.items...)
			if err == nil {
				t.Fatalf("Group() = %v, %v; want error", attrs, children)
			}
			if attrs != nil || children != nil {
				t.Errorf("partial result returned: %v %v", attrs, children)
			}
			if !errors.Is(err, ErrMalformedBuilderInput) {
				t.Errorf("error %v should match ErrMalformedBuilderInput", err)
			}
			var te *terrors.Error
			if !errors.As(err, &te) {
				t.Fatalf("error type = %T, want *errors.Error", err)
			}
			if te.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s (%v)", te.Code, tt.wantCode, err)
			}
			if te.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", te.Index, tt.wantIndex)
			}
		})
	}
}

func TestPunctString(t *testing.T) {
	if Eq.String() != "=" || Dash.String() != "-" || Sep.String() != "=>" || Punct(0).String() != "?" {
		t.Error("unexpected punctuation rendering")
	}
}
