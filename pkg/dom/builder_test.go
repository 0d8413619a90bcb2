package dom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuilder(t *testing.T) {
	a, err := NewBuilder("a").
		Flag("hidden").
		Attr("style", "display:None").
		Text("home").
		Child(NewComment("c")).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if want := `<a hidden style="display:None">home<!--c--></a>`; a.String() != want {
		t.Errorf("Build() = %q, want %q", a.String(), want)
	}
}

func TestBuilderMatchesGrammar(t *testing.T) {
	fromBuilder, err := NewBuilder("meta").
		Attr("http-equiv", "X-UA-Compatible").
		Attr("content", "IE=edge").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	fromItems := El("meta", "http", Dash, "equiv", Eq, "X-UA-Compatible", "content", Eq, "IE=edge")

	if diff := cmp.Diff(fromItems.Attributes(), fromBuilder.Attributes()); diff != "" {
		t.Errorf("attributes mismatch (-items +builder):\n%s", diff)
	}
}

func TestBuilderItems(t *testing.T) {
	e, err := NewBuilder("div").
		Attrs(Flag("a")).
		Items("b", Eq, 2, Sep, "span").
		Children([]Node{NewText("t")}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if want := `<div a b="2"><span>t</div>`; e.String() != want {
		t.Errorf("Build() = %q, want %q", e.String(), want)
	}
}

func TestBuilderFrom(t *testing.T) {
	base := El("ul", "class", Eq, "list", Sep, El("li", Sep, NewText("2")))
	e, err := From(base).Flag("hidden").Child(El("li", Sep, NewText("1"))).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if want := `<ul hidden class="list"><li>1</li><li>2</li></ul>`; e.String() != want {
		t.Errorf("Build() = %q, want %q", e.String(), want)
	}

	if _, err := From(nil).Build(); !errors.Is(err, ErrMalformedBuilderInput) {
		t.Errorf("From(nil).Build() error = %v", err)
	}
}

func TestBuilderStickyError(t *testing.T) {
	b := NewBuilder("a").Flag("").Flag("ignored").Attr("k", "v")
	if b.Err() == nil {
		t.Fatal("Err() = nil, want error")
	}
	if _, err := b.Build(); !errors.Is(err, ErrMalformedBuilderInput) {
		t.Errorf("Build() error = %v", err)
	}

	tests := []struct {
		name string
		b    *Builder
	}{
		{"empty name", NewBuilder("")},
		{"nil value", NewBuilder("a").Attr("k", nil)},
		{"nil child", NewBuilder("a").Child(nil)},
		{"bad items", NewBuilder("a").Items(Eq)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.b.Build()
			if e != nil || !errors.Is(err, ErrMalformedBuilderInput) {
				t.Errorf("Build() = %v, %v", e, err)
			}
		})
	}
}

func TestBuilderResultIndependent(t *testing.T) {
	b := NewBuilder("p").Text("a")
	first, _ := b.Build()
	b.Text("b")
	second, _ := b.Build()

	if first.String() != "<p>a</p>" {
		t.Errorf("first = %q", first.String())
	}
	if second.String() != "<p>ab</p>" {
		t.Errorf("second = %q", second.String())
	}
}
