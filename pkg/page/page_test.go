package page

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	terrors "github.com/topus-dev/topus/internal/errors"
	"github.com/topus-dev/topus/pkg/document"
	"github.com/topus-dev/topus/pkg/dom"
)

const demo = `title: Demo
head:
  - name: link
    attrs: [{rel: stylesheet}, {href: app.css}]
body:
  - name: a
    attrs: [hidden, {style: "display:None"}, {http-equiv: X}]
    children:
      - text: hello
      - comment: note
  - define: my-custom
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(demo))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Title != "Demo" || p.Bare {
		t.Errorf("Title = %q, Bare = %v", p.Title, p.Bare)
	}

	var head []string
	for _, n := range p.Head {
		head = append(head, n.String())
	}
	if diff := cmp.Diff([]string{`<link rel="stylesheet" href="app.css">`}, head); diff != "" {
		t.Errorf("Head mismatch (-want +got):\n%s", diff)
	}

	if len(p.Body) != 2 {
		t.Fatalf("len(Body) = %d, want 2", len(p.Body))
	}
	wantA := `<a hidden style="display:None" http-equiv="X">hello<!--note--></a>`
	if got := p.Body[0].String(); got != wantA {
		t.Errorf("Body[0] = %q, want %q", got, wantA)
	}
	if got := p.Body[1].String(); !strings.HasPrefix(got, "<script>class MyCustom extends HTMLElement") {
		t.Errorf("Body[1] = %q", got)
	}
}

func TestDocument(t *testing.T) {
	p, err := Parse([]byte(demo))
	if err != nil {
		t.Fatal(err)
	}
	got := p.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Demo</title><link rel=\"stylesheet\" href=\"app.css\"></head>",
		"<body><a hidden",
		"</script></body></html>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("String() missing %q in\n%s", want, got)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	p, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if got, want := p.String(), document.Default().String(); got != want {
		t.Errorf("empty page = %q, want %q", got, want)
	}
}

func TestBare(t *testing.T) {
	p, err := Parse([]byte("bare: true\nbody:\n  - name: p\n    children:\n      - text: x\n  - name: br\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "<p>x</p><br>" {
		t.Errorf("String() = %q", got)
	}

	rendered, err := p.Render(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if rendered != "<p>x</p><br>" {
		t.Errorf("Render() = %q", rendered)
	}
}

func TestRender(t *testing.T) {
	p, err := Parse([]byte(demo))
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.Render(context.Background(), nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != p.String() {
		t.Errorf("Render() = %q, want %q", got, p.String())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
		line int
	}{
		{"not yaml", "title: [", "T201", 0},
		{"not a mapping", "- a\n", "T201", 1},
		{"unknown key", "title: x\nfooter: []\n", "T201", 2},
		{"bare not bool", "bare: maybe\n", "T201", 1},
		{"body not list", "body: p\n", "T202", 1},
		{"node without kind", "body:\n  - attrs: [x]\n", "T202", 2},
		{"two kinds", "body:\n  - name: p\n    text: x\n", "T202", 3},
		{"text with children", "body:\n  - text: x\n    children: []\n", "T202", 2},
		{"unknown node key", "body:\n  - name: p\n    style: x\n", "T202", 3},
		{"attrs not list", "body:\n  - name: p\n    attrs: x\n", "T203", 3},
		{"nested attr value", "body:\n  - name: p\n    attrs: [{a: [1]}]\n", "T203", 3},
		{"null attr value", "body:\n  - name: p\n    attrs:\n      - a:\n", "T203", 0},
		{"empty name", "body:\n  - name: \"\"\n", "T202", 2},
		{"bad define", "body:\n  - define: nodash\n", "T202", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrPage) {
				t.Fatalf("Parse() error = %v, want page error", err)
			}
			var te *terrors.Error
			if !errors.As(err, &te) {
				t.Fatalf("error type = %T", err)
			}
			if te.Code != tt.code {
				t.Errorf("Code = %s, want %s (%v)", te.Code, tt.code, err)
			}
			if tt.line != 0 && te.Line != tt.line {
				t.Errorf("Line = %d, want %d (%v)", te.Line, tt.line, err)
			}
		})
	}
}

func TestBuilderErrorsSurface(t *testing.T) {
	_, err := Parse([]byte("body:\n  - name: p\n    attrs: [\"\"]\n"))
	if !errors.Is(err, ErrPage) || !errors.Is(err, dom.ErrMalformedBuilderInput) {
		t.Errorf("error should match both page and builder sentinels: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.yaml")
	if err := os.WriteFile(path, []byte(demo), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Path != path || p.Title != "Demo" {
		t.Errorf("Load() = %+v", p)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, ErrPage) {
		t.Errorf("Load(missing) error = %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("footer: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	var te *terrors.Error
	if !errors.As(err, &te) || te.Path != bad || te.Line != 1 {
		t.Errorf("Load(bad) error = %v", err)
	}
}
