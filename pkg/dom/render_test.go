package dom

import (
	"bytes"
	"errors"
	"testing"
)

func TestRenderLeaves(t *testing.T) {
	if got := Render(Comment{Value: "comment"}); got != "<!--comment-->" {
		t.Errorf("comment = %q", got)
	}
	if got := Render(Text{Value: "hello world"}); got != "hello world" {
		t.Errorf("text = %q", got)
	}
	if got := Render(Text{Value: "<b>&"}); got != "<b>&" {
		t.Errorf("text should not be escaped, got %q", got)
	}
	if got := Render(nil); got != "" {
		t.Errorf("nil = %q", got)
	}
}

func TestRenderElement(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "empty element has no closing tag",
			node: NewElement("a", nil, nil),
			want: "<a>",
		},
		{
			name: "doctype",
			node: NewElement("!DOCTYPE", []Attribute{Flag("html")}, nil),
			want: "<!DOCTYPE html>",
		},
		{
			name: "attributes in order",
			node: NewElement("a", []Attribute{Flag("hidden"), KeyValue("style", "display:None")}, nil),
			want: `<a hidden style="display:None">`,
		},
		{
			name: "children in order",
			node: NewElement("p", nil, []Node{Text{Value: "a"}, Comment{Value: "b"}, NewElement("br", nil, nil)}),
			want: "<p>a<!--b--><br></p>",
		},
		{
			name: "empty text child forces closing tag",
			node: NewElement("body", nil, []Node{Text{}}),
			want: "<body></body>",
		},
		{
			name: "meta is not special",
			node: NewElement("meta", []Attribute{KeyValue("charset", "UTF-8")}, []Node{Text{Value: "x"}}),
			want: `<meta charset="UTF-8">x</meta>`,
		},
		{
			name: "nested",
			node: NewElement("ul", nil, []Node{
				NewElement("li", nil, []Node{Text{Value: "1"}}),
				NewElement("li", nil, []Node{Text{Value: "2"}}),
			}),
			want: "<ul><li>1</li><li>2</li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.node); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteTo(t *testing.T) {
	node := NewElement("title", nil, []Node{Text{Value: "Document"}})

	var buf bytes.Buffer
	n, err := node.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if buf.String() != "<title>Document</title>" {
		t.Errorf("WriteTo() wrote %q", buf.String())
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() n = %d, want %d", n, buf.Len())
	}

	buf.Reset()
	if _, err := (Comment{Value: "c"}).WriteTo(&buf); err != nil || buf.String() != "<!--c-->" {
		t.Errorf("Comment.WriteTo() = %q, %v", buf.String(), err)
	}
}

type failingWriter struct {
	after int
	wrote int
}

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.wrote >= w.after {
		return 0, errWrite
	}
	w.wrote++
	return len(p), nil
}

func TestWriteToStopsAtFirstError(t *testing.T) {
	node := NewElement("div", []Attribute{Flag("a"), Flag("b")}, []Node{Text{Value: "x"}})
	w := &failingWriter{after: 2}

	n, err := node.WriteTo(w)
	if !errors.Is(err, errWrite) {
		t.Fatalf("WriteTo() error = %v, want %v", err, errWrite)
	}
	if n != int64(len("<div")) {
		t.Errorf("WriteTo() n = %d, want %d", n, len("<div"))
	}
	if w.wrote != 2 {
		t.Errorf("writes after failure: %d", w.wrote)
	}
}

func TestElementImmutable(t *testing.T) {
	attrs := []Attribute{Flag("hidden")}
	children := []Node{Text{Value: "x"}}
	e := NewElement("a", attrs, children)

	attrs[0] = Flag("changed")
	children[0] = Text{Value: "changed"}
	got := e.Attributes()
	got[0] = Flag("mutated")
	e.Children()[0] = Text{Value: "mutated"}

	if want := "<a hidden>x</a>"; e.String() != want {
		t.Errorf("element changed through a slice: %q, want %q", e.String(), want)
	}
}

func TestElementAccessors(t *testing.T) {
	e := NewElement("meta", []Attribute{KeyValue("name", "viewport"), KeyValue("content", "w")}, nil)
	if e.Kind() != KindElement || e.Name() != "meta" {
		t.Errorf("Kind/Name = %v/%q", e.Kind(), e.Name())
	}
	if a, ok := e.Attr("content"); !ok || a.Value != "w" {
		t.Errorf("Attr(content) = %+v, %v", a, ok)
	}
	if _, ok := e.Attr("missing"); ok {
		t.Error("Attr(missing) should not be found")
	}
	if e.HasChildren() {
		t.Error("HasChildren() = true, want false")
	}
	if (Text{}).Kind() != KindText || (Comment{}).Kind() != KindComment {
		t.Error("leaf kinds mismatch")
	}
	if KindComment.String() != "Comment" || NodeKind(7).String() != "Unknown" {
		t.Error("NodeKind names mismatch")
	}
}
