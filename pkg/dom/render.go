package dom

import (
	"io"
	"strings"
)

// Render renders a node and its subtree into markup text. Attributes and
// children are emitted in stored order, with no whitespace between tags. An
// element without children renders its opening tag only.
func Render(n Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	cw := &countingWriter{w: &b}
	writeNode(cw, n)
	return b.String()
}

// String implements fmt.Stringer.
func (e *Element) String() string { return Render(e) }

// WriteTo implements io.WriterTo.
func (e *Element) WriteTo(w io.Writer) (int64, error) { return writeTo(w, e) }

// String implements fmt.Stringer.
func (t Text) String() string { return t.Value }

// WriteTo implements io.WriterTo.
func (t Text) WriteTo(w io.Writer) (int64, error) { return writeTo(w, t) }

// String implements fmt.Stringer.
func (c Comment) String() string { return "<!--" + c.Value + "-->" }

// WriteTo implements io.WriterTo.
func (c Comment) WriteTo(w io.Writer) (int64, error) { return writeTo(w, c) }

// Write streams the markup of n to w and returns the number of bytes
// written. A nil node writes nothing.
func Write(w io.Writer, n Node) (int64, error) { return writeTo(w, n) }

func writeTo(w io.Writer, n Node) (int64, error) {
	cw := &countingWriter{w: w}
	writeNode(cw, n)
	return cw.n, cw.err
}

// countingWriter remembers the first write error and drops every write
// after it.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) writeString(s string) {
	if c.err != nil {
		return
	}
	n, err := io.WriteString(c.w, s)
	c.n += int64(n)
	c.err = err
}

// writeNode dispatches rendering based on node kind.
func writeNode(w *countingWriter, n Node) {
	switch v := n.(type) {
	case *Element:
		if v != nil {
			writeElement(w, v)
		}
	case Text:
		w.writeString(v.Value)
	case Comment:
		w.writeString("<!--")
		w.writeString(v.Value)
		w.writeString("-->")
	}
}

// writeElement renders the opening tag, then the children and closing tag
// when there is at least one child.
func writeElement(w *countingWriter, e *Element) {
	w.writeString("<")
	w.writeString(e.name)
	for _, a := range e.attrs {
		w.writeString(" ")
		w.writeString(a.String())
	}
	w.writeString(">")

	if len(e.children) == 0 {
		return
	}
	for _, child := range e.children {
		writeNode(w, child)
		if w.err != nil {
			return
		}
	}
	w.writeString("</")
	w.writeString(e.name)
	w.writeString(">")
}
