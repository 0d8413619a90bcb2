// Package document builds the default HTML document skeleton: a doctype
// followed by an html element with a fixed head and a body.
package document

import (
	"io"
	"strings"

	"github.com/topus-dev/topus/pkg/dom"
)

// DefaultTitle is the title used by Default.
const DefaultTitle = "Document"

// Document is a doctype declaration followed by the html root.
type Document struct {
	Doctype *dom.Element
	HTML    *dom.Element
}

// Option configures a Document.
type Option func(*options)

type options struct {
	head []dom.Node
	body []dom.Node
}

// WithHead appends nodes to the head, after the title.
func WithHead(nodes ...dom.Node) Option {
	return func(o *options) {
		o.head = append(o.head, nodes...)
	}
}

// WithBody sets the body children. Without it the body holds one empty
// text node so that it renders as <body></body>.
func WithBody(nodes ...dom.Node) Option {
	return func(o *options) {
		o.body = append(o.body, nodes...)
	}
}

// New creates the skeleton with the given title.
func New(title string, opts ...Option) *Document {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	body := o.body
	if len(body) == 0 {
		body = []dom.Node{dom.NewText("")}
	}

	html := dom.Html("charset", dom.Eq, "UTF-8", dom.Sep,
		dom.Head(dom.Sep,
			dom.Meta("charset", dom.Eq, "UTF-8"),
			dom.Meta("http", dom.Dash, "equiv", dom.Eq, "X-UA-Compatible", "content", dom.Eq, "IE=edge"),
			dom.Meta("name", dom.Eq, "viewport", "content", dom.Eq, "width=device-width, initial-scale=1.0"),
			dom.Title(dom.Sep, dom.NewText(title)),
			o.head,
		),
		dom.Body(dom.Sep, body),
	)

	return &Document{
		Doctype: dom.Doctype(),
		HTML:    html,
	}
}

// Default creates the skeleton titled "Document".
func Default() *Document {
	return New(DefaultTitle)
}

// Nodes returns the top-level nodes in render order.
func (d *Document) Nodes() []dom.Node {
	return []dom.Node{d.Doctype, d.HTML}
}

// String renders the doctype followed by the html element.
func (d *Document) String() string {
	var b strings.Builder
	d.WriteTo(&b)
	return b.String()
}

// WriteTo implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, n := range d.Nodes() {
		written, err := n.WriteTo(w)
		total += written
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
