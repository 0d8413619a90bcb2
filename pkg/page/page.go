// Package page loads YAML page files and turns them into markup trees.
//
// A page file describes a document:
//
//	title: Demo
//	head:
//	  - name: link
//	    attrs: [{rel: stylesheet}, {href: app.css}]
//	body:
//	  - name: a
//	    attrs: [hidden, {style: "display:None"}, {http-equiv: X}]
//	    children:
//	      - text: hello
//	      - comment: note
//	  - define: my-custom
//
// Each node has exactly one of name, text, comment or define. An attribute
// entry is either a scalar, which becomes a flag, or a mapping whose pairs
// become key/value attributes in document order. Elements are assembled
// with dom.New, so the grouping grammar validates them. With bare: true
// only the body nodes are rendered, without the document skeleton.
package page

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/topus-dev/topus/internal/errors"
	"github.com/topus-dev/topus/pkg/customelement"
	"github.com/topus-dev/topus/pkg/document"
	"github.com/topus-dev/topus/pkg/dom"
	"github.com/topus-dev/topus/pkg/render"
)

// ErrPage is matched (errors.Is) by every page file error.
var ErrPage error = errors.ErrPage

// Page is a parsed page file.
type Page struct {
	// Title is the document title (default: document.DefaultTitle).
	Title string

	// Bare renders Body alone, without doctype, html, head.
	Bare bool

	// Head holds extra head nodes, placed after the title.
	Head []dom.Node

	// Body holds the body children.
	Body []dom.Node

	// Path is the file the page was loaded from, if any.
	Path string
}

// Load reads and parses a page file.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("T200").WithPath(path).Wrap(err)
	}
	p, err := Parse(data)
	if err != nil {
		var te *errors.Error
		if stderrors.As(err, &te) && te.Path == "" {
			te.Path = path
		}
		return nil, err
	}
	p.Path = path
	return p, nil
}

// Parse parses page YAML.
func Parse(data []byte) (*Page, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.New("T201").Wrap(err)
	}

	p := &Page{Title: document.DefaultTitle}
	if root.Kind == 0 || len(root.Content) == 0 {
		return p, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, errors.New("T201").WithLine(doc.Line).
			WithDetail("a page file is a mapping with title, bare, head and body")
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		var err error
		switch key.Value {
		case "title":
			if value.Kind != yaml.ScalarNode {
				return nil, errors.New("T201").WithLine(value.Line).WithDetail("title must be a string")
			}
			p.Title = value.Value
		case "bare":
			if err := value.Decode(&p.Bare); err != nil {
				return nil, errors.New("T201").WithLine(value.Line).WithDetail("bare must be a boolean")
			}
		case "head":
			p.Head, err = parseNodes(value)
		case "body":
			p.Body, err = parseNodes(value)
		default:
			return nil, errors.New("T201").WithLine(key.Line).
				WithDetailf("unknown key %q", key.Value).
				WithSuggestion("Use title, bare, head or body")
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Document returns the page wrapped in the default skeleton.
func (p *Page) Document() *document.Document {
	return document.New(p.Title, document.WithHead(p.Head...), document.WithBody(p.Body...))
}

// Nodes returns the top-level nodes in render order.
func (p *Page) Nodes() []dom.Node {
	if p.Bare {
		return p.Body
	}
	return p.Document().Nodes()
}

// String renders the page.
func (p *Page) String() string {
	var b strings.Builder
	for _, n := range p.Nodes() {
		b.WriteString(dom.Render(n))
	}
	return b.String()
}

// Render renders the page with r. A nil r uses a default renderer.
func (p *Page) Render(ctx context.Context, r *render.Renderer) (string, error) {
	if r == nil {
		r = render.NewRenderer(render.RendererConfig{})
	}

	var b strings.Builder
	if !p.Bare {
		if err := r.RenderDocument(ctx, &b, p.Document()); err != nil {
			return "", err
		}
		return b.String(), nil
	}
	for _, n := range p.Body {
		if err := r.RenderToWriter(ctx, &b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func parseNodes(seq *yaml.Node) ([]dom.Node, error) {
	if seq.Kind == yaml.ScalarNode && seq.Tag == "!!null" {
		return nil, nil
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, errors.New("T202").WithLine(seq.Line).WithDetail("expected a list of nodes")
	}
	nodes := make([]dom.Node, 0, len(seq.Content))
	for _, item := range seq.Content {
		n, err := parseNode(item)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// parseNode converts one node mapping.
func parseNode(n *yaml.Node) (dom.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errors.New("T202").WithLine(n.Line).
			WithDetail("a node is a mapping with name, text, comment or define")
	}

	var (
		kind            string
		value           *yaml.Node
		attrs, children *yaml.Node
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, v := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "name", "text", "comment", "define":
			if kind != "" {
				return nil, errors.New("T202").WithLine(key.Line).
					WithDetailf("node has both %s and %s", kind, key.Value)
			}
			kind, value = key.Value, v
		case "attrs":
			attrs = v
		case "children":
			children = v
		default:
			return nil, errors.New("T202").WithLine(key.Line).
				WithDetailf("unknown node key %q", key.Value)
		}
	}
	if kind == "" {
		return nil, errors.New("T202").WithLine(n.Line).
			WithDetail("node needs one of name, text, comment or define")
	}
	if kind != "name" && (attrs != nil || children != nil) {
		return nil, errors.New("T202").WithLine(n.Line).
			WithDetailf("%s nodes take no attrs or children", kind)
	}
	if value.Kind != yaml.ScalarNode {
		return nil, errors.New("T202").WithLine(value.Line).
			WithDetailf("%s must be a string", kind)
	}

	switch kind {
	case "text":
		return dom.NewText(value.Value), nil
	case "comment":
		return dom.NewComment(value.Value), nil
	case "define":
		el, err := customelement.Define(value.Value)
		if err != nil {
			return nil, errors.New("T202").WithLine(value.Line).Wrap(err)
		}
		return el, nil
	}
	return parseElement(n, value.Value, attrs, children)
}

// parseElement flattens attrs and children into builder items and builds
// the element with the grouping grammar.
func parseElement(n *yaml.Node, name string, attrs, children *yaml.Node) (dom.Node, error) {
	var items []any

	if attrs != nil {
		if attrs.Kind != yaml.SequenceNode {
			return nil, errors.New("T203").WithLine(attrs.Line).WithDetail("attrs must be a list")
		}
		for _, entry := range attrs.Content {
			switch entry.Kind {
			case yaml.ScalarNode:
				items = append(items, entry.Value)
			case yaml.MappingNode:
				for i := 0; i+1 < len(entry.Content); i += 2 {
					k, v := entry.Content[i], entry.Content[i+1]
					if v.Kind != yaml.ScalarNode || v.Tag == "!!null" {
						return nil, errors.New("T203").WithLine(v.Line).
							WithDetailf("value of %q must be a string", k.Value).
							WithSuggestion("Write a bare name for a flag attribute")
					}
					items = append(items, k.Value, dom.Eq, v.Value)
				}
			default:
				return nil, errors.New("T203").WithLine(entry.Line).
					WithDetail("an attribute is a name or a single key: value mapping")
			}
		}
	}

	if children != nil {
		nodes, err := parseNodes(children)
		if err != nil {
			return nil, err
		}
		items = append(items, dom.Sep, nodes)
	}

	el, err := dom.New(name, items...)
	if err != nil {
		return nil, errors.New("T202").WithLine(n.Line).Wrap(err)
	}
	return el, nil
}
