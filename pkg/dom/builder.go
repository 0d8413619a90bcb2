package dom

import (
	"fmt"

	"github.com/topus-dev/topus/internal/errors"
)

// Builder assembles an element by appending in call order. It needs no
// punctuation tokens. The first error is kept and returned by Build; later
// calls are ignored.
//
//	a, err := dom.NewBuilder("a").
//	    Flag("hidden").
//	    Attr("style", "display:None").
//	    Child(dom.NewText("home")).
//	    Build()
type Builder struct {
	name     string
	attrs    []Attribute
	children []Node
	base     *Element
	calls    int
	err      error
}

// NewBuilder starts an element named name.
func NewBuilder(name string) *Builder {
	b := &Builder{name: name}
	if name == "" {
		b.err = errors.New("T005").WithIndex(0).WithDetail("element name is empty")
	}
	return b
}

// From starts a builder whose result extends base: everything added to the
// builder is placed before base's own attributes and children.
func From(base *Element) *Builder {
	if base == nil {
		return &Builder{err: errors.New("T008").WithIndex(0).WithDetail("cannot extend a nil element")}
	}
	return &Builder{name: base.name, base: base}
}

// Flag appends a flag attribute.
func (b *Builder) Flag(name string) *Builder {
	return b.Attrs(Flag(name))
}

// Attr appends a key/value attribute; value is stringified with fmt.
func (b *Builder) Attr(key string, value any) *Builder {
	if b.err != nil {
		return b
	}
	b.calls++
	if value == nil {
		b.err = errors.New("T002").WithIndex(b.calls - 1).
			WithDetailf("key %q has a nil value", key)
		return b
	}
	return b.append([]Attribute{KeyValue(key, fmt.Sprint(value))}, nil)
}

// Attrs appends attributes in order.
func (b *Builder) Attrs(attrs ...Attribute) *Builder {
	if b.err != nil {
		return b
	}
	b.calls++
	return b.append(attrs, nil)
}

// Child appends children in order.
func (b *Builder) Child(children ...Node) *Builder {
	if b.err != nil {
		return b
	}
	b.calls++
	return b.append(nil, children)
}

// Children is Child for an existing slice.
func (b *Builder) Children(children []Node) *Builder {
	return b.Child(children...)
}

// Text appends a text child.
func (b *Builder) Text(value any) *Builder {
	return b.Child(NewText(value))
}

// Items runs the grouping grammar over items and appends the result.
func (b *Builder) Items(items ...any) *Builder {
	if b.err != nil {
		return b
	}
	b.calls++
	attrs, children, err := Group(items...)
	if err != nil {
		b.err = err
		return b
	}
	b.attrs = append(b.attrs, attrs...)
	b.children = append(b.children, children...)
	return b
}

// append validates and stores through the same checks as Group.
func (b *Builder) append(attrs []Attribute, children []Node) *Builder {
	p := &parser{}
	for _, a := range attrs {
		if err := p.addAttr(a, b.calls-1); err != nil {
			b.err = err
			return b
		}
	}
	for _, c := range children {
		if err := p.addChild(c, b.calls-1); err != nil {
			b.err = err
			return b
		}
	}
	b.attrs = append(b.attrs, p.attrs...)
	b.children = append(b.children, p.children...)
	return b
}

// Err returns the first error recorded so far.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the element, or the first error.
func (b *Builder) Build() (*Element, error) {
	if b.err != nil {
		return nil, b.err
	}
	e := &Element{
		name:     b.name,
		attrs:    append([]Attribute(nil), b.attrs...),
		children: append([]Node(nil), b.children...),
	}
	if b.base != nil {
		e.attrs = append(e.attrs, b.base.attrs...)
		e.children = append(e.children, b.base.children...)
	}
	return e, nil
}
