package dom

import (
	"io"
	"slices"
)

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota // <html>, <meta>, etc.
	KindText                    // Plain text node
	KindComment                 // <!--comment-->
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Node is an element, a text leaf or a comment leaf. Nodes are immutable
// once built.
type Node interface {
	// Kind returns the node discriminator.
	Kind() NodeKind

	// String renders the node and its subtree.
	String() string

	// WriteTo renders the node and its subtree into w.
	WriteTo(w io.Writer) (int64, error)

	node()
}

// Element is a named node with ordered attributes and ordered children.
type Element struct {
	name     string
	attrs    []Attribute
	children []Node
}

// NewElement creates an element from already grouped attributes and
// children. Both slices are copied.
func NewElement(name string, attrs []Attribute, children []Node) *Element {
	return &Element{
		name:     name,
		attrs:    slices.Clone(attrs),
		children: slices.Clone(children),
	}
}

// Kind implements Node.
func (e *Element) Kind() NodeKind { return KindElement }

// Name returns the tag name.
func (e *Element) Name() string { return e.name }

// Attributes returns a copy of the attributes in render order.
func (e *Element) Attributes() []Attribute { return slices.Clone(e.attrs) }

// Children returns a copy of the children in render order.
func (e *Element) Children() []Node { return slices.Clone(e.children) }

// Attr returns the first attribute with the given key.
func (e *Element) Attr(key string) (Attribute, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a, true
		}
	}
	return Attribute{}, false
}

// HasChildren reports whether the element renders a closing tag.
func (e *Element) HasChildren() bool { return len(e.children) > 0 }

func (e *Element) node() {}

// Text is a text leaf, rendered verbatim.
type Text struct {
	Value string
}

// Kind implements Node.
func (Text) Kind() NodeKind { return KindText }

func (Text) node() {}

// Comment is a comment leaf.
type Comment struct {
	Value string
}

// Kind implements Node.
func (Comment) Kind() NodeKind { return KindComment }

func (Comment) node() {}
