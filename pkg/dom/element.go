package dom

import (
	"fmt"

	"github.com/topus-dev/topus/internal/errors"
)

// DoctypeName is the element name of the document type declaration.
const DoctypeName = "!DOCTYPE"

// New creates an element named name from grouped items. See Group for the
// accepted items.
func New(name string, items ...any) (*Element, error) {
	if name == "" {
		return nil, errors.New("T005").WithIndex(0).
			WithDetail("element name is empty")
	}
	attrs, children, err := Group(items...)
	if err != nil {
		return nil, err
	}
	return &Element{name: name, attrs: attrs, children: children}, nil
}

// Extend returns a copy of base with more attributes and children. The new
// attributes come first, followed by base's attributes; the same holds for
// children. base is left unchanged.
func Extend(base *Element, items ...any) (*Element, error) {
	if base == nil {
		return nil, errors.New("T008").WithIndex(0).
			WithDetail("cannot extend a nil element")
	}
	attrs, children, err := Group(items...)
	if err != nil {
		return nil, err
	}
	return &Element{
		name:     base.name,
		attrs:    append(attrs, base.attrs...),
		children: append(children, base.children...),
	}, nil
}

// Build dispatches on its first item: a name creates a new element, an
// *Element is extended with the remaining items, and a Text or Comment is
// returned as is when nothing follows it. Error indices count head as item
// 0.
func Build(head any, items ...any) (Node, error) {
	var (
		n   Node
		err error
	)
	switch h := head.(type) {
	case string:
		n, err = newNode(h, items)
	case Name:
		n, err = newNode(string(h), items)
	case *Element:
		n, err = extendNode(h, items)
	case Text, Comment:
		if len(items) > 0 {
			return nil, errors.New("T009").WithIndex(1).
				WithDetailf("%s node followed by %d more items", h.(Node).Kind(), len(items))
		}
		return h.(Node), nil
	default:
		return nil, errors.New("T001").WithIndex(0).
			WithDetailf("unsupported head type %T", head).
			WithSuggestion("Start with an element name or an existing *Element")
	}
	if err != nil {
		if te, ok := err.(*errors.Error); ok && te.Index >= 0 {
			te.Index++
		}
		return nil, err
	}
	return n, nil
}

// newNode and extendNode keep a nil *Element out of the Node interface.
func newNode(name string, items []any) (Node, error) {
	e, err := New(name, items...)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func extendNode(base *Element, items []any) (Node, error) {
	e, err := Extend(base, items...)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Doctype returns the <!DOCTYPE html> declaration.
func Doctype() *Element {
	return &Element{name: DoctypeName, attrs: []Attribute{Flag("html")}}
}

// Must panics if err is non-nil. It simplifies static trees:
//
//	nav := dom.Must(dom.New("nav", "hidden"))
func Must(e *Element, err error) *Element {
	if err != nil {
		panic(err)
	}
	return e
}

// El is like New but panics on malformed items. It is meant for trees whose
// shape is fixed in source code.
func El(name string, items ...any) *Element {
	return Must(New(name, items...))
}

// NewText creates a text node from any value, stringified with fmt.
func NewText(value any) Text {
	return Text{Value: fmt.Sprint(value)}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) Text {
	return Text{Value: fmt.Sprintf(format, args...)}
}

// NewComment creates a comment node from any value, stringified with fmt.
func NewComment(value any) Comment {
	return Comment{Value: fmt.Sprint(value)}
}
