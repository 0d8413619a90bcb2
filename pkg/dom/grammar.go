package dom

import (
	"fmt"

	"github.com/topus-dev/topus/internal/errors"
)

// Punct is a punctuation token of the grouping grammar.
type Punct uint8

const (
	Eq   Punct = iota + 1 // key Eq value
	Dash                  // key Dash tail Eq value, for keys such as http-equiv
	Sep                   // ends the attribute section; everything after it is a child
)

// String returns the token as it reads in a builder call.
func (p Punct) String() string {
	switch p {
	case Eq:
		return "="
	case Dash:
		return "-"
	case Sep:
		return "=>"
	default:
		return "?"
	}
}

// Name is a bare name token. Plain strings are name tokens as well; Name
// exists for call sites that want to be explicit.
type Name string

// Pair is key/value attribute sugar that needs no Eq token.
type Pair struct {
	Key   string
	Value any
}

// KV creates a key/value pair item. The value is stringified with fmt.
func KV(key string, value any) Pair {
	return Pair{Key: key, Value: value}
}

// ErrMalformedBuilderInput is matched (errors.Is) by every error returned
// from Group, New, Extend, Build and Builder.Build.
var ErrMalformedBuilderInput error = errors.ErrMalformedBuilderInput

// Group classifies a flat item sequence into ordered attributes and
// children. Recognized items:
//
//   - Attribute, []Attribute: attributes
//   - *Element, Text, Comment, []Node, []*Element: children
//   - "name" followed by Eq and a value: KeyValue(name, fmt.Sprint(value))
//   - "head", Dash, "tail", Eq, value: KeyValue("head-tail", ...)
//   - "name" alone: Flag(name)
//   - Pair: KeyValue(pair.Key, fmt.Sprint(pair.Value))
//   - Sep: every item after it is a child; a bare name there is a child
//     element with no attributes and no children
//
// Without Sep each item is classified by its own shape. Both results keep
// the order of the items. Any other item fails with a *errors.Error that
// records the item index.
func Group(items ...any) ([]Attribute, []Node, error) {
	p := &parser{items: items}
	if err := p.parseItems(); err != nil {
		return nil, nil, err
	}
	return p.attrs, p.children, nil
}

// parser is a recursive descent parser over builder items with one item of
// lookahead.
type parser struct {
	items    []any
	pos      int
	sep      bool
	attrs    []Attribute
	children []Node
}

func (p *parser) done() bool { return p.pos >= len(p.items) }

func (p *parser) next() any {
	item := p.items[p.pos]
	p.pos++
	return item
}

// peekPunct reports whether the next item is the given punctuation token.
func (p *parser) peekPunct(want Punct) bool {
	if p.done() {
		return false
	}
	got, ok := p.items[p.pos].(Punct)
	return ok && got == want
}

// parseItems consumes every item, one rule at a time.
func (p *parser) parseItems() error {
	for !p.done() {
		var err error
		if p.sep {
			err = p.parseChild()
		} else {
			err = p.parseItem()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// parseItem handles one item of the attribute section.
func (p *parser) parseItem() error {
	at := p.pos
	switch v := p.next().(type) {
	case nil:
		return errors.New("T001").WithIndex(at).
			WithDetail("nil item").
			WithSuggestion("Drop the item or pass a node value")
	case Punct:
		switch v {
		case Sep:
			p.sep = true
			return nil
		case Eq:
			return errors.New("T003").WithIndex(at).
				WithDetail("'=' must follow an attribute name")
		default:
			return errors.New("T004").WithIndex(at).
				WithDetail("'-' must join two parts of an attribute name")
		}
	case string:
		return p.parseNamed(v, at)
	case Name:
		return p.parseNamed(string(v), at)
	case Pair:
		return p.addPair(v, at)
	case Attribute:
		return p.addAttr(v, at)
	case []Attribute:
		for _, a := range v {
			if err := p.addAttr(a, at); err != nil {
				return err
			}
		}
		return nil
	default:
		return p.addChildItem(v, at)
	}
}

// parseNamed applies the name rules in order of specificity: hyphenated
// key, plain key, bare flag.
func (p *parser) parseNamed(name string, at int) error {
	if name == "" {
		return errors.New("T005").WithIndex(at).
			WithDetail("attribute name is empty")
	}
	switch {
	case p.peekPunct(Dash):
		key, err := p.parseDashedKey(name)
		if err != nil {
			return err
		}
		return p.parseValue(key, at)
	case p.peekPunct(Eq):
		p.pos++
		return p.parseValue(name, at)
	default:
		p.attrs = append(p.attrs, Flag(name))
		return nil
	}
}

// parseDashedKey consumes "-tail" groups following head and requires the
// Eq that ends the key.
func (p *parser) parseDashedKey(head string) (string, error) {
	key := head
	for p.peekPunct(Dash) {
		dash := p.pos
		p.pos++
		if p.done() {
			return "", errors.New("T004").WithIndex(dash).
				WithDetailf("%q- is missing its tail", key)
		}
		tail, ok := nameToken(p.items[p.pos])
		if !ok || tail == "" {
			return "", errors.New("T004").WithIndex(p.pos).
				WithDetailf("%q- must be followed by a name, got %T", key, p.items[p.pos])
		}
		p.pos++
		key += "-" + tail
	}
	if !p.peekPunct(Eq) {
		return "", errors.New("T004").WithIndex(p.pos).
			WithDetailf("hyphenated key %q must be assigned with '='", key).
			WithSuggestion(fmt.Sprintf("Pass %q as one name for a flag", key))
	}
	p.pos++
	return key, nil
}

// parseValue consumes the value of an assignment whose Eq was just read.
func (p *parser) parseValue(key string, at int) error {
	if p.done() {
		return errors.New("T002").WithIndex(at).
			WithDetailf("key %q is followed by '=' but no value", key)
	}
	vat := p.pos
	value := p.next()
	switch value.(type) {
	case nil:
		return errors.New("T002").WithIndex(vat).
			WithDetailf("key %q has a nil value", key)
	case Punct:
		return errors.New("T002").WithIndex(vat).
			WithDetailf("key %q is followed by %q instead of a value", key, value)
	}
	p.attrs = append(p.attrs, KeyValue(key, fmt.Sprint(value)))
	return nil
}

// parseChild handles one item after the separator.
func (p *parser) parseChild() error {
	at := p.pos
	switch v := p.next().(type) {
	case nil:
		return errors.New("T001").WithIndex(at).
			WithDetail("nil item")
	case Punct:
		if v == Sep {
			return errors.New("T006").WithIndex(at).
				WithDetail("an element takes at most one separator")
		}
		return errors.New("T007").WithIndex(at).
			WithDetailf("%q after the separator", v.String())
	case string:
		return p.parseChildName(v, at)
	case Name:
		return p.parseChildName(string(v), at)
	case Attribute, []Attribute, Pair:
		return errors.New("T007").WithIndex(at).
			WithDetailf("%T after the separator", v).
			WithSuggestion("Move attributes before dom.Sep")
	default:
		return p.addChildItem(v, at)
	}
}

// parseChildName turns a bare name after the separator into an empty child
// element.
func (p *parser) parseChildName(name string, at int) error {
	if name == "" {
		return errors.New("T005").WithIndex(at).
			WithDetail("element name is empty")
	}
	if p.peekPunct(Eq) || p.peekPunct(Dash) {
		return errors.New("T007").WithIndex(at).
			WithDetailf("assignment to %q after the separator", name).
			WithSuggestion("Move attributes before dom.Sep")
	}
	p.children = append(p.children, &Element{name: name})
	return nil
}

// addChildItem accepts node shaped items in either section.
func (p *parser) addChildItem(item any, at int) error {
	switch v := item.(type) {
	case *Element:
		return p.addChild(v, at)
	case Text:
		return p.addChild(v, at)
	case Comment:
		return p.addChild(v, at)
	case []Node:
		for _, n := range v {
			if err := p.addChild(n, at); err != nil {
				return err
			}
		}
		return nil
	case []*Element:
		for _, n := range v {
			if err := p.addChild(n, at); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.New("T001").WithIndex(at).
			WithDetailf("unsupported item type %T", item).
			WithSuggestion("Pass an Attribute, a Node, a slice of either, a name, or dom.Sep")
	}
}

func (p *parser) addChild(n Node, at int) error {
	if isNilNode(n) {
		return errors.New("T008").WithIndex(at).
			WithDetail("child node is nil")
	}
	p.children = append(p.children, n)
	return nil
}

func (p *parser) addAttr(a Attribute, at int) error {
	if a.Key == "" {
		return errors.New("T005").WithIndex(at).
			WithDetail("attribute name is empty")
	}
	p.attrs = append(p.attrs, a)
	return nil
}

func (p *parser) addPair(kv Pair, at int) error {
	if kv.Key == "" {
		return errors.New("T005").WithIndex(at).
			WithDetail("attribute key is empty")
	}
	if kv.Value == nil {
		return errors.New("T002").WithIndex(at).
			WithDetailf("key %q has a nil value", kv.Key)
	}
	p.attrs = append(p.attrs, KeyValue(kv.Key, fmt.Sprint(kv.Value)))
	return nil
}

func nameToken(item any) (string, bool) {
	switch v := item.(type) {
	case string:
		return v, true
	case Name:
		return string(v), true
	}
	return "", false
}

func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	e, ok := n.(*Element)
	return ok && e == nil
}
