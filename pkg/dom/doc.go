// Package dom provides the markup tree and its serializer.
//
// A tree is made of three node types: *Element (name, ordered attributes,
// ordered children), Text and Comment. Attributes are either flags
// (hidden) or key/value pairs (style="display: None"). Trees are built once
// and never mutated; Extend returns a new element.
//
// # Building
//
// Elements are created from a flat list of items that the grouping grammar
// splits into attributes and children:
//
//	a, err := dom.New("a", "hidden", "style", dom.Eq, "display:None")
//	// <a hidden style="display:None">
//
//	meta := dom.El("meta", "http", dom.Dash, "equiv", dom.Eq, "X-UA-Compatible")
//	// <meta http-equiv="X-UA-Compatible">
//
//	head := dom.Head(dom.Sep, dom.Title(dom.Sep, dom.NewText("Home")))
//	// <head><title>Home</title></head>
//
// Items before dom.Sep are classified by shape; items after it are always
// children, and a bare name there is an empty child element. Malformed
// items fail with an error matching ErrMalformedBuilderInput.
//
// Builder offers the same result through method calls:
//
//	a, err := dom.NewBuilder("a").Flag("hidden").Attr("style", "display:None").Build()
//
// # Rendering
//
// Render, String and WriteTo emit markup with no whitespace between tags,
// attributes and children in the order given. Nothing is escaped. An
// element without children renders as its opening tag only; there is no
// void element list and no "/>" form.
package dom
