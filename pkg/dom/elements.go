package dom

// Tag helpers panic on malformed items, like El.

// Document structure elements

func Html(items ...any) *Element   { return El("html", items...) }
func Head(items ...any) *Element   { return El("head", items...) }
func Body(items ...any) *Element   { return El("body", items...) }
func Title(items ...any) *Element  { return El("title", items...) }
func Meta(items ...any) *Element   { return El("meta", items...) }
func Link(items ...any) *Element   { return El("link", items...) }
func Base(items ...any) *Element   { return El("base", items...) }
func Script(items ...any) *Element { return El("script", items...) }
func Style(items ...any) *Element  { return El("style", items...) }

// Content sectioning elements

func Header(items ...any) *Element  { return El("header", items...) }
func Footer(items ...any) *Element  { return El("footer", items...) }
func Main(items ...any) *Element    { return El("main", items...) }
func Nav(items ...any) *Element     { return El("nav", items...) }
func Section(items ...any) *Element { return El("section", items...) }
func Article(items ...any) *Element { return El("article", items...) }
func Aside(items ...any) *Element   { return El("aside", items...) }
func H1(items ...any) *Element      { return El("h1", items...) }
func H2(items ...any) *Element      { return El("h2", items...) }
func H3(items ...any) *Element      { return El("h3", items...) }

// Text content elements

func Div(items ...any) *Element { return El("div", items...) }
func P(items ...any) *Element   { return El("p", items...) }
func Pre(items ...any) *Element { return El("pre", items...) }
func Ul(items ...any) *Element  { return El("ul", items...) }
func Ol(items ...any) *Element  { return El("ol", items...) }
func Li(items ...any) *Element  { return El("li", items...) }
func Hr(items ...any) *Element  { return El("hr", items...) }

// Inline text semantics

func A(items ...any) *Element      { return El("a", items...) }
func Span(items ...any) *Element   { return El("span", items...) }
func Strong(items ...any) *Element { return El("strong", items...) }
func Em(items ...any) *Element     { return El("em", items...) }
func Code(items ...any) *Element   { return El("code", items...) }
func Br(items ...any) *Element     { return El("br", items...) }

// Embedded content and forms

func Img(items ...any) *Element    { return El("img", items...) }
func Form(items ...any) *Element   { return El("form", items...) }
func Input(items ...any) *Element  { return El("input", items...) }
func Button(items ...any) *Element { return El("button", items...) }
func Label(items ...any) *Element  { return El("label", items...) }
