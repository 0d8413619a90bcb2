package dom

// AttrKind is the attribute type discriminator.
type AttrKind uint8

const (
	AttrFlag     AttrKind = iota // hidden, html
	AttrKeyValue                 // style="display: None"
)

// String returns the string representation of the AttrKind.
func (k AttrKind) String() string {
	switch k {
	case AttrFlag:
		return "Flag"
	case AttrKeyValue:
		return "KeyValue"
	default:
		return "Unknown"
	}
}

// Attribute is a single element attribute: either a bare flag or a
// key/value pair.
type Attribute struct {
	Kind  AttrKind
	Key   string
	Value string // empty for flags
}

// Flag creates a boolean-style attribute rendered as its name alone.
func Flag(name string) Attribute {
	return Attribute{Kind: AttrFlag, Key: name}
}

// KeyValue creates an attribute rendered as key="value".
func KeyValue(key, value string) Attribute {
	return Attribute{Kind: AttrKeyValue, Key: key, Value: value}
}

// IsFlag reports whether the attribute is a bare flag.
func (a Attribute) IsFlag() bool {
	return a.Kind == AttrFlag
}

// Name returns the flag name or the key.
func (a Attribute) Name() string {
	return a.Key
}

// String renders the attribute. The value is inserted between double quotes
// as is; a value containing '"' produces invalid markup.
func (a Attribute) String() string {
	if a.Kind == AttrFlag {
		return a.Key
	}
	return a.Key + `="` + a.Value + `"`
}
