// Package customelement generates the script that registers a custom
// element class for a dashed tag name.
package customelement

import (
	"fmt"
	"strings"

	"github.com/topus-dev/topus/internal/errors"
	"github.com/topus-dev/topus/internal/textcase"
	"github.com/topus-dev/topus/pkg/dom"
)

// Validate checks that tag is a dash separated name with at least two
// non-empty segments.
func Validate(tag string) error {
	segments := strings.Split(tag, "-")
	if len(segments) < 2 {
		return errors.New("T010").WithIndex(0).
			WithDetailf("%q has no dash", tag).
			WithSuggestion("Custom element names need a dash, e.g. my-element")
	}
	for i, seg := range segments {
		if seg == "" {
			return errors.New("T010").WithIndex(0).
				WithDetailf("%q has an empty segment at position %d", tag, i)
		}
	}
	return nil
}

// ClassName returns the class identifier for tag: every dash segment with
// its first letter upper-cased, joined. "my-custom" becomes "MyCustom".
func ClassName(tag string) string {
	return textcase.Pascal(tag)
}

// Snippet returns the registration script for tag.
func Snippet(tag string) (string, error) {
	if err := Validate(tag); err != nil {
		return "", err
	}
	class := ClassName(tag)
	return fmt.Sprintf(
		"class %s extends HTMLElement { constructor() { super(); } }\ncustomElements.define('%s', %s);",
		class, tag, class,
	), nil
}

// Define returns a script element whose only child is the registration
// snippet for tag.
func Define(tag string) (*dom.Element, error) {
	snippet, err := Snippet(tag)
	if err != nil {
		return nil, err
	}
	return dom.New("script", dom.Sep, dom.NewText(snippet))
}
