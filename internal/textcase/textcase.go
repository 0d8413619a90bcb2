// Package textcase holds stateless string helpers for generated code.
package textcase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Word upper-cases the first letter of word and keeps the rest as is.
func Word(word string) string {
	if word == "" {
		return ""
	}
	// A Caser is stateful; one per call keeps Word safe for concurrent use.
	return cases.Title(language.Und, cases.NoLower).String(word)
}

// Pascal joins the dash separated segments of s, each passed through Word.
// "my-custom" becomes "MyCustom".
func Pascal(s string) string {
	var b strings.Builder
	for _, seg := range strings.Split(s, "-") {
		b.WriteString(Word(seg))
	}
	return b.String()
}
