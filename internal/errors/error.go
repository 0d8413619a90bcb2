package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryBuilder Category = "builder"
	CategoryIO      Category = "io"
	CategoryConfig  Category = "config"
	CategoryPage    Category = "page"
	CategoryCLI     Category = "cli"
)

// Sentinel errors, one per category. A *Error matches the sentinel of its
// category through errors.Is.
var (
	// ErrMalformedBuilderInput is matched by every grouping grammar and
	// element construction failure.
	ErrMalformedBuilderInput = &Error{Category: CategoryBuilder, Message: "malformed builder input"}

	// ErrIOFailure is matched by every failure to create or write an output.
	ErrIOFailure = &Error{Category: CategoryIO, Message: "io failure"}

	ErrConfig = &Error{Category: CategoryConfig, Message: "invalid configuration"}
	ErrPage   = &Error{Category: CategoryPage, Message: "invalid page file"}
)

// Error is a structured error with a code, a hint and documentation.
type Error struct {
	// Code is a unique error identifier (e.g., "T001").
	Code string

	// Category is the error type (builder, io, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path is the destination or source file involved, if any.
	Path string

	// Index is the position of the offending builder item, or -1.
	Index int

	// Line is the 1-based line in a page file, or 0.
	Line int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is the sentinel of e's category, or an *Error
// with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code == "" {
		return t.Category == e.Category
	}
	return t.Code == e.Code
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted explanation to the error.
func (e *Error) WithDetailf(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithPath records the file or destination involved.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithIndex records the position of the offending builder item.
func (e *Error) WithIndex(i int) *Error {
	e.Index = i
	return e
}

// WithLine records the page file line.
func (e *Error) WithLine(line int) *Error {
	e.Line = line
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
			Index:   -1,
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		DocURL:   template.DocURL,
		Index:    -1,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
		Index:    -1,
	}
}

// FromError wraps a standard error in an Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	if te, ok := err.(*Error); ok {
		return te
	}
	return New(code).Wrap(err)
}
