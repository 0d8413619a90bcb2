// Package topus builds markup documents from Go code and writes them out.
//
// This is the recommended import for most programs:
//
//	import "github.com/topus-dev/topus"
//
// Usage:
//
//	doc := document.New("Hello", document.WithBody(
//	    dom.H1(dom.Sep, dom.NewText("Hello")),
//	    dom.El("a", "href", dom.Eq, "/docs", dom.Sep, dom.NewText("Docs")),
//	))
//	if err := topus.Build(ctx, doc, "dist/index.html"); err != nil {
//	    log.Fatal(err)
//	}
//
// Trees are built with package dom, the default skeleton comes from
// package document, and destinations are handled by package output.
package topus

import (
	"context"
	"fmt"

	"github.com/topus-dev/topus/internal/errors"
	"github.com/topus-dev/topus/pkg/output"
)

// Error is the structured error returned by every topus package.
type Error = errors.Error

// Sentinel errors, matched with errors.Is.
var (
	ErrMalformedBuilderInput error = errors.ErrMalformedBuilderInput
	ErrIOFailure             error = errors.ErrIOFailure
	ErrConfig                error = errors.ErrConfig
	ErrPage                  error = errors.ErrPage
)

// Build renders node and writes it to dest, a file path or an
// s3://bucket/key URL. File destinations need no options.
func Build(ctx context.Context, node fmt.Stringer, dest string) error {
	return BuildWith(ctx, node, dest, output.Options{})
}

// BuildWith is Build with explicit output options, e.g. an S3 client.
func BuildWith(ctx context.Context, node fmt.Stringer, dest string, opts output.Options) error {
	if node == nil {
		return errors.New("T008").WithDetail("nothing to build")
	}
	return output.Write(ctx, dest, []byte(node.String()), opts)
}
