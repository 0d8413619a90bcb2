// Package render provides instrumented rendering of markup trees.
//
// The core serialization lives in package dom and is total: attributes and
// children are emitted in stored order with no inserted whitespace. A
// Renderer wraps it with an OpenTelemetry span per render, a debug log
// line, and an optional Observer used for metrics.
//
// # Basic Usage
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(ctx, dom.El("p", dom.Sep, "hi"))
//
// # Streaming
//
// For large documents, stream straight to the destination:
//
//	err := r.RenderDocument(ctx, w, document.Default())
//
// Errors are only ever those of the destination writer.
package render
