package render

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/topus-dev/topus/pkg/document"
	"github.com/topus-dev/topus/pkg/dom"
)

// Default tracer name for topus renders.
const defaultTracerName = "topus"

// Kinds reported to an Observer.
const (
	KindElement  = "element"
	KindText     = "text"
	KindComment  = "comment"
	KindDocument = "document"
)

// Observer is notified after every render.
type Observer interface {
	ObserveRender(kind string, bytes int64, d time.Duration, err error)
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	// TracerName is the name of the tracer (default: "topus").
	// Ignored when Tracer is set.
	TracerName string

	// Tracer overrides the tracer taken from the global provider.
	Tracer trace.Tracer

	// Logger receives one debug line per render.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Observer, if set, is notified of every render.
	Observer Observer
}

// Renderer serializes markup trees with tracing, logging and metrics.
// A Renderer is safe for concurrent use.
type Renderer struct {
	tracer   trace.Tracer
	logger   *slog.Logger
	observer Observer
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	tracer := config.Tracer
	if tracer == nil {
		name := config.TracerName
		if name == "" {
			name = defaultTracerName
		}
		tracer = otel.Tracer(name)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		tracer:   tracer,
		logger:   logger,
		observer: config.Observer,
	}
}

// RenderToString renders a node tree to a string.
func (r *Renderer) RenderToString(ctx context.Context, node dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(ctx, &buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, node dom.Node) error {
	return r.render(ctx, kindOf(node), func() (int64, error) {
		return dom.Write(w, node)
	})
}

// RenderDocument streams a complete document, doctype first.
func (r *Renderer) RenderDocument(ctx context.Context, w io.Writer, doc *document.Document) error {
	return r.render(ctx, KindDocument, func() (int64, error) {
		if doc == nil {
			return 0, nil
		}
		return doc.WriteTo(w)
	})
}

func (r *Renderer) render(ctx context.Context, kind string, write func() (int64, error)) error {
	ctx, span := r.tracer.Start(ctx, "topus.render",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("topus.node.kind", kind)),
	)
	defer span.End()

	start := time.Now()
	n, err := write()
	duration := time.Since(start)

	span.SetAttributes(attribute.Int64("topus.render.bytes", n))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.ErrorContext(ctx, "render failed", "kind", kind, "bytes", n, "error", err)
	} else {
		span.SetStatus(codes.Ok, "")
		r.logger.DebugContext(ctx, "rendered", "kind", kind, "bytes", n, "duration", duration)
	}

	if r.observer != nil {
		r.observer.ObserveRender(kind, n, duration, err)
	}
	return err
}

func kindOf(node dom.Node) string {
	switch node.(type) {
	case dom.Text:
		return KindText
	case dom.Comment:
		return KindComment
	default:
		return KindElement
	}
}
