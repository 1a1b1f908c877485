package instrument

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tagtree-dev/tagtree/pkg/dom"
	"github.com/tagtree-dev/tagtree/pkg/render"
)

// Default tracer name for render spans.
const defaultTracerName = "tagtree"

// Default span name for render passes.
const defaultSpanName = "tagtree.render"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "tagtree").
	TracerName string

	// SpanName is the name given to render-pass spans
	// (default: "tagtree.render").
	SpanName string

	// Attributes are added to every span.
	Attributes []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithSpanName sets the span name used for render passes.
func WithSpanName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.SpanName = name
	}
}

// WithAttributes adds static attributes to every span.
func WithAttributes(attrs ...attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
		SpanName:   defaultSpanName,
	}
}

// OpenTelemetry creates render middleware that traces every render pass.
//
// The middleware:
//   - Creates a span per pass carrying the root tag and layout mode
//   - Threads the span context through to inner middleware
//   - Records errors and sets span status
//   - Records node and byte counts as span attributes
//
// The tracer comes from the global OpenTelemetry tracer provider. Configure
// it in your main() before rendering:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
//
//	r := render.NewRenderer(render.Config{})
//	r.Use(instrument.OpenTelemetry(
//	    instrument.WithTracerName("my-site"),
//	))
func OpenTelemetry(opts ...OTelOption) render.Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Resolve tracer from global provider
	config.tracer = otel.Tracer(config.TracerName)

	return func(ctx context.Context, info *render.PassInfo, next func(context.Context) error) error {
		attrs := []attribute.KeyValue{
			attribute.String("tagtree.root", rootLabel(info.Root)),
			attribute.Bool("tagtree.pretty", info.Pretty),
		}
		attrs = append(attrs, config.Attributes...)

		spanCtx, span := config.tracer.Start(
			ctx,
			config.SpanName,
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		err := next(spanCtx)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		span.SetAttributes(
			attribute.Int("tagtree.nodes", info.Stats.Nodes),
			attribute.Int64("tagtree.bytes", info.Stats.Bytes),
		)

		return err
	}
}

// rootLabel describes the pass root for span attributes.
func rootLabel(n *dom.Node) string {
	if n == nil {
		return ""
	}
	if n.Kind() == dom.KindElement {
		return n.Tag()
	}
	return n.Kind().String()
}
