package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/glide-ui/glide/pkg/transition"
)

// Default tracer name for glide applications.
const defaultTracerName = "glide"

// TracesConfig configures the OpenTelemetry observer.
type TracesConfig struct {
	// TracerName is the name of the tracer (default: "glide").
	TracerName string

	// TracerProvider supplies the tracer. Default: the global provider.
	TracerProvider trace.TracerProvider

	// AttributeExtractor adds custom attributes to every span.
	AttributeExtractor func(kind transition.Kind) []attribute.KeyValue
}

// TracesOption configures the OpenTelemetry observer.
type TracesOption func(*TracesConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracesOption {
	return func(c *TracesConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracesOption {
	return func(c *TracesConfig) {
		c.TracerProvider = tp
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(fn func(kind transition.Kind) []attribute.KeyValue) TracesOption {
	return func(c *TracesConfig) {
		c.AttributeExtractor = fn
	}
}

// Traces is a transition.Observer that records one span per finished
// transition. Spans are emitted retroactively at resolution time with
// the measured start timestamp, since a transition has no carrier to
// thread a live span through.
type Traces struct {
	tracer  trace.Tracer
	extract func(kind transition.Kind) []attribute.KeyValue
}

// NewTraces creates the OpenTelemetry observer.
func NewTraces(opts ...TracesOption) *Traces {
	config := TracesConfig{
		TracerName: defaultTracerName,
	}
	for _, opt := range opts {
		opt(&config)
	}

	var tracer trace.Tracer
	if config.TracerProvider != nil {
		tracer = config.TracerProvider.Tracer(config.TracerName)
	} else {
		tracer = otel.Tracer(config.TracerName)
	}

	return &Traces{
		tracer:  tracer,
		extract: config.AttributeExtractor,
	}
}

// TransitionStarted implements transition.Observer.
func (t *Traces) TransitionStarted(kind transition.Kind) {}

// TransitionFinished implements transition.Observer.
func (t *Traces) TransitionFinished(kind transition.Kind, res transition.Resolution, elapsed time.Duration) {
	end := time.Now()

	attrs := []attribute.KeyValue{
		attribute.String("transition.kind", kind.String()),
		attribute.String("transition.resolution", res.String()),
	}
	if t.extract != nil {
		attrs = append(attrs, t.extract(kind)...)
	}

	_, span := t.tracer.Start(context.Background(), "transition."+kind.String(),
		trace.WithTimestamp(end.Add(-elapsed)),
		trace.WithAttributes(attrs...),
	)
	span.End(trace.WithTimestamp(end))
}
