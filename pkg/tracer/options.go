package tracer

import sdktrace "go.opentelemetry.io/otel/sdk/trace"

// Option customises NewClient.
type Option func(*options)

type options struct {
	exporter   sdktrace.SpanExporter
	processors []sdktrace.SpanProcessor
	global     bool
}

// WithExporter replaces the exporter selected by Config.Exporter. It is still
// wrapped in a batch span processor.
func WithExporter(exporter sdktrace.SpanExporter) Option {
	return func(o *options) {
		o.exporter = exporter
	}
}

// WithSpanProcessor registers an extra span processor, for example a
// tracetest.SpanRecorder in tests.
func WithSpanProcessor(processor sdktrace.SpanProcessor) Option {
	return func(o *options) {
		o.processors = append(o.processors, processor)
	}
}

// WithGlobal also installs the provider and propagator as the otel globals,
// for third-party instrumentation that only reads them.
func WithGlobal() Option {
	return func(o *options) {
		o.global = true
	}
}
