package tracer

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Tracer returns the tracer spans are started from. Every call returns the
// same tracer.
func (t *Tracer) Tracer() trace.Tracer {
	return t.tracer
}

// StartSpan starts a span as a child of whatever span ctx carries, or a
// root span when it carries none. The caller must End the span.
//
// Example:
//
//	ctx, span := t.StartSpan(ctx, "incoming-request", trace.WithSpanKind(trace.SpanKindServer))
//	defer span.End()
func (t *Tracer) StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

// RecordErrorOnSpan records err on span and sets its status to error.
func (t *Tracer) RecordErrorOnSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetAttributes adds attributes to a span from a plain map. Keys are applied
// in sorted order, so when the span's attribute count limit is reached the
// same keys are kept on every call. Strings, ints, int64s, float64s and bools
// keep their type; anything else is stored as its fmt.Sprint form.
//
// Example:
//
//	t.SetAttributes(span, map[string]interface{}{
//	    "http.method":      "GET",
//	    "http.status_code": 200,
//	})
func (t *Tracer) SetAttributes(span trace.Span, attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kvs := make([]attribute.KeyValue, len(keys))
	for i, k := range keys {
		kvs[i] = toAttribute(k, attrs[k])
	}
	span.SetAttributes(kvs...)
}

func toAttribute(key string, value interface{}) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	}
	return attribute.String(key, fmt.Sprint(value))
}

// Extract returns ctx enriched with the remote span context found in
// carrier. When the carrier holds no valid traceparent, ctx is returned
// without a parent and spans started from it are roots.
//
// For inbound HTTP requests pass propagation.HeaderCarrier(r.Header), which
// looks headers up case-insensitively.
func (t *Tracer) Extract(ctx context.Context, carrier propagation.TextMapCarrier) context.Context {
	return t.propagator.Extract(ctx, carrier)
}

// ForceFlush exports every finished span still held by the batch processor.
func (t *Tracer) ForceFlush(ctx context.Context) error {
	return t.provider.ForceFlush(ctx)
}

// Shutdown flushes buffered spans and stops the provider. Spans started
// afterwards are not recorded.
func (t *Tracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}
