package handler

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/valhalla/valhalla-sim/pkg/tracer"
)

const (
	// SpanName is the name of the span recorded for every handled request.
	SpanName = "incoming-request"

	// EventResourceNotFound is added to the span of unmatched requests.
	EventResourceNotFound = "Resource not found"

	// UnknownHost is recorded as http.host when the request has no Host header.
	UnknownHost = "unknown"
)

// Span attribute keys.
const (
	AttrHTTPMethod     = "http.method"
	AttrHTTPTarget     = "http.target"
	AttrHTTPHost       = "http.host"
	AttrHTTPStatusCode = "http.status_code"
)

// Logger defines the logging operations the handler needs.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Handler answers the fixed valhalla-sim routes and records one server span
// per GET request. It holds no mutable state, so the same request always
// gets the same response.
type Handler struct {
	tracer *tracer.Tracer
	logger Logger
}

// NewHandler returns a Handler that starts its spans from t.
func NewHandler(t *tracer.Tracer, logger Logger) *Handler {
	return &Handler{
		tracer: t,
		logger: logger,
	}
}

// ServeHTTP handles a single request.
//
// The span is parented to the trace context found in the request headers,
// if any, and is ended on every return path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.logger.DebugWithContext(r.Context(), "unsupported method", nil, map[string]interface{}{
			"method": r.Method,
			"target": requestTarget(r),
		})
		http.Error(w, fmt.Sprintf("Unsupported method (%q)", r.Method), http.StatusNotImplemented)
		return
	}

	ctx := h.tracer.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := h.tracer.StartSpan(ctx, SpanName, trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	target := requestTarget(r)
	h.tracer.SetAttributes(span, map[string]interface{}{
		AttrHTTPMethod: http.MethodGet,
		AttrHTTPTarget: target,
		AttrHTTPHost:   requestHost(r),
	})

	res, ok := routes[target]
	if !ok {
		h.notFound(ctx, w, span, target)
		return
	}
	h.respond(ctx, w, span, target, res)
}

func (h *Handler) respond(ctx context.Context, w http.ResponseWriter, span trace.Span, target string, res response) {
	w.Header().Set("Content-Type", res.contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.body); err != nil {
		h.tracer.RecordErrorOnSpan(span, err)
		h.logger.ErrorWithContext(ctx, "failed to write response", err, map[string]interface{}{
			"target": target,
		})
		return
	}
	h.tracer.SetAttributes(span, map[string]interface{}{AttrHTTPStatusCode: http.StatusOK})

	h.logger.InfoWithContext(ctx, "request handled", nil, map[string]interface{}{
		"target": target,
		"status": http.StatusOK,
	})
}

func (h *Handler) notFound(ctx context.Context, w http.ResponseWriter, span trace.Span, target string) {
	w.WriteHeader(http.StatusNotFound)
	h.tracer.SetAttributes(span, map[string]interface{}{AttrHTTPStatusCode: http.StatusNotFound})
	span.SetStatus(codes.Error, "")
	span.AddEvent(EventResourceNotFound)

	h.logger.InfoWithContext(ctx, "request handled", nil, map[string]interface{}{
		"target": target,
		"status": http.StatusNotFound,
	})
}
