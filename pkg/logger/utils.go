package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// convertToZapFields turns the error and field maps into zap fields.
// Later maps override earlier ones on duplicate keys.
func (l *Logger) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	merged := make(map[string]interface{})
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			merged[key] = value
		}
	}

	zapFields := make([]zap.Field, 0, len(merged)+1)
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	for key, value := range merged {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zapFields
}

// traceFields returns trace_id and span_id for the span in ctx, or nil when
// tracing is disabled or ctx carries no valid span.
func (l *Logger) traceFields(ctx context.Context) map[string]interface{} {
	if !l.tracingEnabled || ctx == nil {
		return nil
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return map[string]interface{}{
		"trace_id": sc.TraceID().String(),
		"span_id":  sc.SpanID().String(),
	}
}

// Info logs an informational message, along with an optional error and structured fields.
//
// Example:
//
//	logger.Info("valhalla-sim running", nil, map[string]interface{}{
//	    "address": ":3003",
//	})
func (l *Logger) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Debug logs a debug-level message.
func (l *Logger) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Warn logs a warning message, for situations that need attention but did
// not fail the current operation.
func (l *Logger) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs an error message, including details of the error and additional context fields.
//
// Example:
//
//	if _, err := w.Write(body); err != nil {
//	    logger.Error("failed to write response", err, map[string]interface{}{
//	        "target": "/data",
//	    })
//	}
func (l *Logger) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// InfoWithContext behaves like Info and adds trace_id and span_id from ctx
// when tracing is enabled.
func (l *Logger) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, append(fields, l.traceFields(ctx))...)...)
}

// DebugWithContext behaves like Debug and adds trace_id and span_id from ctx
// when tracing is enabled.
func (l *Logger) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, append(fields, l.traceFields(ctx))...)...)
}

// WarnWithContext behaves like Warn and adds trace_id and span_id from ctx
// when tracing is enabled.
func (l *Logger) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, append(fields, l.traceFields(ctx))...)...)
}

// ErrorWithContext behaves like Error and adds trace_id and span_id from ctx
// when tracing is enabled.
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, append(fields, l.traceFields(ctx))...)...)
}
