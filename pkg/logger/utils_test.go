package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(enableTracing bool) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFromZap(zap.New(core), enableTracing), logs
}

func TestLevelsAndFields(t *testing.T) {
	log, logs := newObservedLogger(false)
	boom := errors.New("boom")

	log.Debug("debug", nil, nil)
	log.Info("info", nil, map[string]interface{}{"address": ":3003"})
	log.Warn("warn", nil, nil)
	log.Error("error", boom, map[string]interface{}{"target": "/x"}, map[string]interface{}{"target": "/y"})

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, ":3003", entries[1].ContextMap()["address"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)

	errEntry := entries[3].ContextMap()
	assert.Equal(t, "boom", errEntry["error"])
	assert.Equal(t, "/y", errEntry["target"], "later field maps override earlier ones")
}

func TestWithContextAddsTraceFields(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "incoming-request")
	defer span.End()

	log, logs := newObservedLogger(true)
	log.InfoWithContext(ctx, "request handled", nil, map[string]interface{}{"status": 200})

	entries := logs.FilterMessage("request handled").AllUntimed()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestWithContextWithoutTracing(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "incoming-request")
	defer span.End()

	t.Run("disabled", func(t *testing.T) {
		log, logs := newObservedLogger(false)
		log.WarnWithContext(ctx, "disabled", nil)

		fields := logs.AllUntimed()[0].ContextMap()
		assert.NotContains(t, fields, "trace_id")
		assert.NotContains(t, fields, "span_id")
	})

	t.Run("no span", func(t *testing.T) {
		log, logs := newObservedLogger(true)
		log.ErrorWithContext(context.Background(), "no span", errors.New("boom"))

		fields := logs.AllUntimed()[0].ContextMap()
		assert.NotContains(t, fields, "trace_id")
		assert.Equal(t, "boom", fields["error"])
	})
}
