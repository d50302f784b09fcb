// Package logger provides the structured logger used across valhalla-sim.
//
// It wraps Uber's zap with a small, map-based API: every method takes a
// message, an optional error and any number of field maps.
//
//	log, err := logger.NewLoggerClient(logger.Config{
//		Level:         "info",
//		EnableTracing: true,
//		ServiceName:   "valhalla-sim",
//	})
//
//	log.Info("valhalla-sim running on 3003", nil, nil)
//	log.Error("failed to write response", err, map[string]interface{}{
//		"target": "/data",
//	})
//
// Tracing Integration:
//
// With EnableTracing set, the *WithContext methods add the trace_id and
// span_id of the span carried by the context, so request logs can be joined
// with the spans exported to the collector:
//
//	log.InfoWithContext(ctx, "request handled", nil, map[string]interface{}{
//		"status": 200,
//	})
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXEventLogger,
//		logger.FXModule,
//		fx.Provide(func() logger.Config { return logger.Config{Level: "debug"} }),
//	)
//
// Configuration:
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error
//	LOGGER_ENABLE_TRACING=true      # add trace_id/span_id to contextual logs
//
// All methods are safe for concurrent use.
package logger
