package tracer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.uber.org/fx"
)

// FXModule provides *Tracer from a tracer.Config and a tracer.Logger and
// registers its shutdown hook.
var FXModule = fx.Module("tracer",
	fx.Provide(
		newFXClient,
	),
	fx.Invoke(RegisterErrorHandler, RegisterTracerLifecycle),
)

func newFXClient(cfg Config, logger Logger) (*Tracer, error) {
	return NewClient(cfg, logger)
}

// RegisterTracerLifecycle shuts the tracer provider down when the
// application stops, if Config.FlushOnShutdown is set.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer == nil || tracer.provider == nil {
				return nil
			}
			if !tracer.cfg.FlushOnShutdown {
				tracer.logger.Warn("skipping tracer shutdown, buffered spans may be lost", nil, nil)
				return nil
			}
			tracer.logger.Info("shutting down tracer...", nil, nil)
			return tracer.Shutdown(ctx)
		},
	})
}

// RegisterErrorHandler routes errors reported by the otel SDK, failed span
// exports among them, to logger as warnings. The handler is process-wide,
// so it is registered once per application rather than per Tracer.
func RegisterErrorHandler(logger Logger) {
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		logger.Warn("opentelemetry error", err, nil)
	}))
}
