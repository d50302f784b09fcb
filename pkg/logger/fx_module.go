package logger

import (
	"context"
	"errors"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// FXModule provides *Logger built from a logger.Config found in the
// container and flushes it when the application stops.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// FXEventLogger routes fx's own lifecycle events through the service logger.
// It must be passed to fx.New at the top level.
var FXEventLogger = fx.WithLogger(func(l *Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: l.Zap}
})

// RegisterLoggerLifecycle handles cleanup (sync) of the Zap logger.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			err := client.Zap.Sync()
			// stderr on a terminal or pipe does not support fsync.
			if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
				return nil
			}
			return err
		},
	})
}
