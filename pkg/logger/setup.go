package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper around Uber's Zap logger.
type Logger struct {
	// Zap is exposed for callers that need zap directly, such as the fx
	// event logger.
	Zap *zap.Logger

	tracingEnabled bool
}

// NewLoggerClient builds a JSON zap logger writing to stderr from cfg.
//
// Entries carry an ISO8601 "timestamp", a capitalised level, the caller and
// the initial fields "pid" and "service".
//
// Example:
//
//	log, err := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "valhalla-sim"})
//	if err != nil {
//		return err
//	}
//	log.Info("valhalla-sim running on 3003", nil, nil)
func NewLoggerClient(cfg Config) (*Logger, error) {
	logger, err := newZapConfig(cfg).Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("cannot build zap logger: %w", err)
	}

	return &Logger{
		Zap:            logger,
		tracingEnabled: cfg.EnableTracing,
	}, nil
}

// NewFromZap wraps an existing zap logger. Tests use it with zaptest and
// observer cores.
func NewFromZap(z *zap.Logger, enableTracing bool) *Logger {
	return &Logger{Zap: z.WithOptions(zap.AddCallerSkip(1)), tracingEnabled: enableTracing}
}

func newZapConfig(cfg Config) zap.Config {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	return zap.Config{
		Level:             zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case Debug:
		return zap.DebugLevel
	case Warning:
		return zap.WarnLevel
	case Error:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
