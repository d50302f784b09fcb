package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls how the service logger is built.
type Config struct {
	// Level is one of debug, info, warning or error. Anything else falls
	// back to info.
	//
	// Environment variable: ZAP_LOGGER_LEVEL
	Level string `mapstructure:"level"`

	// EnableTracing adds trace_id and span_id to entries written through
	// the *WithContext methods when the context carries a valid span.
	//
	// Environment variable: LOGGER_ENABLE_TRACING
	EnableTracing bool `mapstructure:"enable_tracing"`

	// ServiceName is attached to every entry as the "service" field.
	//
	// Environment variable: OTEL_SERVICE_NAME
	ServiceName string `mapstructure:"service_name"`
}
