package tracer

const (
	// DefaultServiceName is used for the resource when no name is configured.
	DefaultServiceName = "valhalla-sim"

	// DefaultCollectorEndpoint is the OTLP/HTTP traces URL of the collector.
	DefaultCollectorEndpoint = "http://otel-collector:4318/v1/traces"

	// InstrumentationName names the tracer handed out by Tracer.
	InstrumentationName = "github.com/valhalla/valhalla-sim"
)

// Exporter kinds accepted in Config.Exporter.
const (
	ExporterOTLP    = "otlp"
	ExporterConsole = "console"
	ExporterNone    = "none"
)

// Config defines how the tracer provider is built.
type Config struct {
	// ServiceName is recorded as service.name on every exported span.
	//
	// Environment variable: OTEL_SERVICE_NAME
	// Default: "valhalla-sim"
	ServiceName string `mapstructure:"service_name"`

	// ServiceVersion is recorded as service.version when set.
	//
	// Environment variable: OTEL_SERVICE_VERSION
	ServiceVersion string `mapstructure:"service_version"`

	// ServiceNamespace is recorded as service.namespace when set.
	//
	// Environment variable: OTEL_SERVICE_NAMESPACE
	ServiceNamespace string `mapstructure:"service_namespace"`

	// AppEnv is recorded as deployment.environment when set.
	//
	// Environment variable: APP_ENV
	AppEnv string `mapstructure:"app_env"`

	// Exporter selects where finished spans go: "otlp", "console" or "none".
	//
	// Environment variable: OTEL_TRACES_EXPORTER
	// Default: "otlp"
	Exporter string `mapstructure:"exporter"`

	// CollectorEndpoint is the full OTLP/HTTP traces URL, scheme included.
	// An http:// scheme disables TLS.
	//
	// Environment variable: OTEL_EXPORTER_OTLP_ENDPOINT
	// Default: "http://otel-collector:4318/v1/traces"
	CollectorEndpoint string `mapstructure:"collector_endpoint"`

	// FlushOnShutdown makes the fx lifecycle shut the provider down on stop,
	// exporting spans still held by the batch processor. When false the
	// provider is left alone and buffered spans are dropped at exit.
	//
	// Environment variable: TRACER_FLUSH_ON_SHUTDOWN
	// Default: false
	FlushOnShutdown bool `mapstructure:"flush_on_shutdown"`

	// AttributeCountLimit caps attributes per span. Zero keeps the SDK default.
	//
	// Environment variable: TRACER_ATTRIBUTE_COUNT_LIMIT
	AttributeCountLimit int `mapstructure:"attribute_count_limit"`

	// AttributeValueLengthLimit truncates string attribute values. Zero keeps
	// the SDK default.
	//
	// Environment variable: TRACER_ATTRIBUTE_VALUE_LENGTH_LIMIT
	AttributeValueLengthLimit int `mapstructure:"attribute_value_length_limit"`
}
