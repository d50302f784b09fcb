package tracer

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// Logger defines the logging operations the tracer needs.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=tracer
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Tracer is the tracing context of the service. It owns the tracer provider,
// the propagator used to read inbound trace context and the tracer spans
// are started from.
//
// A Tracer is built once at startup and handed to the components that need
// it. Nothing is installed as otel global state unless WithGlobal is used;
// the otel error handler is set separately by RegisterErrorHandler.
// All methods are safe for concurrent use.
type Tracer struct {
	provider   *sdktrace.TracerProvider
	propagator propagation.TextMapPropagator
	tracer     trace.Tracer
	logger     Logger
	cfg        Config
}

// NewClient builds the tracer provider described by cfg.
//
// The configured exporter is wrapped in a batch span processor, so export is
// asynchronous and best-effort: an unreachable collector never fails
// NewClient, it only produces export errors later. Those reach the otel
// error handler, see RegisterErrorHandler.
//
// Example:
//
//	t, err := tracer.NewClient(tracer.Config{
//	    ServiceName:       "valhalla-sim",
//	    Exporter:          tracer.ExporterOTLP,
//	    CollectorEndpoint: "http://otel-collector:4318/v1/traces",
//	}, log)
//	if err != nil {
//	    return err
//	}
//	ctx, span := t.StartSpan(ctx, "incoming-request")
//	defer span.End()
func NewClient(cfg Config, logger Logger, opts ...Option) (*Tracer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	exporter := o.exporter
	if exporter == nil {
		var err error
		exporter, err = newExporter(context.Background(), cfg)
		if err != nil {
			logger.Error("cannot initiate span exporter", err, map[string]interface{}{
				"exporter": cfg.Exporter,
				"endpoint": cfg.CollectorEndpoint,
			})
			return nil, err
		}
	}

	providerOptions := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(newResource(cfg)),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithRawSpanLimits(spanLimits(cfg)),
	}
	if exporter != nil {
		providerOptions = append(providerOptions, sdktrace.WithBatcher(exporter))
	}
	for _, processor := range o.processors {
		providerOptions = append(providerOptions, sdktrace.WithSpanProcessor(processor))
	}

	tp := sdktrace.NewTracerProvider(providerOptions...)
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})

	if o.global {
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagator)
	}

	logger.Info("tracer initialized", nil, map[string]interface{}{
		"service":  cfg.ServiceName,
		"exporter": exporterName(cfg, o),
		"endpoint": cfg.CollectorEndpoint,
	})

	return &Tracer{
		provider:   tp,
		propagator: propagator,
		tracer:     tp.Tracer(InstrumentationName),
		logger:     logger,
		cfg:        cfg,
	}, nil
}

// newExporter returns the exporter selected by cfg.Exporter, or nil for
// ExporterNone.
func newExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case ExporterOTLP, "":
		endpoint := cfg.CollectorEndpoint
		if endpoint == "" {
			endpoint = DefaultCollectorEndpoint
		}
		if err := validateEndpoint(endpoint); err != nil {
			return nil, err
		}
		client := otlptracehttp.NewClient(otlptracehttp.WithEndpointURL(endpoint))
		exporter, err := otlptrace.New(ctx, client)
		if err != nil {
			return nil, fmt.Errorf("cannot create otlp exporter: %w", err)
		}
		return exporter, nil
	case ExporterConsole:
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(os.Stdout))
		if err != nil {
			return nil, fmt.Errorf("cannot create console exporter: %w", err)
		}
		return exporter, nil
	case ExporterNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, cfg.Exporter)
	}
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCollectorEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidCollectorEndpoint, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host in %q", ErrInvalidCollectorEndpoint, endpoint)
	}
	return nil
}

func newResource(cfg Config) *resource.Resource {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(cfg.ServiceName),
	}
	if cfg.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.ServiceVersion))
	}
	if cfg.ServiceNamespace != "" {
		attrs = append(attrs, semconv.ServiceNamespace(cfg.ServiceNamespace))
	}
	if cfg.AppEnv != "" {
		attrs = append(attrs, semconv.DeploymentEnvironment(cfg.AppEnv))
	}
	return resource.NewWithAttributes(semconv.SchemaURL, attrs...)
}

// spanLimits starts from the SDK defaults (which honour the OTEL_SPAN_*
// environment variables) and applies the configured overrides.
func spanLimits(cfg Config) sdktrace.SpanLimits {
	limits := sdktrace.NewSpanLimits()
	if cfg.AttributeCountLimit > 0 {
		limits.AttributeCountLimit = cfg.AttributeCountLimit
	}
	if cfg.AttributeValueLengthLimit > 0 {
		limits.AttributeValueLengthLimit = cfg.AttributeValueLengthLimit
	}
	return limits
}

func exporterName(cfg Config, o options) string {
	switch {
	case o.exporter != nil:
		return "custom"
	case cfg.Exporter == "":
		return ExporterOTLP
	default:
		return cfg.Exporter
	}
}
