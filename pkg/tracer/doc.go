// Package tracer is the tracing context of valhalla-sim.
//
// It builds an OpenTelemetry tracer provider whose spans are batched and
// exported over OTLP/HTTP to a collector, together with a W3C trace-context
// propagator used to continue traces started by callers.
//
// Unlike most otel setups, the provider and propagator are not installed as
// process globals. NewClient returns a *Tracer that is passed explicitly to
// the components that start spans:
//
//	t, err := tracer.NewClient(tracer.Config{
//		ServiceName:       "valhalla-sim",
//		CollectorEndpoint: tracer.DefaultCollectorEndpoint,
//	}, log)
//
//	func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
//		ctx := t.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
//		ctx, span := t.StartSpan(ctx, "incoming-request", trace.WithSpanKind(trace.SpanKindServer))
//		defer span.End()
//		// ...
//	}
//
// Exporters:
//
//   - otlp (default): OTLP over HTTP to Config.CollectorEndpoint
//   - console: pretty JSON spans on stdout
//   - none: no export, spans only reach processors added with WithSpanProcessor
//
// FX Module Integration:
//
//	app := fx.New(
//		tracer.FXModule,
//		fx.Provide(func() tracer.Config { ... }, func() tracer.Logger { ... }),
//	)
//
// On stop the module flushes and shuts the provider down when
// Config.FlushOnShutdown is true. Otherwise spans still buffered in the
// batch processor are dropped when the process exits.
package tracer
