package tracer

import "errors"

var (
	// ErrUnknownExporter is returned by NewClient for an unsupported Config.Exporter.
	ErrUnknownExporter = errors.New("unknown span exporter")

	// ErrInvalidCollectorEndpoint is returned by NewClient when the collector
	// URL cannot be used by the OTLP/HTTP exporter.
	ErrInvalidCollectorEndpoint = errors.New("invalid collector endpoint")
)
