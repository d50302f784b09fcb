// Package config loads the valhalla-sim configuration from the environment
// with viper. Every variable is optional:
//
//	OTEL_EXPORTER_OTLP_ENDPOINT          collector URL (http://otel-collector:4318/v1/traces)
//	OTEL_SERVICE_NAME                    service name (valhalla-sim)
//	OTEL_SERVICE_VERSION                 service version (1.0.0)
//	OTEL_SERVICE_NAMESPACE               service namespace (valhalla)
//	APP_ENV                              deployment environment (production)
//	OTEL_TRACES_EXPORTER                 otlp, console or none (otlp)
//	TRACER_FLUSH_ON_SHUTDOWN             flush buffered spans on stop (false)
//	TRACER_ATTRIBUTE_COUNT_LIMIT         span attribute count limit (SDK default)
//	TRACER_ATTRIBUTE_VALUE_LENGTH_LIMIT  span attribute value length limit (SDK default)
//	SERVER_ADDRESS                       listen address (:3003)
//	SERVER_MAX_CONNECTIONS               concurrent connections, 0 for no bound (1)
//	ZAP_LOGGER_LEVEL                     debug, info, warning, error (info)
//	LOGGER_ENABLE_TRACING                trace ids in request logs (true)
package config
