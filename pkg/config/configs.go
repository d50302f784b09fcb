package config

import (
	"github.com/valhalla/valhalla-sim/pkg/logger"
	"github.com/valhalla/valhalla-sim/pkg/server"
	"github.com/valhalla/valhalla-sim/pkg/tracer"
)

// Config aggregates the configuration of every valhalla-sim component.
type Config struct {
	Logger logger.Config `mapstructure:"logger"`
	Tracer tracer.Config `mapstructure:"tracer"`
	Server server.Config `mapstructure:"server"`
}

// envBindings maps configuration keys to the environment variables they are
// read from.
var envBindings = map[string]string{
	"logger.level":          "ZAP_LOGGER_LEVEL",
	"logger.enable_tracing": "LOGGER_ENABLE_TRACING",
	"logger.service_name":   "OTEL_SERVICE_NAME",

	"tracer.service_name":                 "OTEL_SERVICE_NAME",
	"tracer.service_version":              "OTEL_SERVICE_VERSION",
	"tracer.service_namespace":            "OTEL_SERVICE_NAMESPACE",
	"tracer.app_env":                      "APP_ENV",
	"tracer.exporter":                     "OTEL_TRACES_EXPORTER",
	"tracer.collector_endpoint":           "OTEL_EXPORTER_OTLP_ENDPOINT",
	"tracer.flush_on_shutdown":            "TRACER_FLUSH_ON_SHUTDOWN",
	"tracer.attribute_count_limit":        "TRACER_ATTRIBUTE_COUNT_LIMIT",
	"tracer.attribute_value_length_limit": "TRACER_ATTRIBUTE_VALUE_LENGTH_LIMIT",

	"server.address":         "SERVER_ADDRESS",
	"server.max_connections": "SERVER_MAX_CONNECTIONS",
}

var defaults = map[string]interface{}{
	"logger.level":          logger.Info,
	"logger.enable_tracing": true,
	"logger.service_name":   tracer.DefaultServiceName,

	"tracer.service_name":                 tracer.DefaultServiceName,
	"tracer.service_version":              "1.0.0",
	"tracer.service_namespace":            "valhalla",
	"tracer.app_env":                      "production",
	"tracer.exporter":                     tracer.ExporterOTLP,
	"tracer.collector_endpoint":           tracer.DefaultCollectorEndpoint,
	"tracer.flush_on_shutdown":            false,
	"tracer.attribute_count_limit":        0,
	"tracer.attribute_value_length_limit": 0,

	"server.address":         server.DefaultAddress,
	"server.max_connections": 1,
}
