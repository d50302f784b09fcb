package config

import (
	"go.uber.org/fx"

	"github.com/valhalla/valhalla-sim/pkg/logger"
	"github.com/valhalla/valhalla-sim/pkg/server"
	"github.com/valhalla/valhalla-sim/pkg/tracer"
)

// FXModule loads the configuration once and provides each component's
// section to the container.
var FXModule = fx.Module("config",
	fx.Provide(
		Load,
		func(cfg *Config) logger.Config { return cfg.Logger },
		func(cfg *Config) tracer.Config { return cfg.Tracer },
		func(cfg *Config) server.Config { return cfg.Server },
	),
)
