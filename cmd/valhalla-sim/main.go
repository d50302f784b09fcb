// Command valhalla-sim serves /data and /health on :3003 and exports a
// server span for every request to an OpenTelemetry collector.
package main

import (
	"go.uber.org/fx"

	"github.com/valhalla/valhalla-sim/pkg/config"
	"github.com/valhalla/valhalla-sim/pkg/handler"
	"github.com/valhalla/valhalla-sim/pkg/logger"
	"github.com/valhalla/valhalla-sim/pkg/server"
	"github.com/valhalla/valhalla-sim/pkg/tracer"
)

func main() {
	fx.New(
		logger.FXEventLogger,
		fx.Options(appOptions()...),
	).Run()
}

// appOptions wires every module. Stop hooks run in reverse order, so the
// listener is released before the tracer is flushed and the logger synced.
func appOptions() []fx.Option {
	return []fx.Option{
		config.FXModule,
		logger.FXModule,
		tracer.FXModule,
		handler.FXModule,
		server.FXModule,
		fx.Provide(
			func(l *logger.Logger) tracer.Logger { return l },
			func(l *logger.Logger) handler.Logger { return l },
			func(l *logger.Logger) server.Logger { return l },
		),
	}
}
