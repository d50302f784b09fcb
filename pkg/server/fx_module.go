package server

import (
	"go.uber.org/fx"
)

// FXModule provides *Server for the http.Handler in the container and ties
// its listener to the application lifecycle.
var FXModule = fx.Module("server",
	fx.Provide(
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts the listener when the application starts
// and releases it when the application stops.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.StartStopHook(s.Start, s.Stop))
}
