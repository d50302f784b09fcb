package handler

import (
	"net/http"

	"go.uber.org/fx"
)

// FXModule provides *Handler, also exposed as the http.Handler served by
// the server package.
var FXModule = fx.Module("handler",
	fx.Provide(
		NewHandler,
		func(h *Handler) http.Handler { return h },
	),
)
