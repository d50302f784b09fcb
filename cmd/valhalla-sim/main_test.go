package main

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/valhalla/valhalla-sim/pkg/server"
)

func TestAppOptions(t *testing.T) {
	require.NoError(t, fx.ValidateApp(append(appOptions(), fx.NopLogger)...))
}

func TestApp_ServesRoutes(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:0")
	t.Setenv("OTEL_TRACES_EXPORTER", "none")
	t.Setenv("ZAP_LOGGER_LEVEL", "error")

	var s *server.Server
	app := fxtest.New(t, append(appOptions(), fx.Populate(&s))...)
	app.RequireStart()
	defer app.RequireStop()

	tests := []struct {
		path        string
		status      int
		contentType string
		body        string
	}{
		{path: "/data", status: http.StatusOK, contentType: "application/json", body: `{"from":"valhalla","result":"ok"}`},
		{path: "/health", status: http.StatusOK, contentType: "text/plain", body: "OK"},
		{path: "/nowhere", status: http.StatusNotFound, body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(fmt.Sprintf("http://%s%s", s.Addr(), tt.path))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.contentType, resp.Header.Get("Content-Type"))
			assert.Equal(t, tt.body, string(body))
		})
	}
}
