package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

func newServerLogger(t *testing.T) *MockLogger {
	ctrl := gomock.NewController(t)
	mockLogger := NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("valhalla-sim running", nil, gomock.Any()).Times(1)
	mockLogger.EXPECT().Info("Shutting down the server...", nil, gomock.Any()).Times(1)
	return mockLogger
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	})
}

func get(t *testing.T, client *http.Client, url string) (int, string, error) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		return 0, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), err
}

func TestServer_StartStop(t *testing.T) {
	ctx := context.Background()
	s := NewServer(Config{Address: "127.0.0.1:0", MaxConnections: 1}, okHandler(), newServerLogger(t))

	require.Nil(t, s.Addr())
	require.NoError(t, s.Start(ctx))
	addr := s.Addr().String()

	resp, err := http.Get("http://" + addr + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
	assert.True(t, resp.Close, "keep-alives are disabled for a single connection")

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(stopCtx))

	_, err = net.DialTimeout("tcp", addr, time.Second)
	assert.Error(t, err, "the listening socket is released on stop")
}

func TestServer_StopBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewServer(Config{Address: "127.0.0.1:0"}, okHandler(), NewMockLogger(ctrl))

	assert.NoError(t, s.Stop(context.Background()))
}

func TestServer_StartTwice(t *testing.T) {
	ctx := context.Background()
	s := NewServer(Config{Address: "127.0.0.1:0"}, okHandler(), newServerLogger(t))

	require.NoError(t, s.Start(ctx))
	defer func() { require.NoError(t, s.Stop(ctx)) }()

	assert.True(t, errors.Is(s.Start(ctx), ErrAlreadyStarted))
}

func TestServer_AddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = occupied.Close() }()

	ctrl := gomock.NewController(t)
	s := NewServer(Config{Address: occupied.Addr().String()}, okHandler(), NewMockLogger(ctrl))

	assert.Error(t, s.Start(context.Background()))
}

func TestNewServer_DefaultAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewServer(Config{}, okHandler(), NewMockLogger(ctrl))

	assert.Equal(t, DefaultAddress, s.httpServer.Addr)
}

// concurrencyGauge records the highest number of requests it saw in flight.
type concurrencyGauge struct {
	inFlight atomic.Int32
	peak     atomic.Int32
	hold     time.Duration
}

func (p *concurrencyGauge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n := p.inFlight.Add(1)
	defer p.inFlight.Add(-1)
	for {
		peak := p.peak.Load()
		if n <= peak || p.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(p.hold)
	_, _ = w.Write([]byte("OK"))
}

func TestServer_OneConnectionAtATime(t *testing.T) {
	ctx := context.Background()
	gauge := &concurrencyGauge{hold: 20 * time.Millisecond}
	s := NewServer(Config{Address: "127.0.0.1:0", MaxConnections: 1}, gauge, newServerLogger(t))

	require.NoError(t, s.Start(ctx))
	defer func() { require.NoError(t, s.Stop(ctx)) }()

	client := &http.Client{Timeout: 10 * time.Second}
	url := fmt.Sprintf("http://%s/health", s.Addr())

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			status, body, err := get(t, client, url)
			if err != nil {
				return err
			}
			if status != http.StatusOK || body != "OK" {
				return fmt.Errorf("unexpected response %d %q", status, body)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), gauge.peak.Load())
}

func TestServer_UnboundedConnections(t *testing.T) {
	ctx := context.Background()

	var arrived atomic.Int32
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if arrived.Add(1) == 2 {
			close(release)
		}
		select {
		case <-release:
			w.WriteHeader(http.StatusOK)
		case <-time.After(5 * time.Second):
			w.WriteHeader(http.StatusGatewayTimeout)
		}
	})

	s := NewServer(Config{Address: "127.0.0.1:0", MaxConnections: 0}, handler, newServerLogger(t))
	require.NoError(t, s.Start(ctx))
	defer func() { require.NoError(t, s.Stop(ctx)) }()

	client := &http.Client{Timeout: 10 * time.Second}
	url := fmt.Sprintf("http://%s/data", s.Addr())

	var g errgroup.Group
	for i := 0; i < 2; i++ {
		g.Go(func() error {
			status, _, err := get(t, client, url)
			if err != nil {
				return err
			}
			if status != http.StatusOK {
				return fmt.Errorf("requests were not served concurrently: %d", status)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestRegisterServerLifecycle(t *testing.T) {
	mockLogger := newServerLogger(t)

	var s *Server
	app := fxtest.New(t,
		FXModule,
		fx.Provide(
			func() Config { return Config{Address: "127.0.0.1:0", MaxConnections: 1} },
			func() http.Handler { return okHandler() },
			func() Logger { return mockLogger },
		),
		fx.Populate(&s),
	)

	app.RequireStart()
	require.NotNil(t, s.Addr())

	status, body, err := get(t, http.DefaultClient, fmt.Sprintf("http://%s/health", s.Addr()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body)

	app.RequireStop()
}
