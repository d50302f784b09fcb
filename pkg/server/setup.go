package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"golang.org/x/net/netutil"
)

// Logger defines the logging operations the server needs.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=server
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Server owns the listening socket and the http.Server serving it.
type Server struct {
	cfg        Config
	httpServer *http.Server
	logger     Logger

	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}
}

// NewServer returns a Server that will serve handler on cfg.Address once
// started.
func NewServer(cfg Config, handler http.Handler, logger Logger) *Server {
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}

	httpServer := &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}
	if cfg.MaxConnections == 1 {
		httpServer.SetKeepAlivesEnabled(false)
	}

	return &Server{
		cfg:        cfg,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start binds the listening socket and serves requests in the background.
// It returns once the socket is bound.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return ErrAlreadyStarted
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("cannot listen on %s: %w", s.cfg.Address, err)
	}
	if s.cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, s.cfg.MaxConnections)
	}

	s.listener = ln
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server stopped unexpectedly", err, map[string]interface{}{
				"address": ln.Addr().String(),
			})
		}
	}()

	s.logger.Info("valhalla-sim running", nil, map[string]interface{}{
		"address":         ln.Addr().String(),
		"max_connections": s.cfg.MaxConnections,
	})
	return nil
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop releases the listening socket and waits for in-flight requests to
// finish or for ctx to expire.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	started := s.listener != nil
	s.mu.Unlock()

	if !started {
		return nil
	}

	s.logger.Info("Shutting down the server...", nil, nil)
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("cannot shut down http server: %w", err)
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
