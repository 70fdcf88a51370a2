// Package server runs the HTTP listener and drains it on shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"sentinel-backend/internal/config"
	"sentinel-backend/internal/logging"

	"github.com/sirupsen/logrus"
)

// Server owns one HTTP listener and its lifecycle state machine.
type Server struct {
	addr            string
	shutdownTimeout time.Duration

	srv     *http.Server
	logger  *logrus.Logger
	machine Machine

	ready     chan struct{}
	boundAddr net.Addr
}

// New creates a server for cfg serving handler. Nothing is bound until Run.
func New(cfg config.Config, handler http.Handler, logger *logrus.Logger) (*Server, error) {
	machine, err := NewMachine(logging.NewSlogHandler(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create lifecycle state machine: %w", err)
	}

	return &Server{
		addr:            cfg.Addr(),
		shutdownTimeout: cfg.Server.ShutdownTimeoutDuration,
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger:  logger,
		machine: machine,
		ready:   make(chan struct{}),
	}, nil
}

// State returns the current lifecycle state.
func (s *Server) State() string {
	return s.machine.GetState()
}

// Ready is closed once the listener is bound.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound listener address. Only valid after Ready is closed.
func (s *Server) Addr() net.Addr {
	return s.boundAddr
}

// Run binds the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.fail()
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then stops
// accepting, waits for in-flight requests (bounded by the shutdown timeout,
// zero means no bound) and returns nil. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if err := s.machine.Transition(StateRunning); err != nil {
		ln.Close()
		return fmt.Errorf("server cannot start: %w", err)
	}

	port := 0
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	s.logger.WithField("port", port).Infof("Backend service listening on port %d", port)

	s.boundAddr = ln.Addr()
	close(s.ready)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		s.fail()
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	if err := s.machine.Transition(StateDraining); err != nil {
		s.logger.WithError(err).Warn("unexpected lifecycle state")
	}
	s.logger.Info("Shutting down server...")

	shutdownCtx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.shutdownTimeout)
		defer cancel()
	}

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Errorf("Server forced to shutdown: %v", err)
		s.srv.Close()
		s.fail()
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.fail()
		return fmt.Errorf("server failed: %w", err)
	}

	if err := s.machine.Transition(StateTerminated); err != nil {
		s.logger.WithError(err).Warn("unexpected lifecycle state")
	}
	s.logger.Info("Server exiting")
	return nil
}

func (s *Server) fail() {
	if err := s.machine.Transition(StateError); err != nil {
		s.logger.WithError(err).Debug("lifecycle already final")
	}
}
