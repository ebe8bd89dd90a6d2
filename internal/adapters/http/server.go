package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server serves the health endpoints. Reports are built while the request is
// served, so WriteTimeout must exceed the slowest expected report.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// NewServer creates a server listening on cfg.Host:cfg.Port.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		logger: logger,
	}
}

// Start listens on the configured address and serves until Shutdown. It
// returns nil after a graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown. The listener is closed when
// Serve returns.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("health server listening", slog.String("addr", ln.Addr().String()))

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving health endpoints: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight reports to be
// written. Without a deadline on ctx it waits at most 10 seconds.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	start := time.Now()
	err := s.srv.Shutdown(ctx)
	s.logger.Info("health server stopped",
		slog.Duration("drain", time.Since(start)),
		slog.Bool("clean", err == nil),
	)
	return err
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}
