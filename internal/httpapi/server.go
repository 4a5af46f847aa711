package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Status - state of the chat server exposed over health endpoints
type Status interface {
	Clients() int
	Stopped() bool
}

// Server - HTTP surface of the chat: WebSocket clients, health and metrics.
type Server struct {
	echo   *echo.Echo
	status Status
	ws     http.Handler
	logger *slog.Logger
}

// NewServer - builds HTTP server. ws handles WebSocket upgrade requests, it may be nil to disable WebSocket clients.
func NewServer(status Status, ws http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	srv := &Server{
		echo:   e,
		status: status,
		ws:     ws,
		logger: logger,
	}
	srv.registerRoutes()
	return srv
}

// Handler - returns root HTTP handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Serve - serves HTTP requests on the listener until Shutdown.
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("Serving HTTP", "address", listener.Addr().String())
	s.echo.Listener = listener
	err := s.echo.Start("")
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown - gracefully stops HTTP server. Hijacked WebSocket connections are not affected.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
