// Package server implements the service process: an HTTP server with two
// static JSON routes. There is no state beyond the process itself.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"skiff/internal/config"
	"skiff/pkg/version"
)

// Server wraps the echo instance serving the two routes.
type Server struct {
	echo *echo.Echo
	cfg  *config.Config
}

// New creates the service server and registers its routes.
func New(cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo: e,
		cfg:  cfg,
	}

	e.GET("/", s.handleIndex)
	e.GET("/health", s.handleHealth)

	return s
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.JSON(http.StatusOK, IndexResponse{
		Message: "Welcome to Skiff",
		Status:  "running",
		Version: version.Version(),
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "service is up",
	})
}

// Start begins serving and blocks until the listener fails or Shutdown is
// called. http.ErrServerClosed is reported as nil.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	log.Info().Int("port", s.cfg.Server.Port).Msg("Starting server")

	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down server")
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying echo instance for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
