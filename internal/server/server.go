package server

import (
	"context"
	"net/http"

	"github.com/recipe-mgmt/recipe-storage/config"
	"github.com/recipe-mgmt/recipe-storage/internal/logger"
)

// Server wraps the HTTP server with graceful shutdown.
type Server struct {
	http *http.Server
	log  *logger.Logger
}

// New creates a server listening on the configured host and port.
func New(cfg *config.Config, handler http.Handler, log *logger.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: handler,
		},
		log: log,
	}
}

// Start blocks serving requests until Shutdown is called or the listener
// fails.
func (s *Server) Start() error {
	s.log.Info("server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
