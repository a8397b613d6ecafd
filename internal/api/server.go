package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/codefly-dev/base-service/internal/api/router"
	"github.com/codefly-dev/base-service/internal/config"
)

// Server represents the HTTP server
type Server struct {
	config  *config.Config
	humaAPI huma.API
	server  *http.Server
	logger  *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, deps router.Deps, logger *zap.Logger) *Server {
	mux := http.NewServeMux()

	api := router.NewHumaAPI(mux, deps)

	return &Server{
		config:  cfg,
		humaAPI: api,
		logger:  logger,
		server: &http.Server{
			Addr:              cfg.ServerAddress,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// API returns the huma API the server routes through.
func (s *Server) API() huma.API {
	return s.humaAPI
}

// Start begins listening for incoming HTTP requests
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", zap.String("address", s.config.ServerAddress))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
