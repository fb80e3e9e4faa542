// Package server exposes the analysis engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Veraticus/silhouette/internal/config"
	"github.com/Veraticus/silhouette/internal/engine"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/gin-gonic/gin"
)

// ShutdownTimeout bounds how long in-flight requests may run after Run's context ends.
const ShutdownTimeout = 10 * time.Second

// Server serves the HTTP API.
type Server struct {
	engine   *engine.AnalysisEngine
	router   *gin.Engine
	defaults model.UserPreferences
	cfg      config.ServerConfig
}

// New creates a server. defaults fill preference fields a request leaves empty.
func New(eng *engine.AnalysisEngine, cfg config.ServerConfig, defaults model.UserPreferences) *Server {
	s := &Server{
		engine:   eng,
		cfg:      cfg,
		defaults: defaults,
	}

	router := gin.New()
	router.Use(RequestLogger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeaders())
	router.Use(RequestSizeLimit(MaxRequestBytes))
	s.router = router

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.health)

	api := s.router.Group("/api/v1")
	{
		api.GET("/health", s.health)
		api.GET("/shapes", s.listShapes)
		api.GET("/shapes/:type", s.getShape)
		api.POST("/classify", s.classify)
		api.POST("/analyze", s.analyze)
		api.POST("/recommend", s.recommend)
	}
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	slog.Info("Server exited")
	return nil
}
