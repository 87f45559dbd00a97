// Package api exposes the analysis engine over HTTP
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tabstat/internal"
	"tabstat/internal/analysis"
	"tabstat/internal/config"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Server wires the HTTP routes to an analyzer
type Server struct {
	cfg      *config.Config
	analyzer *analysis.Analyzer
	router   *gin.Engine
	logger   *internal.Logger
}

// NewServer builds the router; the gin mode follows cfg.Server.GinMode
func NewServer(cfg *config.Config, analyzer *analysis.Analyzer) *Server {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	s := &Server{
		cfg:      cfg,
		analyzer: analyzer,
		router:   gin.New(),
		logger:   internal.DefaultLogger.WithComponent("API"),
	}
	s.router.Use(gin.Recovery(), requestID(), s.accessLog())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	v1.POST("/summary", s.handleSummary)
	v1.POST("/quantile", s.handleQuantile)
	v1.POST("/forecast", s.handleForecast)
	v1.POST("/matrix/determinant", s.handleDeterminant)
	v1.POST("/matrix/inverse", s.handleInverse)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         ":" + s.cfg.Server.Port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
