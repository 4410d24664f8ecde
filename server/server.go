package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/99Yash/linkview/linkedin"
)

// Server wires the gin router, the upstream client and shutdown handling.
type Server struct {
	cfg     Config
	logger  *slog.Logger
	fetcher Fetcher
	router  *gin.Engine
}

// New builds a Server from config. The upstream client is created here so a
// missing API key fails at startup, not on the first request.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := []linkedin.Option{
		linkedin.WithLogger(logger),
		linkedin.WithHTTPClient(&http.Client{Timeout: cfg.UpstreamTimeout}),
	}
	if cfg.APIKey != "" {
		opts = append(opts, linkedin.WithAPIKey(cfg.APIKey))
	}
	if cfg.APIHost != "" {
		opts = append(opts, linkedin.WithHost(cfg.APIHost))
	}

	client, err := linkedin.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("upstream client: %w", err)
	}

	s := &Server{cfg: cfg, logger: logger, fetcher: client}
	s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(s.logger))
	if s.cfg.CORSEnabled {
		router.Use(CORSMiddleware())
	}
	RegisterRoutes(router, s.fetcher, s.logger)
	s.router = router
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		s.logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}
