package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/config"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/telemetry/health"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/telemetry/metrics"
)

// Server is the ops HTTP server. It exposes the Prometheus metrics
// endpoint, liveness and readiness probes, and version metadata on a
// dedicated listener, separate from any traffic the instrumented
// application serves.
type Server struct {
	config       *config.ServerConfig
	metricsPath  string
	serviceName  string
	metrics      *metrics.ExporterMetrics
	checker      *health.Checker
	logger       *slog.Logger
	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates the ops server. The metrics handler is mounted at
// the configured metrics path; a nil em serves 404 there. If logger is
// nil, slog.Default() is used.
func NewServer(cfg *config.Config, em *metrics.ExporterMetrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		config:       &cfg.Server,
		metricsPath:  cfg.Telemetry.Metrics.Path,
		serviceName:  cfg.Tracing.ServiceName,
		metrics:      em,
		checker:      health.New(0),
		logger:       logger.With("component", "server"),
		shutdownChan: make(chan struct{}),
	}
}

// Start starts the HTTP server and blocks until the context is
// canceled, Shutdown is called, or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	s.httpServer = &http.Server{
		Addr:         s.config.ListenAddress,
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting ops server",
			"address", s.config.ListenAddress,
			"metrics_path", s.metricsPath,
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
		return err
	case <-s.shutdownChan:
		return nil
	}
}

// Shutdown gracefully shuts down the server, waiting up to the
// configured shutdown timeout for in-flight requests to drain.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	running := s.isRunning
	s.mu.RUnlock()
	if !running {
		return nil
	}

	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.logger.Info("initiating graceful shutdown",
			"timeout", s.config.ShutdownTimeout.String(),
		)

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		// Unblock Start after the listener has drained.
		close(s.shutdownChan)

		s.logger.Info("ops server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	if s.metricsPath != "" {
		mux.Handle(s.metricsPath, s.metrics.Handler())
	}
	mux.Handle("/healthz", s.checker.LivenessHandler())
	mux.Handle("/readyz", s.checker.ReadinessHandler())
	mux.Handle("/version", NewVersionHandler(s.serviceName))

	var handler http.Handler = mux

	handler = s.withLogging(handler)

	// Recovery middleware (outermost)
	handler = s.withRecovery(handler)

	return handler
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler, for tests and for
// embedding the ops routes into an existing server.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// Checker returns the health checker backing the readiness probe, so
// callers can register component checks before starting the server.
func (s *Server) Checker() *health.Checker {
	return s.checker
}

// Health performs a health check on the server.
func (s *Server) Health() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return fmt.Errorf("server is not running")
	}

	return nil
}
