// Package server provides the ops HTTP server for metrics and health.
//
// The server runs alongside the span-generating workload and exposes
// operational endpoints on a dedicated listener, so scrapes and probes
// never mix with application traffic.
//
// # Basic Usage
//
// Creating and starting a server:
//
//	import (
//	    "context"
//	    "github.com/reggiemcdonald/opentelemetry-operations-go/pkg/config"
//	    "github.com/reggiemcdonald/opentelemetry-operations-go/pkg/server"
//	    "github.com/reggiemcdonald/opentelemetry-operations-go/pkg/telemetry/metrics"
//	)
//
//	cfg, err := config.LoadConfig("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	em := metrics.NewExporterMetrics(&cfg.Telemetry.Metrics, nil)
//
//	srv := server.NewServer(cfg, em, logger)
//	if err := srv.Start(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// Start blocks until the context is canceled or Shutdown is called.
//
// # Graceful Shutdown
//
//	if err := srv.Shutdown(context.Background()); err != nil {
//	    logger.Error("shutdown error", "error", err)
//	}
//
// The shutdown process:
//  1. Stops accepting new connections
//  2. Waits for active connections to complete (up to shutdown timeout)
//  3. Forces connection closure if timeout exceeded
//
// # Routes
//
// The server exposes the following HTTP endpoints:
//
//   - GET <metrics path> - Prometheus exposition (default /metrics)
//   - GET /healthz - Liveness probe (always returns 200)
//   - GET /readyz - Readiness probe, 503 when a component check fails
//   - GET /version - Service name, exporter version, Go version
//
// Component checks for the readiness probe are registered through
// Checker before the server starts:
//
//	srv.Checker().RegisterCheck("scheduler", func(ctx context.Context) error {
//	    if !sched.IsRunning() {
//	        return errors.New("scheduler not running")
//	    }
//	    return nil
//	})
//
// # Middleware Chain
//
// Requests pass through the following middleware (innermost to
// outermost):
//  1. Logging: Logs request/response details (scrapes at debug level)
//  2. Recovery: Recovers from panics and returns 500 error
//
// # Thread Safety
//
// All server operations are thread-safe and can be called concurrently
// from multiple goroutines.
package server
