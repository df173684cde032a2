// Package telemetry groups the observability support for the trace
// generator: structured logging, exporter self-metrics, tracer
// provider wiring, and health probes.
//
// # Components
//
//   - logging: slog construction from config (level, format, source)
//   - metrics: Prometheus self-metrics for the span exporter
//   - tracing: tracer provider, sampler, and propagator wiring
//   - health: liveness/readiness checks for the ops server
//
// Each subpackage stands alone; there is no aggregate constructor.
// The CLI wires them together:
//
//	logger, err := logging.New(cfg.Telemetry.Logging, os.Stdout)
//	em := metrics.NewExporterMetrics(&cfg.Telemetry.Metrics, nil)
//	tracer, err := tracing.New(cfg, logger, em)
package telemetry
