// Package metrics provides Prometheus self-metrics for the Cloud Trace
// exporter.
//
// # Overview
//
// The exporter reports nothing about itself through the trace API, so
// operational visibility comes from this package: export calls and span
// counts by result, spans per batch, BatchWriteSpans latency, and the
// number of attribute values dropped during transformation.
//
// Metrics are registered against an injected *prometheus.Registry so a
// host application can fold them into its own exposition. When no
// registry is supplied a private one is created and can be served via
// Handler.
//
// # Usage
//
//	registry := prometheus.NewRegistry()
//	em := metrics.NewExporterMetrics(&cfg.Telemetry.Metrics, registry)
//	exporter := cloudtrace.New(&cfg.Exporter, logger, em)
//
// A nil *ExporterMetrics records nothing. NewExporterMetrics returns nil
// when metrics are disabled in the configuration, so callers can pass
// the result straight through without guarding.
package metrics
