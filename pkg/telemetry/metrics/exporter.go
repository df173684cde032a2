package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/config"
)

// ExporterMetrics tracks the behavior of the Cloud Trace exporter.
//
// Metrics:
//   - tracegen_cloudtrace_export_batches_total: Export calls by result
//   - tracegen_cloudtrace_export_spans_total: Exported spans by result
//   - tracegen_cloudtrace_export_batch_spans: Spans per export call
//   - tracegen_cloudtrace_batch_write_latency_seconds: BatchWriteSpans latency
//   - tracegen_cloudtrace_dropped_attributes_total: Attribute values dropped
//     during transformation
//
// A nil *ExporterMetrics is valid and records nothing, so callers never
// need to guard their instrumentation sites.
type ExporterMetrics struct {
	registry *prometheus.Registry

	// Export calls by result code
	batches *prometheus.CounterVec

	// Spans shipped (or attempted) by result code
	spans *prometheus.CounterVec

	// Spans per export call
	batchSize prometheus.Histogram

	// BatchWriteSpans round-trip latency
	rpcLatency prometheus.Histogram

	// Attribute values dropped during transformation
	droppedAttributes prometheus.Counter
}

// NewExporterMetrics creates and registers exporter metrics with the
// provided registry. If registry is nil, a new registry is created.
// Returns nil when metrics are disabled in the configuration; a nil
// ExporterMetrics is a no-op recorder.
func NewExporterMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ExporterMetrics {
	if cfg == nil {
		cfg = &config.MetricsConfig{Enabled: true}
	}
	if !cfg.Enabled {
		return nil
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	// Fall back to package defaults when the section was not run
	// through config.ApplyDefaults.
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = config.DefaultMetricsNamespace
	}
	subsystem := cfg.Subsystem
	if subsystem == "" {
		subsystem = config.DefaultMetricsSubsystem
	}
	latencyBuckets := cfg.RPCLatencyBuckets
	if len(latencyBuckets) == 0 {
		latencyBuckets = config.DefaultMetricsRPCLatencyBuckets()
	}
	sizeBuckets := cfg.BatchSizeBuckets
	if len(sizeBuckets) == 0 {
		sizeBuckets = config.DefaultMetricsBatchSizeBuckets()
	}

	em := &ExporterMetrics{
		registry: registry,

		batches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "export_batches_total",
				Help:      "Total number of export calls by result",
			},
			[]string{"result"},
		),

		spans: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "export_spans_total",
				Help:      "Total number of spans handed to export calls by result",
			},
			[]string{"result"},
		),

		batchSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "export_batch_spans",
				Help:      "Number of spans per export call",
				Buckets:   sizeBuckets,
			},
		),

		rpcLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "batch_write_latency_seconds",
				Help:      "BatchWriteSpans round-trip latency in seconds",
				Buckets:   latencyBuckets,
			},
		),

		droppedAttributes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "dropped_attributes_total",
				Help:      "Total number of attribute values dropped during transformation",
			},
		),
	}

	registry.MustRegister(
		em.batches,
		em.spans,
		em.batchSize,
		em.rpcLatency,
		em.droppedAttributes,
	)

	return em
}

// RecordExport records the outcome of one export call.
//
// Parameters:
//   - result: Result label ("success", "retryable_failure",
//     "non_retryable_failure")
//   - spanCount: Number of spans in the batch
func (em *ExporterMetrics) RecordExport(result string, spanCount int) {
	if em == nil {
		return
	}
	em.batches.WithLabelValues(result).Inc()
	em.spans.WithLabelValues(result).Add(float64(spanCount))
	em.batchSize.Observe(float64(spanCount))
}

// ObserveRPCLatency records the round-trip latency of one
// BatchWriteSpans call in seconds.
func (em *ExporterMetrics) ObserveRPCLatency(seconds float64) {
	if em == nil {
		return
	}
	em.rpcLatency.Observe(seconds)
}

// AddDroppedAttributes records attribute values dropped while
// transforming a batch.
func (em *ExporterMetrics) AddDroppedAttributes(count int) {
	if em == nil || count <= 0 {
		return
	}
	em.droppedAttributes.Add(float64(count))
}

// Registry returns the Prometheus registry used by these metrics.
// Returns nil on a nil receiver.
func (em *ExporterMetrics) Registry() *prometheus.Registry {
	if em == nil {
		return nil
	}
	return em.registry
}
