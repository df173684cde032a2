package config

import "time"

// Default values for configuration fields.
const (
	// Exporter defaults
	DefaultExporterTimeout = 0 * time.Second // rely on the transport

	// Tracing defaults
	DefaultTracingExporter    = "cloudtrace"
	DefaultTracingSampler     = "always"
	DefaultTracingSampleRatio = 1.0
	DefaultTracingServiceName = "tracegen"

	// OTLP defaults
	DefaultOTLPEndpoint = "localhost:4317"
	DefaultOTLPInsecure = true
	DefaultOTLPTimeout  = 10 * time.Second

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "json"
	DefaultMetricsEnabled   = true
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "tracegen"
	DefaultMetricsSubsystem = "cloudtrace"

	// Workload defaults
	DefaultWorkloadSchedule   = "@every 30s"
	DefaultWorkloadTraces     = 3
	DefaultWorkloadDepth      = 3
	DefaultWorkloadBreadth    = 2
	DefaultWorkloadErrorRatio = 0.1

	// Server defaults
	DefaultServerEnabled         = true
	DefaultServerListenAddress   = "127.0.0.1:9090"
	DefaultServerReadTimeout     = 5 * time.Second
	DefaultServerWriteTimeout    = 10 * time.Second
	DefaultServerIdleTimeout     = 120 * time.Second
	DefaultServerShutdownTimeout = 10 * time.Second
)

// DefaultMetricsRPCLatencyBuckets returns the default histogram buckets
// for BatchWriteSpans latency in seconds.
func DefaultMetricsRPCLatencyBuckets() []float64 {
	return []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0}
}

// DefaultMetricsBatchSizeBuckets returns the default histogram buckets
// for spans per export call.
func DefaultMetricsBatchSizeBuckets() []float64 {
	return []float64{1, 2, 5, 10, 25, 50, 100, 250, 500}
}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Exporter defaults: the zero value is meaningful for every field
	// (resolve project from credentials, default endpoint, no deadline),
	// so nothing is applied here.

	// Tracing defaults
	if cfg.Tracing.Exporter == "" {
		cfg.Tracing.Exporter = DefaultTracingExporter
	}
	if cfg.Tracing.Sampler == "" {
		cfg.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Tracing.SampleRatio == 0 {
		cfg.Tracing.SampleRatio = DefaultTracingSampleRatio
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = DefaultTracingServiceName
	}

	// OTLP defaults. Insecure defaults to true for the local-collector
	// case, but only when the section is untouched: a populated section
	// means the user chose their TLS settings.
	if !cfg.Tracing.OTLP.Insecure {
		if cfg.Tracing.OTLP.Endpoint == "" && cfg.Tracing.OTLP.Timeout == 0 {
			cfg.Tracing.OTLP.Insecure = DefaultOTLPInsecure
		}
	}
	if cfg.Tracing.OTLP.Endpoint == "" {
		cfg.Tracing.OTLP.Endpoint = DefaultOTLPEndpoint
	}
	if cfg.Tracing.OTLP.Timeout == 0 {
		cfg.Tracing.OTLP.Timeout = DefaultOTLPTimeout
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	applyMetricsDefaults(cfg)

	// Workload defaults
	if cfg.Workload.Schedule == "" {
		cfg.Workload.Schedule = DefaultWorkloadSchedule
	}
	if cfg.Workload.Traces == 0 {
		cfg.Workload.Traces = DefaultWorkloadTraces
	}
	if cfg.Workload.Depth == 0 {
		cfg.Workload.Depth = DefaultWorkloadDepth
	}
	if cfg.Workload.Breadth == 0 {
		cfg.Workload.Breadth = DefaultWorkloadBreadth
	}
	if cfg.Workload.ErrorRatio == 0 {
		cfg.Workload.ErrorRatio = DefaultWorkloadErrorRatio
	}

	// Server defaults
	applyServerDefaults(cfg)
}

// applyMetricsDefaults applies default values to metrics configuration.
func applyMetricsDefaults(cfg *Config) {
	metrics := &cfg.Telemetry.Metrics

	// Enabled defaults to true. A false zero value is indistinguishable
	// from an explicit false, so only flip it when no other metrics
	// field was set either: a populated section means the user wrote
	// "enabled: false" on purpose.
	if !metrics.Enabled {
		hasAnyConfig := metrics.Path != "" ||
			metrics.Namespace != "" ||
			metrics.Subsystem != "" ||
			len(metrics.RPCLatencyBuckets) > 0 ||
			len(metrics.BatchSizeBuckets) > 0

		if !hasAnyConfig {
			metrics.Enabled = DefaultMetricsEnabled
		}
	}

	if metrics.Path == "" {
		metrics.Path = DefaultMetricsPath
	}
	if metrics.Namespace == "" {
		metrics.Namespace = DefaultMetricsNamespace
	}
	if metrics.Subsystem == "" {
		metrics.Subsystem = DefaultMetricsSubsystem
	}
	if len(metrics.RPCLatencyBuckets) == 0 {
		metrics.RPCLatencyBuckets = DefaultMetricsRPCLatencyBuckets()
	}
	if len(metrics.BatchSizeBuckets) == 0 {
		metrics.BatchSizeBuckets = DefaultMetricsBatchSizeBuckets()
	}
}

// applyServerDefaults applies default values to server configuration.
func applyServerDefaults(cfg *Config) {
	server := &cfg.Server

	// Same true-by-default handling as the metrics section.
	if !server.Enabled {
		hasAnyConfig := server.ListenAddress != "" ||
			server.ReadTimeout > 0 ||
			server.WriteTimeout > 0 ||
			server.IdleTimeout > 0 ||
			server.ShutdownTimeout > 0

		if !hasAnyConfig {
			server.Enabled = DefaultServerEnabled
		}
	}

	if server.ListenAddress == "" {
		server.ListenAddress = DefaultServerListenAddress
	}
	if server.ReadTimeout == 0 {
		server.ReadTimeout = DefaultServerReadTimeout
	}
	if server.WriteTimeout == 0 {
		server.WriteTimeout = DefaultServerWriteTimeout
	}
	if server.IdleTimeout == 0 {
		server.IdleTimeout = DefaultServerIdleTimeout
	}
	if server.ShutdownTimeout == 0 {
		server.ShutdownTimeout = DefaultServerShutdownTimeout
	}
}
