package config

import "time"

// Config is the root configuration structure for the Cloud Trace
// exporter and the tracegen demo tooling built around it. It contains
// the exporter connection settings, tracer provider wiring, telemetry
// for the process itself, the demo workload shape, and the ops server.
type Config struct {
	// Exporter contains Google Cloud Trace exporter configuration
	// including project selection, credentials, and endpoint overrides.
	Exporter ExporterConfig `yaml:"exporter"`

	// Tracing contains tracer provider configuration including sampler
	// selection and the exporter backend used by the demo workload.
	Tracing TracingConfig `yaml:"tracing"`

	// Telemetry contains configuration for process observability
	// including logging and Prometheus metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Workload contains configuration for the demo span generator.
	Workload WorkloadConfig `yaml:"workload"`

	// Server contains configuration for the ops HTTP server that
	// exposes metrics and health endpoints.
	Server ServerConfig `yaml:"server"`
}

// ExporterConfig contains configuration for the Cloud Trace exporter.
// All fields are optional: with an empty config the exporter resolves
// the project from Application Default Credentials and connects to the
// production Cloud Trace endpoint.
type ExporterConfig struct {
	// ProjectID is the Google Cloud project that receives the spans.
	// When empty, the project is resolved from the configured
	// credentials, falling back to Application Default Credentials.
	ProjectID string `yaml:"project_id"`

	// CredentialsFile is a path to a service account key file.
	// Mutually exclusive with CredentialsJSON.
	CredentialsFile string `yaml:"credentials_file"`

	// CredentialsJSON is inline service account key material.
	// Mutually exclusive with CredentialsFile. Prefer CredentialsFile
	// outside of tests.
	CredentialsJSON string `yaml:"credentials_json"`

	// Endpoint overrides the Cloud Trace API endpoint.
	// Format: "host:port" (e.g., "cloudtrace.googleapis.com:443").
	// When empty, the generated client's default endpoint is used.
	Endpoint string `yaml:"endpoint"`

	// UserAgent overrides the User-Agent header reported to the API.
	// When empty, the exporter reports its own name and version.
	UserAgent string `yaml:"user_agent"`

	// Timeout bounds a single BatchWriteSpans call. Zero means no
	// exporter-level deadline; the transport's own handling applies.
	// Default: 0
	Timeout time.Duration `yaml:"timeout"`
}

// TracingConfig contains tracer provider configuration for processes
// that emit spans (the demo workload and the examples).
type TracingConfig struct {
	// Exporter selects the span exporter backend.
	// Options: "cloudtrace", "otlp"
	// Default: "cloudtrace"
	Exporter string `yaml:"exporter"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "always"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces to sample (0.0 to 1.0).
	// Only used when Sampler is "ratio".
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio"`

	// ServiceName is the service name recorded in the trace resource.
	// Default: "tracegen"
	ServiceName string `yaml:"service_name"`

	// OTLP contains OTLP exporter specific configuration, used when
	// Exporter is "otlp".
	OTLP OTLPConfig `yaml:"otlp"`
}

// OTLPConfig contains OTLP exporter configuration.
type OTLPConfig struct {
	// Endpoint is the OTLP gRPC collector endpoint.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// Insecure disables TLS for the OTLP connection.
	// Default: true
	Insecure bool `yaml:"insecure"`

	// Timeout is the timeout for OTLP exports.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}

// TelemetryConfig contains configuration for process observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains metrics collection configuration.
type MetricsConfig struct {
	// Enabled controls whether exporter self-metrics are collected.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path for the Prometheus metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	// Default: "tracegen"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "cloudtrace"
	Subsystem string `yaml:"subsystem"`

	// RPCLatencyBuckets defines histogram buckets for BatchWriteSpans
	// latency (seconds).
	// Default: [0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0]
	RPCLatencyBuckets []float64 `yaml:"rpc_latency_buckets"`

	// BatchSizeBuckets defines histogram buckets for spans per export.
	// Default: [1, 2, 5, 10, 25, 50, 100, 250, 500]
	BatchSizeBuckets []float64 `yaml:"batch_size_buckets"`
}

// WorkloadConfig contains configuration for the demo span generator.
type WorkloadConfig struct {
	// Schedule is a cron expression controlling trace generation.
	// Supports the standard 5-field form and descriptors such as
	// "@every 30s".
	// Default: "@every 30s"
	Schedule string `yaml:"schedule"`

	// Traces is the number of trace trees generated per tick.
	// Default: 3
	Traces int `yaml:"traces"`

	// Depth is the maximum depth of each generated span tree.
	// Default: 3
	Depth int `yaml:"depth"`

	// Breadth is the number of child spans per parent.
	// Default: 2
	Breadth int `yaml:"breadth"`

	// ErrorRatio is the fraction of leaf spans marked with an error
	// status (0.0 to 1.0).
	// Default: 0.1
	ErrorRatio float64 `yaml:"error_ratio"`

	// Attributes are static attributes stamped on every root span.
	// Keys are attribute names, values are string attribute values.
	Attributes map[string]string `yaml:"attributes"`
}

// ServerConfig contains configuration for the ops HTTP server.
type ServerConfig struct {
	// Enabled controls whether the ops server is started.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the address and port for the server to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:9090").
	// Default: "127.0.0.1:9090"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading a request.
	// Default: 5s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of
	// the response.
	// Default: 10s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next
	// request when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful
	// shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}
