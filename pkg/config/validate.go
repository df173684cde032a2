package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "tracing.sampler").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateExporter(&cfg.Exporter)...)
	errs = append(errs, validateTracing(&cfg.Tracing)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)
	errs = append(errs, validateWorkload(&cfg.Workload)...)
	errs = append(errs, validateServer(&cfg.Server)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateExporter validates exporter configuration.
func validateExporter(cfg *ExporterConfig) []FieldError {
	var errs []FieldError

	// Every field is optional, but the two credential sources cannot be
	// combined: the client options would silently prefer one of them.
	if cfg.CredentialsFile != "" && cfg.CredentialsJSON != "" {
		errs = append(errs, FieldError{
			Field:   "exporter.credentials_file",
			Message: "credentials_file and credentials_json are mutually exclusive",
		})
	}

	if cfg.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "exporter.timeout",
			Message: "timeout must be non-negative",
		})
	}

	// Endpoint is host:port, not a URL.
	if cfg.Endpoint != "" && strings.Contains(cfg.Endpoint, "://") {
		errs = append(errs, FieldError{
			Field:   "exporter.endpoint",
			Message: fmt.Sprintf("invalid endpoint %q: expected host:port without a scheme", cfg.Endpoint),
		})
	}

	return errs
}

// validateTracing validates tracer provider configuration.
func validateTracing(cfg *TracingConfig) []FieldError {
	var errs []FieldError

	validExporters := map[string]bool{"cloudtrace": true, "otlp": true}
	if cfg.Exporter == "" {
		errs = append(errs, FieldError{
			Field:   "tracing.exporter",
			Message: "exporter is required",
		})
	} else if !validExporters[cfg.Exporter] {
		errs = append(errs, FieldError{
			Field:   "tracing.exporter",
			Message: fmt.Sprintf("invalid exporter %q: must be 'cloudtrace' or 'otlp'", cfg.Exporter),
		})
	}

	validSamplers := map[string]bool{"always": true, "never": true, "ratio": true}
	if cfg.Sampler == "" {
		errs = append(errs, FieldError{
			Field:   "tracing.sampler",
			Message: "sampler is required",
		})
	} else if !validSamplers[cfg.Sampler] {
		errs = append(errs, FieldError{
			Field:   "tracing.sampler",
			Message: fmt.Sprintf("invalid sampler %q: must be 'always', 'never', or 'ratio'", cfg.Sampler),
		})
	}

	if cfg.SampleRatio < 0 || cfg.SampleRatio > 1.0 {
		errs = append(errs, FieldError{
			Field:   "tracing.sample_ratio",
			Message: "sample ratio must be between 0.0 and 1.0",
		})
	}

	if cfg.ServiceName == "" {
		errs = append(errs, FieldError{
			Field:   "tracing.service_name",
			Message: "service name is required",
		})
	}

	if cfg.Exporter == "otlp" {
		if cfg.OTLP.Endpoint == "" {
			errs = append(errs, FieldError{
				Field:   "tracing.otlp.endpoint",
				Message: "OTLP endpoint is required when exporter is 'otlp'",
			})
		}
		if cfg.OTLP.Timeout < 0 {
			errs = append(errs, FieldError{
				Field:   "tracing.otlp.timeout",
				Message: "timeout must be non-negative",
			})
		}
	}

	return errs
}

// validateTelemetry validates telemetry configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if cfg.Logging.Level == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: "logging level is required",
		})
	} else if !validLevels[cfg.Logging.Level] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Logging.Level),
		})
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if cfg.Logging.Format == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: "logging format is required",
		})
	} else if !validFormats[cfg.Logging.Format] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'json' or 'text'", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.Enabled {
		if cfg.Metrics.Path == "" {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.path",
				Message: "metrics path is required when metrics are enabled",
			})
		} else if cfg.Metrics.Path[0] != '/' {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.path",
				Message: "metrics path must start with /",
			})
		}
	}

	for i, b := range cfg.Metrics.RPCLatencyBuckets {
		if i > 0 && b <= cfg.Metrics.RPCLatencyBuckets[i-1] {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.rpc_latency_buckets",
				Message: "buckets must be strictly increasing",
			})
			break
		}
	}
	for i, b := range cfg.Metrics.BatchSizeBuckets {
		if i > 0 && b <= cfg.Metrics.BatchSizeBuckets[i-1] {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.batch_size_buckets",
				Message: "buckets must be strictly increasing",
			})
			break
		}
	}

	return errs
}

// validateWorkload validates workload configuration.
func validateWorkload(cfg *WorkloadConfig) []FieldError {
	var errs []FieldError

	if cfg.Schedule == "" {
		errs = append(errs, FieldError{
			Field:   "workload.schedule",
			Message: "schedule is required",
		})
	}

	if cfg.Traces < 1 {
		errs = append(errs, FieldError{
			Field:   "workload.traces",
			Message: "traces per tick must be at least 1",
		})
	}
	if cfg.Traces > 1000 {
		errs = append(errs, FieldError{
			Field:   "workload.traces",
			Message: "traces per tick exceeds reasonable limit (1000)",
		})
	}

	if cfg.Depth < 1 {
		errs = append(errs, FieldError{
			Field:   "workload.depth",
			Message: "depth must be at least 1",
		})
	}
	if cfg.Depth > 10 {
		errs = append(errs, FieldError{
			Field:   "workload.depth",
			Message: "depth exceeds reasonable limit (10)",
		})
	}

	if cfg.Breadth < 1 {
		errs = append(errs, FieldError{
			Field:   "workload.breadth",
			Message: "breadth must be at least 1",
		})
	}
	if cfg.Breadth > 10 {
		errs = append(errs, FieldError{
			Field:   "workload.breadth",
			Message: "breadth exceeds reasonable limit (10)",
		})
	}

	if cfg.ErrorRatio < 0 || cfg.ErrorRatio > 1.0 {
		errs = append(errs, FieldError{
			Field:   "workload.error_ratio",
			Message: "error ratio must be between 0.0 and 1.0",
		})
	}

	return errs
}

// validateServer validates ops server configuration.
func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if !cfg.Enabled {
		return errs
	}

	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: "listen address is required when the server is enabled",
		})
	}

	if cfg.ReadTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.read_timeout",
			Message: "read timeout must be non-negative",
		})
	}
	if cfg.WriteTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.write_timeout",
			Message: "write timeout must be non-negative",
		})
	}
	if cfg.IdleTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.idle_timeout",
			Message: "idle timeout must be non-negative",
		})
	}
	if cfg.ShutdownTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.shutdown_timeout",
			Message: "shutdown timeout must be non-negative",
		})
	}

	return errs
}
