package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. The configuration is not modified by environment variables; use
// LoadConfigWithEnvOverrides for that functionality.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides. Environment variables follow
// the naming convention TRACEGEN_SECTION_FIELD (e.g.,
// TRACEGEN_EXPORTER_PROJECT_ID). Environment variables always take
// precedence over file-based configuration.
//
// The loading sequence is:
//  1. Load YAML from file
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	// First load from file (this already applies defaults)
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	// Re-validate after overrides
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with all defaults applied and
// environment variable overrides taken into account. It is used when no
// configuration file is given.
func DefaultConfig() (*Config, error) {
	var cfg Config
	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format
// TRACEGEN_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Exporter overrides
	if val := os.Getenv("TRACEGEN_EXPORTER_PROJECT_ID"); val != "" {
		cfg.Exporter.ProjectID = val
	}
	if val := os.Getenv("TRACEGEN_EXPORTER_CREDENTIALS_FILE"); val != "" {
		cfg.Exporter.CredentialsFile = val
	}
	if val := os.Getenv("TRACEGEN_EXPORTER_CREDENTIALS_JSON"); val != "" {
		cfg.Exporter.CredentialsJSON = val
	}
	if val := os.Getenv("TRACEGEN_EXPORTER_ENDPOINT"); val != "" {
		cfg.Exporter.Endpoint = val
	}
	if val := os.Getenv("TRACEGEN_EXPORTER_USER_AGENT"); val != "" {
		cfg.Exporter.UserAgent = val
	}
	if val := os.Getenv("TRACEGEN_EXPORTER_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Exporter.Timeout = d
		}
	}

	// Tracing overrides
	if val := os.Getenv("TRACEGEN_TRACING_EXPORTER"); val != "" {
		cfg.Tracing.Exporter = val
	}
	if val := os.Getenv("TRACEGEN_TRACING_SAMPLER"); val != "" {
		cfg.Tracing.Sampler = val
	}
	if val := os.Getenv("TRACEGEN_TRACING_SAMPLE_RATIO"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Tracing.SampleRatio = f
		}
	}
	if val := os.Getenv("TRACEGEN_TRACING_SERVICE_NAME"); val != "" {
		cfg.Tracing.ServiceName = val
	}
	if val := os.Getenv("TRACEGEN_TRACING_OTLP_ENDPOINT"); val != "" {
		cfg.Tracing.OTLP.Endpoint = val
	}
	if val := os.Getenv("TRACEGEN_TRACING_OTLP_INSECURE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Tracing.OTLP.Insecure = b
		}
	}
	if val := os.Getenv("TRACEGEN_TRACING_OTLP_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Tracing.OTLP.Timeout = d
		}
	}

	// Telemetry overrides
	if val := os.Getenv("TRACEGEN_TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("TRACEGEN_TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("TRACEGEN_TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("TRACEGEN_TELEMETRY_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}

	// Workload overrides
	if val := os.Getenv("TRACEGEN_WORKLOAD_SCHEDULE"); val != "" {
		cfg.Workload.Schedule = val
	}
	if val := os.Getenv("TRACEGEN_WORKLOAD_TRACES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Workload.Traces = i
		}
	}
	if val := os.Getenv("TRACEGEN_WORKLOAD_DEPTH"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Workload.Depth = i
		}
	}
	if val := os.Getenv("TRACEGEN_WORKLOAD_BREADTH"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Workload.Breadth = i
		}
	}
	if val := os.Getenv("TRACEGEN_WORKLOAD_ERROR_RATIO"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Workload.ErrorRatio = f
		}
	}

	// Server overrides
	if val := os.Getenv("TRACEGEN_SERVER_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Server.Enabled = b
		}
	}
	if val := os.Getenv("TRACEGEN_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
}
