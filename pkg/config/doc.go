// Package config provides configuration management for the Cloud Trace
// exporter and the tracegen demo tooling.
//
// This package handles loading, validating, and watching configuration
// from YAML files with environment variable overrides. It provides a
// type-safe configuration system with validation and sensible defaults.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("config.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// When no file is available, DefaultConfig returns a configuration built
// from defaults and environment variables alone.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention TRACEGEN_SECTION_FIELD.
// For example:
//
//   - TRACEGEN_EXPORTER_PROJECT_ID overrides exporter.project_id
//   - TRACEGEN_TRACING_SAMPLER overrides tracing.sampler
//   - TRACEGEN_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// Environment variables always take precedence over file-based
// configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides
// earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Validation
//
// All configuration is validated automatically during loading. Validation
// errors include field paths and helpful messages:
//
//	configuration validation failed with 2 errors:
//	  - tracing.sampler: invalid sampler "sometimes": must be 'always', 'never', or 'ratio'
//	  - workload.error_ratio: error ratio must be between 0.0 and 1.0
//
// # Live Reload
//
// A Watcher delivers freshly loaded configurations whenever the file
// changes on disk. Invalid intermediate states are skipped, so a partial
// save never takes down a running process:
//
//	w, err := config.NewWatcher("config.yaml", logger)
//	if err != nil {
//	    return err
//	}
//	go w.Watch(ctx, func(cfg *config.Config) {
//	    workload.Retune(cfg.Workload)
//	})
//
// # Example Configuration
//
// Here is a minimal configuration file:
//
//	exporter:
//	  project_id: "my-gcp-project"
//
//	tracing:
//	  exporter: "cloudtrace"
//	  sampler: "always"
//	  service_name: "tracegen"
//
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "json"
//
//	workload:
//	  schedule: "@every 30s"
//	  traces: 3
//	  error_ratio: 0.1
package config
