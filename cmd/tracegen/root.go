package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/cli"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/config"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tracegen",
	Short: "Tracegen - Cloud Trace exporter demo workload",
	Long: `Tracegen exports OpenTelemetry spans to Google Cloud Trace.

It converts spans recorded by the OpenTelemetry SDK into the Cloud
Trace v2 wire format and transmits them with BatchWriteSpans, driving
a configurable synthetic workload through the exporter:
  - Cloud Trace and OTLP exporter backends
  - W3C Trace Context and X-Cloud-Trace-Context propagation
  - Scheduled trace generation with live workload re-tuning
  - Prometheus self-metrics and an ops HTTP server

For more information, visit:
https://github.com/reggiemcdonald/opentelemetry-operations-go`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file with env overrides applied.
// A missing file is not an error: defaults apply, so commands work out
// of the box.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return nil, cli.NewConfigError(cfgFile, err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError(cfgFile, err)
	}
	return cfg, nil
}

// setupLogger builds the process logger from config and installs it as
// the slog default.
func setupLogger(cfg *config.Config) (*slog.Logger, error) {
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Telemetry.Logging, os.Stdout)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}
