package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/cli"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/telemetry/metrics"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/telemetry/tracing"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/workload"
)

var exportFlags struct {
	traces int
	output string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Emit one batch of traces and exit",
	Long: `Emit one batch of synthetic traces, flush the exporter, and print
the outcome.

Examples:
  # Emit the configured number of traces
  tracegen export

  # Emit 10 traces and print the result as JSON
  tracegen export --traces 10 --output json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntVar(&exportFlags.traces, "traces", 0, "number of traces to emit (overrides config)")
	exportCmd.Flags().StringVarP(&exportFlags.output, "output", "o", "text", "output format (text, json)")
}

// exportResult is the printable outcome of a one-shot export.
type exportResult struct {
	Traces int `json:"traces"`
	Spans  int `json:"spans"`
	Errors int `json:"errors"`
}

func (r exportResult) String() string {
	return fmt.Sprintf("emitted %d traces (%d spans, %d errors)", r.Traces, r.Spans, r.Errors)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if exportFlags.traces > 0 {
		cfg.Workload.Traces = exportFlags.traces
	}

	logger, err := setupLogger(cfg)
	if err != nil {
		return cli.NewCommandError("export", err)
	}

	ctx := cli.SetupSignalHandler()

	em := metrics.NewExporterMetrics(&cfg.Telemetry.Metrics, nil)

	tracer, err := tracing.New(cfg, logger, em)
	if err != nil {
		return cli.NewCommandError("export", err)
	}

	gen := workload.NewGenerator(tracer, cfg.Workload, logger)
	stats := gen.Run(ctx)

	if err := tracer.ForceFlush(ctx); err != nil {
		return cli.NewCommandError("export", fmt.Errorf("failed to flush spans: %w", err))
	}
	if err := tracer.Shutdown(context.Background()); err != nil {
		return cli.NewCommandError("export", fmt.Errorf("failed to shut down tracer: %w", err))
	}

	formatter := cli.NewFormatter(cli.OutputFormat(exportFlags.output))
	return formatter.FormatTo(os.Stdout, exportResult{
		Traces: stats.Traces,
		Spans:  stats.Spans,
		Errors: stats.Errors,
	})
}
