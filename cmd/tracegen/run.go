package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/cli"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/config"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/server"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/telemetry/metrics"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/telemetry/tracing"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/workload"
)

var runFlags struct {
	logLevel string
	dryRun   bool
	watch    bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the trace generator",
	Long: `Start the trace generator with the specified configuration.

The generator emits synthetic trace trees on a cron schedule and
exports them through the configured backend. An ops HTTP server
exposes Prometheus metrics and health endpoints.

Examples:
  # Start with default config
  tracegen run

  # Start with custom config
  tracegen run --config /etc/tracegen/config.yaml

  # Re-tune the workload when the config file changes
  tracegen run --watch

  # Validate config without starting
  tracegen run --dry-run`,
	RunE: runGenerator,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting")
	runCmd.Flags().BoolVar(&runFlags.watch, "watch", false, "watch the config file and re-tune the workload on change")
}

func runGenerator(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply flag overrides
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}

	logger, err := setupLogger(cfg)
	if err != nil {
		return cli.NewCommandError("run", err)
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	ctx := cli.SetupSignalHandler()

	em := metrics.NewExporterMetrics(&cfg.Telemetry.Metrics, nil)

	tracer, err := tracing.New(cfg, logger, em)
	if err != nil {
		return cli.NewCommandError("run", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			logger.Error("tracer shutdown failed", "error", err)
		}
	}()

	gen := workload.NewGenerator(tracer, cfg.Workload, logger)

	sched := workload.NewScheduler(gen, logger)
	if err := sched.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}
	defer sched.Stop()

	// Ops server in the background; its listener errors end the run.
	errChan := make(chan error, 1)
	var srv *server.Server
	if cfg.Server.Enabled {
		srv = server.NewServer(cfg, em, logger)
		srv.Checker().RegisterCheck("scheduler", func(context.Context) error {
			if cfg.Workload.Schedule != "" && !sched.IsRunning() {
				return errors.New("scheduler not running")
			}
			return nil
		})
		go func() {
			if err := srv.Start(ctx); err != nil {
				errChan <- err
			}
		}()
	}

	if runFlags.watch {
		watcher, err := config.NewWatcher(cfgFile, logger)
		if err != nil {
			return cli.NewCommandError("run", err)
		}
		go func() {
			err := watcher.Watch(ctx, func(next *config.Config) {
				if next.Workload.Schedule != gen.Config().Schedule {
					logger.Warn("schedule changes require a restart to take effect",
						"schedule", next.Workload.Schedule,
					)
				}
				gen.Retune(next.Workload)
				logger.Info("workload re-tuned from config change",
					"traces", next.Workload.Traces,
					"depth", next.Workload.Depth,
					"breadth", next.Workload.Breadth,
				)
			})
			if err != nil {
				logger.Error("config watcher stopped", "error", err)
			}
		}()
		defer watcher.Stop()
	}

	printStartupInfo(cfg)

	select {
	case <-ctx.Done():
		fmt.Println("\nShutting down gracefully...")
		if srv != nil {
			if err := srv.Shutdown(context.Background()); err != nil {
				logger.Error("server shutdown failed", "error", err)
			}
		}
		fmt.Println("✓ Generator stopped")
		return nil
	case err := <-errChan:
		return cli.NewCommandError("run", err)
	}
}

func printStartupInfo(cfg *config.Config) {
	fmt.Printf("tracegen v%s\n", Version)
	fmt.Printf("✓ Exporter: %s\n", cfg.Tracing.Exporter)
	fmt.Printf("✓ Workload: %d traces per tick (%s)\n", cfg.Workload.Traces, cfg.Workload.Schedule)
	if cfg.Server.Enabled {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")
}
