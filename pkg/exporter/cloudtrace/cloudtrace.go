package cloudtrace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/trace/apiv2/tracepb"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/config"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/telemetry/metrics"
)

// resolverFunc determines the target project for a configuration.
type resolverFunc func(ctx context.Context, cfg *config.ExporterConfig) (string, error)

// Exporter writes OpenTelemetry spans to the Cloud Trace v2 API. It
// keeps no buffer of its own; callers hand it complete batches and
// receive one Result per batch.
//
// The exporter is safe for concurrent use without holding locks. The
// project fields are written once before projectDone is closed, and
// the lazily built client may be replaced by racing exports, where the
// last write wins.
type Exporter struct {
	cfg       *config.ExporterConfig
	logger    *slog.Logger
	metrics   *metrics.ExporterMetrics
	userAgent string

	resolve   resolverFunc
	newClient clientFactory

	projectDone chan struct{}
	projectID   string
	projectErr  error

	client batchWriter
}

var _ sdktrace.SpanExporter = (*Exporter)(nil)

// New builds a Cloud Trace exporter and starts resolving the target
// project in the background. Construction never fails; configuration
// and credential problems surface on the first export. A nil logger
// falls back to slog.Default and nil metrics disable recording.
func New(cfg *config.ExporterConfig, logger *slog.Logger, em *metrics.ExporterMetrics) *Exporter {
	return newExporter(cfg, logger, em, resolveProjectID, newTraceClient)
}

func newExporter(cfg *config.ExporterConfig, logger *slog.Logger, em *metrics.ExporterMetrics, resolve resolverFunc, newClient clientFactory) *Exporter {
	if cfg == nil {
		cfg = &config.ExporterConfig{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent()
	}
	e := &Exporter{
		cfg:         cfg,
		logger:      logger,
		metrics:     em,
		userAgent:   userAgent,
		resolve:     resolve,
		newClient:   newClient,
		projectDone: make(chan struct{}),
	}
	go e.resolveProject()
	return e
}

// resolveProject runs once per exporter. A failure here is permanent:
// every later export reports it without touching the network.
func (e *Exporter) resolveProject() {
	defer close(e.projectDone)
	id, err := e.resolve(context.Background(), e.cfg)
	if err == nil && id == "" {
		err = ErrMissingProjectID
	}
	if err != nil {
		e.projectErr = err
		e.logger.Error("Project resolution failed", "error", err)
		return
	}
	e.projectID = id
	e.logger.Debug("Resolved trace project", "project_id", id)
}

// Export transforms and writes one batch of spans, then reports the
// outcome through cb. Exactly one callback fires per call, after the
// outcome has been logged and recorded.
func (e *Exporter) Export(ctx context.Context, spans []sdktrace.ReadOnlySpan, cb func(Result)) {
	res := e.export(ctx, spans)
	e.metrics.RecordExport(res.Code.String(), len(spans))
	if cb != nil {
		cb(res)
	}
}

// ExportSpans implements sdktrace.SpanExporter so the exporter can sit
// behind the SDK batch processor. A nil return means the batch was
// accepted.
func (e *Exporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	var res Result
	e.Export(ctx, spans, func(r Result) { res = r })
	return res.Err
}

// Shutdown implements sdktrace.SpanExporter. The exporter buffers
// nothing, so shutdown only honors an already done context.
func (e *Exporter) Shutdown(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func (e *Exporter) export(ctx context.Context, spans []sdktrace.ReadOnlySpan) Result {
	if len(spans) == 0 {
		return Result{Code: Success}
	}

	select {
	case <-e.projectDone:
	case <-ctx.Done():
		e.logger.Warn("Export interrupted while awaiting project resolution",
			"error", ctx.Err(), "spans", len(spans))
		return Result{
			Code: FailedRetryable,
			Err:  fmt.Errorf("awaiting project resolution: %w", ctx.Err()),
		}
	}

	if e.projectErr != nil {
		e.logger.Error("Dropping span batch, no usable project",
			"error", e.projectErr, "spans", len(spans))
		return Result{
			Code: FailedNotRetryable,
			Err:  fmt.Errorf("project resolution failed: %w", e.projectErr),
		}
	}

	transform := transformer(e.projectID)
	pbSpans := make([]*tracepb.Span, 0, len(spans))
	dropped := 0
	for _, s := range spans {
		pb := transform(s)
		dropped += droppedAttributes(pb)
		pbSpans = append(pbSpans, pb)
	}
	e.metrics.AddDroppedAttributes(dropped)

	client := e.client
	if client == nil {
		var err error
		client, err = e.newClient(ctx, e.cfg, e.userAgent)
		if err != nil {
			e.logger.Error("Failed to create trace client",
				"error", err, "spans", len(spans))
			return Result{
				Code: FailedNotRetryable,
				Err:  fmt.Errorf("failed to create trace client: %w", err),
			}
		}
		// Racing exports may each build a client; the last write wins.
		e.client = client
	}

	callCtx := ctx
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	req := &tracepb.BatchWriteSpansRequest{
		Name:  "projects/" + e.projectID,
		Spans: pbSpans,
	}
	start := time.Now()
	err := client.BatchWriteSpans(callCtx, req)
	e.metrics.ObserveRPCLatency(time.Since(start).Seconds())
	if err != nil {
		e.logger.Error("Failed to write span batch",
			"error", err,
			"grpc_code", grpcstatus.Code(err).String(),
			"spans", len(pbSpans),
			"project_id", e.projectID)
		return Result{
			Code: FailedRetryable,
			Err:  fmt.Errorf("failed to write span batch: %w", err),
		}
	}

	e.logger.Debug("Span batch written", "spans", len(pbSpans), "project_id", e.projectID)
	return Result{Code: Success}
}
