package workload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/config"
)

// errBackendUnavailable is the synthetic failure recorded on leaf spans
// selected by the error ratio.
var errBackendUnavailable = errors.New("backend unavailable")

// SpanStarter starts spans. Both trace.Tracer and tracing.Tracer
// satisfy it.
type SpanStarter interface {
	Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span)
}

// Stats summarizes one generation pass.
type Stats struct {
	// Traces is the number of trace trees generated.
	Traces int

	// Spans is the total number of spans across all trees.
	Spans int

	// Errors is the number of leaf spans marked with an error status.
	Errors int
}

// Generator produces synthetic span trees shaped by WorkloadConfig.
// Each tree has a server root span, internal intermediate spans, and
// client leaf spans, with per-trace request ids, events, links to the
// previous trace, and a configurable fraction of failing leaves.
//
// The generator is safe for concurrent use; Retune may be called while
// Run is executing and takes effect on the next pass.
type Generator struct {
	tracer SpanStarter
	logger *slog.Logger

	mu       sync.Mutex
	cfg      config.WorkloadConfig
	rng      *rand.Rand
	lastRoot trace.SpanContext
}

// NewGenerator creates a Generator that starts spans through tracer.
// If logger is nil, slog.Default() is used. The config is expected to
// have passed config.Validate.
func NewGenerator(tracer SpanStarter, cfg config.WorkloadConfig, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		tracer: tracer,
		logger: logger.With("component", "workload"),
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Retune replaces the workload shape for subsequent runs. A changed
// Schedule does not reschedule a running Scheduler; restart it to pick
// the new cadence up.
func (g *Generator) Retune(cfg config.WorkloadConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cfg = cfg
}

// Config returns the workload shape used for the next run.
func (g *Generator) Config() config.WorkloadConfig {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.cfg
}

// Run generates one batch of trace trees and reports what was emitted.
// Generation stops early when ctx is done; spans already started are
// still ended.
func (g *Generator) Run(ctx context.Context) Stats {
	cfg := g.Config()

	var stats Stats
	for i := 0; i < cfg.Traces; i++ {
		if ctx.Err() != nil {
			break
		}

		spans, errCount := g.generateTrace(ctx, cfg, i)
		stats.Traces++
		stats.Spans += spans
		stats.Errors += errCount
	}

	g.logger.Debug("workload batch generated",
		"traces", stats.Traces,
		"spans", stats.Spans,
		"errors", stats.Errors,
	)

	return stats
}

// generateTrace builds one span tree rooted at a server span.
func (g *Generator) generateTrace(ctx context.Context, cfg config.WorkloadConfig, seq int) (spans, errCount int) {
	requestID := uuid.New().String()

	opts := []trace.SpanStartOption{
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(rootAttributes(cfg, requestID, seq)...),
	}

	// Link each root to the previous trace's root so the batch forms a
	// chain of related requests.
	if prev := g.previousRoot(); prev.IsValid() {
		opts = append(opts, trace.WithLinks(trace.Link{
			SpanContext: prev,
			Attributes: []attribute.KeyValue{
				attribute.String("link.relation", "previous_request"),
			},
		}))
	}

	ctx, root := g.tracer.Start(ctx, "handle_request", opts...)
	root.AddEvent("request.received", trace.WithAttributes(
		attribute.String("request.id", requestID),
	))

	spans = 1
	childSpans, childErrors := g.generateChildren(ctx, cfg, 1)
	spans += childSpans
	errCount += childErrors

	if errCount > 0 {
		root.SetStatus(codes.Error, "downstream call failed")
	} else {
		root.SetStatus(codes.Ok, "")
	}
	root.AddEvent("response.sent")
	root.End()

	g.setPreviousRoot(trace.SpanContextFromContext(ctx))

	return spans, errCount
}

// generateChildren builds the subtree below a parent at the given
// depth. Intermediate levels are internal spans, the deepest level is
// client spans calling a synthetic backend.
func (g *Generator) generateChildren(ctx context.Context, cfg config.WorkloadConfig, depth int) (spans, errCount int) {
	if depth >= cfg.Depth {
		return 0, 0
	}

	leaf := depth == cfg.Depth-1
	for i := 0; i < cfg.Breadth; i++ {
		if ctx.Err() != nil {
			return spans, errCount
		}

		if leaf {
			if g.generateLeaf(ctx, cfg, i) {
				errCount++
			}
			spans++
			continue
		}

		childCtx, span := g.tracer.Start(ctx, "process_item",
			trace.WithAttributes(attribute.Int("item.index", i)),
		)
		spans++

		grandSpans, grandErrors := g.generateChildren(childCtx, cfg, depth+1)
		spans += grandSpans
		errCount += grandErrors

		if grandErrors > 0 {
			span.SetStatus(codes.Error, "downstream call failed")
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}

	return spans, errCount
}

// generateLeaf builds one client span and reports whether it was
// marked as failed.
func (g *Generator) generateLeaf(ctx context.Context, cfg config.WorkloadConfig, index int) bool {
	_, span := g.tracer.Start(ctx, "call_backend",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("backend.target", fmt.Sprintf("backend-%d", index)),
		),
	)
	defer span.End()

	if g.shouldError(cfg.ErrorRatio) {
		span.RecordError(errBackendUnavailable)
		span.SetStatus(codes.Error, errBackendUnavailable.Error())
		return true
	}

	span.SetStatus(codes.Ok, "")
	return false
}

// rootAttributes assembles the attribute set stamped on a root span.
func rootAttributes(cfg config.WorkloadConfig, requestID string, seq int) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("request.id", requestID),
		attribute.Int("request.sequence", seq),
		// Slice values have no Cloud Trace attribute representation;
		// the exporter drops and counts them.
		attribute.StringSlice("request.tags", []string{"demo", "synthetic"}),
	}

	for k, v := range cfg.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}

	return attrs
}

// shouldError decides whether a leaf span fails. Ratios of 0 and 1 are
// deterministic.
func (g *Generator) shouldError(ratio float64) bool {
	if ratio <= 0 {
		return false
	}
	if ratio >= 1 {
		return true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rng.Float64() < ratio
}

func (g *Generator) previousRoot() trace.SpanContext {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.lastRoot
}

func (g *Generator) setPreviousRoot(sc trace.SpanContext) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastRoot = sc
}
