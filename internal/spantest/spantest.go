// Package spantest builds deterministic span fixtures shared by the
// exporter, propagator, and tracing tests.
package spantest

import (
	"testing"
	"time"

	"go.opentelemetry.io/otel/sdk/instrumentation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// Well known identifiers used across the fixture spans.
const (
	TraceIDHex = "d4cda95b652f4a1592b449d5929fda1b"
	SpanIDHex  = "6e0c63257de34c92"
	ProjectID  = "project-id"
)

// Start and End are the fixed timestamps carried by Stub.
var (
	Start = time.Unix(1585674086, 735716000).UTC()
	End   = Start.Add(100 * time.Millisecond)
)

// SpanContext builds a sampled span context from hex identifiers.
func SpanContext(tb testing.TB, traceID, spanID string, remote bool) trace.SpanContext {
	tb.Helper()
	tid, err := trace.TraceIDFromHex(traceID)
	if err != nil {
		tb.Fatalf("invalid trace id %q: %v", traceID, err)
	}
	sid, err := trace.SpanIDFromHex(spanID)
	if err != nil {
		tb.Fatalf("invalid span id %q: %v", spanID, err)
	}
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    tid,
		SpanID:     sid,
		TraceFlags: trace.FlagsSampled,
		Remote:     remote,
	})
}

// Stub returns a local root span with the well known identifiers, no
// attributes, and an empty resource. Tests mutate the returned value
// before snapshotting it into a ReadOnlySpan.
func Stub(tb testing.TB) tracetest.SpanStub {
	tb.Helper()
	return tracetest.SpanStub{
		Name:        "test-span",
		SpanContext: SpanContext(tb, TraceIDHex, SpanIDHex, false),
		SpanKind:    trace.SpanKindInternal,
		StartTime:   Start,
		EndTime:     End,
		Resource:    resource.NewSchemaless(),
		InstrumentationScope: instrumentation.Scope{
			Name:    "spantest",
			Version: "1.0.0",
		},
	}
}
