package cloudtrace

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/reggiemcdonald/opentelemetry-operations-go/internal/spantest"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/config"
)

func benchmarkSpan(b *testing.B) sdktrace.ReadOnlySpan {
	b.Helper()
	stub := spantest.Stub(b)
	stub.Attributes = []attribute.KeyValue{
		attribute.String("http.method", "GET"),
		attribute.String("http.route", "/api/v1/items"),
		attribute.Int("http.status_code", 200),
		attribute.Float64("duration_ms", 14.25),
		attribute.Bool("cache.hit", false),
	}
	stub.Events = []sdktrace.Event{{
		Name:       "cache.lookup",
		Time:       spantest.Start,
		Attributes: []attribute.KeyValue{attribute.String("key", "items:all")},
	}}
	stub.Links = []sdktrace.Link{{
		SpanContext: stub.SpanContext,
		Attributes:  []attribute.KeyValue{attribute.Int("retry", 0)},
	}}
	stub.Status = sdktrace.Status{Code: codes.Ok}
	return stub.Snapshot()
}

func BenchmarkTransformer(b *testing.B) {
	span := benchmarkSpan(b)
	transform := transformer(spantest.ProjectID)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		transform(span)
	}
}

func BenchmarkExport(b *testing.B) {
	factory := &fakeFactory{writer: &fakeWriter{}}
	e := newExporter(&config.ExporterConfig{}, testLogger(), nil,
		staticResolver(spantest.ProjectID, nil), factory.build)
	spans := []sdktrace.ReadOnlySpan{benchmarkSpan(b)}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Export(context.Background(), spans, nil)
	}
}
