package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// Benchmark_CheckLiveness benchmarks the liveness check.
func Benchmark_CheckLiveness(b *testing.B) {
	checker := New(5 * time.Second)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = checker.CheckLiveness()
	}
}

// Benchmark_CheckReadiness_NoChecks benchmarks readiness with no checks.
func Benchmark_CheckReadiness_NoChecks(b *testing.B) {
	checker := New(5 * time.Second)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = checker.CheckReadiness(ctx)
	}
}

// Benchmark_CheckReadiness_FiveChecks benchmarks readiness with five checks.
func Benchmark_CheckReadiness_FiveChecks(b *testing.B) {
	checker := New(5 * time.Second)
	names := []string{"scheduler", "exporter", "server", "config", "workload"}
	for _, name := range names {
		checker.RegisterCheck(name, func(ctx context.Context) error { return nil })
	}
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = checker.CheckReadiness(ctx)
	}
}

// Benchmark_ReadinessHandler benchmarks the readiness HTTP handler.
func Benchmark_ReadinessHandler(b *testing.B) {
	checker := New(5 * time.Second)
	checker.RegisterCheck("scheduler", func(ctx context.Context) error { return nil })
	handler := checker.ReadinessHandler()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		rec := httptest.NewRecorder()
		handler(rec, req)
	}
}

// Benchmark_Parallel_CheckReadiness benchmarks concurrent readiness checks.
func Benchmark_Parallel_CheckReadiness(b *testing.B) {
	checker := New(5 * time.Second)
	checker.RegisterCheck("scheduler", func(ctx context.Context) error { return nil })
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = checker.CheckReadiness(ctx)
		}
	})
}
