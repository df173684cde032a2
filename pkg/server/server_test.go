package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/config"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/exporter/cloudtrace"
	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/telemetry/metrics"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig() failed: %v", err)
	}
	cfg.Server.ListenAddress = "127.0.0.1:0"
	return cfg
}

func newTestServer(t *testing.T) (*Server, *metrics.ExporterMetrics) {
	t.Helper()

	cfg := testConfig(t)
	em := metrics.NewExporterMetrics(&cfg.Telemetry.Metrics, nil)
	return NewServer(cfg, em, testLogger()), em
}

func TestHandler_Healthz(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /healthz status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandler_Readyz(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /readyz status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ready" {
		t.Errorf("status = %v, want ready", body["status"])
	}

	// A failing component check degrades readiness.
	srv.Checker().RegisterCheck("scheduler", func(context.Context) error {
		return errors.New("scheduler not running")
	})

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /readyz with failing check status = %d, want %d",
			rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHandler_Version(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /version status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["version"] != cloudtrace.Version {
		t.Errorf("version = %v, want %v", body["version"], cloudtrace.Version)
	}
	if body["service"] != "tracegen" {
		t.Errorf("service = %v, want tracegen", body["service"])
	}
}

func TestHandler_Metrics(t *testing.T) {
	srv, em := newTestServer(t)

	em.RecordExport("success", 3)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "tracegen_cloudtrace_export_spans_total") {
		t.Error("metrics exposition missing export spans counter")
	}
}

func TestHandler_MetricsNilCollector(t *testing.T) {
	srv := NewServer(testConfig(t), nil, testLogger())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /metrics without collector status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandler_UnknownPath(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestWithRecovery(t *testing.T) {
	srv, _ := newTestServer(t)

	handler := srv.withRecovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status after panic = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before timeout")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestServer_StartShutdown(t *testing.T) {
	srv, _ := newTestServer(t)

	if err := srv.Health(); err == nil {
		t.Error("Health() before start should fail")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(context.Background())
	}()

	waitFor(t, 2*time.Second, srv.IsRunning)

	if err := srv.Health(); err != nil {
		t.Errorf("Health() while running = %v, want nil", err)
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Start() returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start() did not return after Shutdown()")
	}

	if srv.IsRunning() {
		t.Error("server still running after Shutdown()")
	}
}

func TestServer_StartTwice(t *testing.T) {
	srv, _ := newTestServer(t)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(context.Background())
	}()

	waitFor(t, 2*time.Second, srv.IsRunning)

	if err := srv.Start(context.Background()); err == nil {
		t.Error("second Start() should fail while running")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	<-errCh
}

func TestServer_StartListenError(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.ListenAddress = "127.0.0.1:99999"

	srv := NewServer(cfg, nil, testLogger())

	if err := srv.Start(context.Background()); err == nil {
		t.Fatal("Start() on invalid port should fail")
	}
	if srv.IsRunning() {
		t.Error("server reports running after listen failure")
	}
}

func TestServer_ContextCancel(t *testing.T) {
	srv, _ := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	waitFor(t, 2*time.Second, srv.IsRunning)

	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Start() after cancel = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start() did not return after context cancel")
	}

	if srv.IsRunning() {
		t.Error("server still running after context cancel")
	}
}
