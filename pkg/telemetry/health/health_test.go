package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name            string
		timeout         time.Duration
		expectedTimeout time.Duration
	}{
		{
			name:            "default timeout",
			timeout:         0,
			expectedTimeout: 5 * time.Second,
		},
		{
			name:            "custom timeout",
			timeout:         10 * time.Second,
			expectedTimeout: 10 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := New(tt.timeout)

			if checker == nil {
				t.Fatal("expected non-nil checker")
			}

			if checker.timeout != tt.expectedTimeout {
				t.Errorf("expected timeout %v, got %v", tt.expectedTimeout, checker.timeout)
			}

			if checker.CheckCount() != 0 {
				t.Errorf("expected 0 checks, got %d", checker.CheckCount())
			}
		})
	}
}

func TestRegisterCheck(t *testing.T) {
	checker := New(5 * time.Second)

	checker.RegisterCheck("exporter", func(ctx context.Context) error { return nil })

	if checker.CheckCount() != 1 {
		t.Errorf("expected 1 check, got %d", checker.CheckCount())
	}

	// Re-registering under the same name replaces the check.
	checker.RegisterCheck("exporter", func(ctx context.Context) error {
		return errors.New("replaced")
	})

	if checker.CheckCount() != 1 {
		t.Errorf("expected 1 check after replacement, got %d", checker.CheckCount())
	}

	status := checker.CheckReadiness(context.Background())
	if status.Checks["exporter"].Message != "replaced" {
		t.Errorf("expected replacement check to run, got %q", status.Checks["exporter"].Message)
	}
}

func TestCheckLiveness(t *testing.T) {
	checker := New(5 * time.Second)

	status := checker.CheckLiveness()

	if status.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", status.Status)
	}

	if status.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}

	if len(status.Checks) != 0 {
		t.Error("expected no checks in liveness response")
	}
}

func TestCheckReadiness_NoChecks(t *testing.T) {
	checker := New(5 * time.Second)

	status := checker.CheckReadiness(context.Background())

	if status.Status != "ready" {
		t.Errorf("expected status 'ready', got %q", status.Status)
	}

	if status.Checks == nil {
		t.Error("expected non-nil checks map")
	}

	if len(status.Checks) != 0 {
		t.Errorf("expected 0 checks, got %d", len(status.Checks))
	}
}

func TestCheckReadiness_AllHealthy(t *testing.T) {
	checker := New(5 * time.Second)

	checker.RegisterCheck("scheduler", func(ctx context.Context) error { return nil })
	checker.RegisterCheck("exporter", func(ctx context.Context) error { return nil })

	status := checker.CheckReadiness(context.Background())

	if status.Status != "ready" {
		t.Errorf("expected status 'ready', got %q", status.Status)
	}

	if len(status.Checks) != 2 {
		t.Errorf("expected 2 checks, got %d", len(status.Checks))
	}

	for name, result := range status.Checks {
		if result.Status != "ok" {
			t.Errorf("expected check %q to be ok, got %q", name, result.Status)
		}
	}
}

func TestCheckReadiness_SomeUnhealthy(t *testing.T) {
	checker := New(5 * time.Second)

	checker.RegisterCheck("healthy", func(ctx context.Context) error { return nil })
	checker.RegisterCheck("unhealthy", func(ctx context.Context) error {
		return errors.New("component unhealthy")
	})

	status := checker.CheckReadiness(context.Background())

	if status.Status != "degraded" {
		t.Errorf("expected status 'degraded', got %q", status.Status)
	}

	if status.Checks["healthy"].Status != "ok" {
		t.Errorf("expected healthy check to be ok, got %q", status.Checks["healthy"].Status)
	}

	unhealthyResult := status.Checks["unhealthy"]
	if unhealthyResult.Status != "unhealthy" {
		t.Errorf("expected unhealthy check to be unhealthy, got %q", unhealthyResult.Status)
	}
	if unhealthyResult.Message != "component unhealthy" {
		t.Errorf("expected message 'component unhealthy', got %q", unhealthyResult.Message)
	}
}

func TestCheckReadiness_Timeout(t *testing.T) {
	checker := New(100 * time.Millisecond)

	checker.RegisterCheck("slow", func(ctx context.Context) error {
		time.Sleep(200 * time.Millisecond)
		return nil
	})

	status := checker.CheckReadiness(context.Background())

	if status.Status != "degraded" {
		t.Errorf("expected status 'degraded', got %q", status.Status)
	}

	slowResult := status.Checks["slow"]
	if slowResult.Status != "unhealthy" {
		t.Errorf("expected slow check to be unhealthy, got %q", slowResult.Status)
	}
	if slowResult.Message != "health check timeout" {
		t.Errorf("expected timeout message, got %q", slowResult.Message)
	}
}

func TestCheckReadiness_ContextCanceled(t *testing.T) {
	checker := New(5 * time.Second)

	checker.RegisterCheck("ctx", func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
			return nil
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status := checker.CheckReadiness(ctx)

	if status.Checks["ctx"].Status != "unhealthy" {
		t.Errorf("expected check to be unhealthy, got %q", status.Checks["ctx"].Status)
	}
}

func TestCheckResult_Duration(t *testing.T) {
	checker := New(5 * time.Second)

	checker.RegisterCheck("slow", func(ctx context.Context) error {
		time.Sleep(50 * time.Millisecond)
		return nil
	})

	status := checker.CheckReadiness(context.Background())

	if got := status.Checks["slow"].Duration; got < 50 {
		t.Errorf("expected duration >= 50ms, got %vms", got)
	}
}

func TestLivenessHandler(t *testing.T) {
	checker := New(5 * time.Second)
	handler := checker.LivenessHandler()

	tests := []struct {
		name           string
		method         string
		expectedStatus int
		checkBody      bool
	}{
		{
			name:           "GET request",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			checkBody:      true,
		},
		{
			name:           "HEAD request",
			method:         http.MethodHead,
			expectedStatus: http.StatusOK,
			checkBody:      false,
		},
		{
			name:           "POST request",
			method:         http.MethodPost,
			expectedStatus: http.StatusMethodNotAllowed,
			checkBody:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/healthz", nil)
			rec := httptest.NewRecorder()

			handler(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}

			if tt.checkBody {
				var status HealthStatus
				if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}

				if status.Status != "ok" {
					t.Errorf("expected status 'ok', got %q", status.Status)
				}
			}
		})
	}
}

func TestReadinessHandler(t *testing.T) {
	tests := []struct {
		name           string
		setupChecks    func(*Checker)
		expectedStatus int
		expectedHealth string
	}{
		{
			name: "all healthy",
			setupChecks: func(c *Checker) {
				c.RegisterCheck("scheduler", func(ctx context.Context) error { return nil })
			},
			expectedStatus: http.StatusOK,
			expectedHealth: "ready",
		},
		{
			name: "some unhealthy",
			setupChecks: func(c *Checker) {
				c.RegisterCheck("healthy", func(ctx context.Context) error { return nil })
				c.RegisterCheck("unhealthy", func(ctx context.Context) error {
					return errors.New("failed")
				})
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedHealth: "degraded",
		},
		{
			name:           "no checks",
			setupChecks:    func(c *Checker) {},
			expectedStatus: http.StatusOK,
			expectedHealth: "ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := New(5 * time.Second)
			tt.setupChecks(checker)

			handler := checker.ReadinessHandler()

			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			rec := httptest.NewRecorder()

			handler(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}

			var status HealthStatus
			if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}

			if status.Status != tt.expectedHealth {
				t.Errorf("expected status %q, got %q", tt.expectedHealth, status.Status)
			}
		})
	}
}

func TestConcurrentReadiness(t *testing.T) {
	checker := New(5 * time.Second)

	checker.RegisterCheck("slow", func(ctx context.Context) error {
		time.Sleep(10 * time.Millisecond)
		return nil
	})

	done := make(chan bool, 5)
	for i := 0; i < 5; i++ {
		go func() {
			status := checker.CheckReadiness(context.Background())
			if status.Status != "ready" {
				t.Errorf("expected status 'ready', got %q", status.Status)
			}
			done <- true
		}()
	}

	for i := 0; i < 5; i++ {
		<-done
	}
}
