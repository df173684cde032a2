package health

import (
	"context"
	"sync"
	"time"
)

// CheckFunc probes one component. It returns nil when the component is
// healthy, or an error describing the problem.
type CheckFunc func(ctx context.Context) error

// CheckResult is the outcome of a single component check.
type CheckResult struct {
	// Status is "ok" or "unhealthy".
	Status string `json:"status"`

	// Message carries the error text for unhealthy components.
	Message string `json:"message,omitempty"`

	// Duration is how long the check took, in milliseconds.
	Duration float64 `json:"duration_ms,omitempty"`
}

// HealthStatus is the aggregate status reported by the probe endpoints.
type HealthStatus struct {
	// Status is "ok" for liveness, "ready" or "degraded" for readiness.
	Status string `json:"status"`

	// Checks holds per-component results. Liveness responses omit it.
	Checks map[string]CheckResult `json:"checks,omitempty"`

	// Timestamp is when the probe ran.
	Timestamp time.Time `json:"timestamp"`
}

// Checker runs registered component checks for the probe endpoints.
type Checker struct {
	mu      sync.RWMutex
	checks  map[string]CheckFunc
	timeout time.Duration
}

// New creates a Checker. A zero timeout defaults to 5 seconds per
// check.
func New(timeout time.Duration) *Checker {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Checker{
		checks:  make(map[string]CheckFunc),
		timeout: timeout,
	}
}

// RegisterCheck registers a check under the given component name,
// replacing any existing check with that name.
func (c *Checker) RegisterCheck(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// CheckCount returns the number of registered checks.
func (c *Checker) CheckCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.checks)
}

// CheckLiveness reports that the process is alive. It never runs
// component checks, so it stays fast enough for tight probe intervals.
func (c *Checker) CheckLiveness() HealthStatus {
	return HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
	}
}

// CheckReadiness runs all registered checks concurrently and
// aggregates their results. Any unhealthy component degrades the
// overall status. With no checks registered the system is ready.
func (c *Checker) CheckReadiness(ctx context.Context) HealthStatus {
	c.mu.RLock()
	checks := make(map[string]CheckFunc, len(c.checks))
	for name, check := range c.checks {
		checks[name] = check
	}
	c.mu.RUnlock()

	if len(checks) == 0 {
		return HealthStatus{
			Status:    "ready",
			Checks:    make(map[string]CheckResult),
			Timestamp: time.Now(),
		}
	}

	results := make(map[string]CheckResult)
	var resultMu sync.Mutex
	var wg sync.WaitGroup

	for name, check := range checks {
		wg.Add(1)
		go func(name string, check CheckFunc) {
			defer wg.Done()

			result := c.runCheck(ctx, check)

			resultMu.Lock()
			results[name] = result
			resultMu.Unlock()
		}(name, check)
	}

	wg.Wait()

	status := "ready"
	for _, result := range results {
		if result.Status == "unhealthy" {
			status = "degraded"
		}
	}

	return HealthStatus{
		Status:    status,
		Checks:    results,
		Timestamp: time.Now(),
	}
}

// runCheck executes one check under the configured timeout. The check
// runs in its own goroutine so a check that ignores its context cannot
// stall the probe.
func (c *Checker) runCheck(ctx context.Context, check CheckFunc) CheckResult {
	checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()

	errChan := make(chan error, 1)
	go func() {
		errChan <- check(checkCtx)
	}()

	select {
	case err := <-errChan:
		elapsed := float64(time.Since(start)) / float64(time.Millisecond)
		if err != nil {
			return CheckResult{
				Status:   "unhealthy",
				Message:  err.Error(),
				Duration: elapsed,
			}
		}
		return CheckResult{
			Status:   "ok",
			Duration: elapsed,
		}

	case <-checkCtx.Done():
		return CheckResult{
			Status:   "unhealthy",
			Message:  "health check timeout",
			Duration: float64(time.Since(start)) / float64(time.Millisecond),
		}
	}
}
