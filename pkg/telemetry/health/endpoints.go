package health

import (
	"encoding/json"
	"net/http"
)

// LivenessHandler returns the handler for the liveness probe. It
// reports the process alive without running component checks.
//
// Example response:
//
//	{
//	    "status": "ok",
//	    "timestamp": "2026-08-23T10:30:00Z"
//	}
func (c *Checker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		status := c.CheckLiveness()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if r.Method != http.MethodHead {
			_ = json.NewEncoder(w).Encode(status)
		}
	}
}

// ReadinessHandler returns the handler for the readiness probe. It
// runs all registered component checks and responds 503 when any
// component is unhealthy.
//
// Example response:
//
//	{
//	    "status": "ready",
//	    "checks": {
//	        "scheduler": {"status": "ok", "duration_ms": 0.1}
//	    },
//	    "timestamp": "2026-08-23T10:30:00Z"
//	}
func (c *Checker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		status := c.CheckReadiness(r.Context())

		w.Header().Set("Content-Type", "application/json")

		if status.Status == "degraded" {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		if r.Method != http.MethodHead {
			_ = json.NewEncoder(w).Encode(status)
		}
	}
}
