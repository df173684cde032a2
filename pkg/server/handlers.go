package server

import (
	"encoding/json"
	"net/http"
	"runtime"

	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/exporter/cloudtrace"
)

// VersionHandler reports service and build metadata.
type VersionHandler struct {
	service string
}

// NewVersionHandler creates a new version handler for the given
// service name.
func NewVersionHandler(service string) *VersionHandler {
	return &VersionHandler{service: service}
}

// ServeHTTP implements http.Handler for version requests.
func (h *VersionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"service":    h.service,
		"version":    cloudtrace.Version,
		"go_version": runtime.Version(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
