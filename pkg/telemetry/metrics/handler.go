package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an HTTP handler for the Prometheus metrics endpoint.
//
// The handler exposes all metrics registered with the underlying
// registry in the standard exposition format. It should be mounted at
// the path specified in the MetricsConfig (typically "/metrics").
// On a nil receiver the handler responds with 404, matching the no-op
// recording behavior.
//
// Example:
//
//	em := metrics.NewExporterMetrics(&cfg.Telemetry.Metrics, nil)
//	http.Handle("/metrics", em.Handler())
func (em *ExporterMetrics) Handler() http.Handler {
	if em == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(
		em.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			ErrorHandling:     promhttp.ContinueOnError,
		},
	)
}

// HandlerWithOptions returns an HTTP handler with custom promhttp
// options, for callers that need scrape timeouts or in-flight limits.
func (em *ExporterMetrics) HandlerWithOptions(opts promhttp.HandlerOpts) http.Handler {
	if em == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(em.registry, opts)
}
