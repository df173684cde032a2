// Tracegen exports OpenTelemetry spans to Google Cloud Trace.
//
// It wires the Cloud Trace span exporter into an OpenTelemetry tracer
// provider and drives a configurable synthetic workload through it,
// providing:
//   - Cloud Trace and OTLP exporter backends
//   - W3C Trace Context and X-Cloud-Trace-Context propagation
//   - Scheduled trace generation with live workload re-tuning
//   - Prometheus self-metrics and an ops HTTP server
//
// Usage:
//
//	# Start the generator with default configuration
//	tracegen run
//
//	# Start with custom configuration file
//	tracegen run --config /path/to/config.yaml
//
//	# Emit one batch of traces and exit
//	tracegen export --traces 10
//
//	# Show version information
//	tracegen version
//
// For complete documentation, see:
// https://github.com/reggiemcdonald/opentelemetry-operations-go
package main

func main() {
	Execute()
}
