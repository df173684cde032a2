// Package tracing wires the OpenTelemetry SDK to the configured span
// exporter and propagators.
//
// # Overview
//
// The package builds a tracer provider around one of two exporters,
// selected by configuration: the Cloud Trace exporter from
// pkg/exporter/cloudtrace, or an OTLP gRPC exporter for sending spans
// to a collector. Spans are buffered through the SDK batch processor
// and flushed on shutdown.
//
// # Trace Context Propagation
//
// The provider registers a composite propagator handling both the W3C
// Trace Context headers and the X-Cloud-Trace-Context header used by
// Google Cloud load balancers:
//
//	traceparent: 00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01
//	X-Cloud-Trace-Context: 4bf92f3577b34da6a3ce929d0e0e4736/67667974448284343;o=1
//
// When a request carries both, the W3C headers win.
//
// # Sampling Strategies
//
// Three sampling strategies are supported:
//   - always: Sample all traces (development/debugging)
//   - never: Sample no traces (tracing disabled)
//   - ratio: Sample a percentage of traces (production)
//
// All strategies are wrapped in ParentBased, so child spans follow the
// parent's decision.
//
// # Usage
//
//	cfg, err := config.LoadConfig("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tracer, err := tracing.New(cfg, logger, exporterMetrics)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, "handle_request")
//	defer span.End()
//
//	span.SetAttributes(
//	    attribute.String("http.method", "GET"),
//	    attribute.Int("http.status_code", 200),
//	)
//
// # HTTP Integration
//
// Extract trace context from incoming HTTP requests:
//
//	ctx := tracing.Extract(r.Context(), r.Header)
//	ctx, span := tracer.Start(ctx, "handle_request")
//	defer span.End()
//
// Inject trace context into outgoing HTTP requests:
//
//	req, _ := http.NewRequestWithContext(ctx, "POST", url, body)
//	tracing.Inject(ctx, req.Header)
package tracing
