package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/propagation"

	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/propagator"
)

// Context Propagation
//
// Trace context crosses service boundaries through two header
// families:
//
// traceparent/tracestate: the W3C Trace Context headers
// (https://www.w3.org/TR/trace-context/).
// Format: version-trace_id-parent_id-trace_flags
// Example: 00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01
//
// X-Cloud-Trace-Context: the header written by Google Cloud Load
// Balancing, App Engine, and Cloud Run.
// Format: trace_id/span_id;o=options
// Example: 4bf92f3577b34da6a3ce929d0e0e4736/67667974448284343;o=1
//
// The module registers a composite propagator covering both families,
// so traces stay connected whether the peer speaks W3C or the Google
// Cloud header.

// Propagator returns the composite text map propagator this module
// registers globally: the Cloud Trace header format, W3C Trace
// Context, and W3C Baggage. W3C Trace Context runs last, so it wins
// when a request carries both header families.
func Propagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagator.New(),
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

// Extract extracts trace context from HTTP headers and returns a
// context carrying it. This is called on the server side when
// receiving a request:
//
//	ctx := tracing.Extract(r.Context(), r.Header)
//	ctx, span := tracer.Start(ctx, "handle_request")
//	defer span.End()
//
// If no trace context is found in the headers, the original context is
// returned.
func Extract(ctx context.Context, headers http.Header) context.Context {
	return Propagator().Extract(ctx, propagation.HeaderCarrier(headers))
}

// Inject injects trace context into HTTP headers. This is called on
// the client side before making a request:
//
//	req, _ := http.NewRequestWithContext(ctx, "POST", url, body)
//	tracing.Inject(ctx, req.Header)
//	resp, err := client.Do(req)
func Inject(ctx context.Context, headers http.Header) {
	Propagator().Inject(ctx, propagation.HeaderCarrier(headers))
}

// ExtractFromMap extracts trace context from a string map. This is
// useful for extracting context from non-HTTP sources.
func ExtractFromMap(ctx context.Context, carrier map[string]string) context.Context {
	return Propagator().Extract(ctx, propagation.MapCarrier(carrier))
}

// InjectToMap injects trace context into a string map. This is useful
// for injecting context into non-HTTP destinations.
func InjectToMap(ctx context.Context, carrier map[string]string) {
	Propagator().Inject(ctx, propagation.MapCarrier(carrier))
}
