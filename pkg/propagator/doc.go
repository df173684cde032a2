// Package propagator implements OpenTelemetry context propagation for
// the X-Cloud-Trace-Context header used by Google Cloud load
// balancers, App Engine, and Cloud Run.
//
// # Header Format
//
// X-Cloud-Trace-Context: TRACE_ID/SPAN_ID;o=OPTIONS
//
//   - TRACE_ID: 32 hexadecimal digits (128-bit trace identifier)
//   - SPAN_ID: unsigned 64-bit decimal integer, not hexadecimal
//   - OPTIONS: 1 when the trace is sampled, 0 when it is not
//
// Example: 105445aa7843bc8bf206b12000100000/7929822056569588882;o=1
//
// # Usage
//
// Register the propagator globally, typically next to the W3C
// propagators, so both header families survive service hops. Later
// propagators in a composite overwrite earlier extractions, so list
// this one first to let a traceparent header win when both arrive:
//
//	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
//		propagator.New(),
//		propagation.TraceContext{},
//		propagation.Baggage{},
//	))
//
// Extraction is strict: the trace id must be 32 hex digits, the span
// id must fit an unsigned 64-bit decimal, and the options suffix, when
// present, must be exactly o=0 or o=1. Anything else leaves the
// incoming context untouched. Extracted span contexts are marked
// remote.
package propagator
