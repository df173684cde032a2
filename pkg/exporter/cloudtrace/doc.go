// Package cloudtrace exports OpenTelemetry spans to Google Cloud
// Trace using the v2 BatchWriteSpans API.
//
// The exporter implements sdktrace.SpanExporter, so it plugs directly
// into an SDK tracer provider, and additionally offers a callback
// based Export method that reports a classified Result per batch.
//
// # Project Resolution
//
// Every exported span is named under a Google Cloud project. The
// project is resolved once, in the background, when the exporter is
// constructed:
//
//  1. ExporterConfig.ProjectID, when set.
//  2. The project recorded in ExporterConfig.CredentialsJSON.
//  3. The project recorded in ExporterConfig.CredentialsFile.
//  4. Application Default Credentials.
//
// Exports block until resolution completes. A resolution failure is
// permanent: every subsequent export fails with FailedNotRetryable and
// no network calls are made.
//
// # Result Classification
//
// Each batch yields exactly one Result. Success means the API accepted
// the batch. FailedRetryable covers transient conditions, such as RPC
// errors and exports interrupted while awaiting project resolution.
// FailedNotRetryable covers permanent conditions, such as a failed
// project resolution or a client that cannot be constructed with the
// given credentials. Client construction itself is attempted again on
// the next export.
//
// # Span Mapping
//
// Span and resource attributes merge into a single attribute map where
// resource attributes win key collisions, followed by the g.co/agent
// label, followed by span attributes. Boolean, integer, float, and
// string values survive the mapping; floats are rounded to the nearest
// integer. Values of any other type are dropped and counted in
// DroppedAttributesCount. Events become Cloud Trace annotations and
// links keep their trace identity. Attribute, event, and link
// containers are always present on the wire, even when empty.
//
// # Observability
//
// When constructed with an ExporterMetrics, the exporter records batch
// outcomes, batch sizes, BatchWriteSpans latency, and dropped
// attribute totals. Failures are logged through the provided
// slog.Logger before the batch callback fires.
package cloudtrace
