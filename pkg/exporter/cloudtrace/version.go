package cloudtrace

import (
	"fmt"

	"go.opentelemetry.io/otel"
)

// Version is the current release of the Cloud Trace exporter.
const Version = "0.1.0"

// agentLabel is the Cloud Trace attribute key that identifies the
// agent which produced a span. The Trace console surfaces it in the
// span detail view.
const agentLabel = "g.co/agent"

// agentValue reports the exporter and the OpenTelemetry SDK it adapts.
func agentValue() string {
	return fmt.Sprintf("opentelemetry-go %s; cloud-trace-exporter %s", otel.Version(), Version)
}

// defaultUserAgent is sent to the Cloud Trace API when the
// configuration does not override it.
func defaultUserAgent() string {
	return "cloud-trace-exporter/" + Version
}
