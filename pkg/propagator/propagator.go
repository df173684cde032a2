package propagator

import (
	"context"
	"encoding/binary"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TraceContextHeader is the header carrying Cloud Trace context.
const TraceContextHeader = "X-Cloud-Trace-Context"

// CloudTraceFormatPropagator reads and writes the X-Cloud-Trace-Context
// header. The zero value is ready to use.
type CloudTraceFormatPropagator struct{}

var _ propagation.TextMapPropagator = CloudTraceFormatPropagator{}

// New returns a CloudTraceFormatPropagator.
func New() CloudTraceFormatPropagator {
	return CloudTraceFormatPropagator{}
}

// Inject writes the span context from ctx into the carrier. An invalid
// span context injects nothing.
func (CloudTraceFormatPropagator) Inject(ctx context.Context, carrier propagation.TextMapCarrier) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return
	}
	sampled := "0"
	if sc.IsSampled() {
		sampled = "1"
	}
	sid := sc.SpanID()
	header := sc.TraceID().String() +
		"/" + strconv.FormatUint(binary.BigEndian.Uint64(sid[:]), 10) +
		";o=" + sampled
	carrier.Set(TraceContextHeader, header)
}

// Extract reads the header from the carrier and returns ctx with the
// parsed span context marked remote. A missing or malformed header
// leaves ctx untouched.
func (CloudTraceFormatPropagator) Extract(ctx context.Context, carrier propagation.TextMapCarrier) context.Context {
	header := carrier.Get(TraceContextHeader)
	if header == "" {
		return ctx
	}
	sc, ok := parseHeader(header)
	if !ok {
		return ctx
	}
	return trace.ContextWithRemoteSpanContext(ctx, sc)
}

// Fields returns the header this propagator reads and writes.
func (CloudTraceFormatPropagator) Fields() []string {
	return []string{TraceContextHeader}
}

// parseHeader parses "{32 hex trace id}/{decimal span id}[;o={0|1}]".
// The span id is an unsigned 64 bit decimal, never hex. The options
// suffix may be absent, which means not sampled.
func parseHeader(header string) (trace.SpanContext, bool) {
	rest := header
	sampled := false
	if i := strings.IndexByte(rest, ';'); i >= 0 {
		switch rest[i+1:] {
		case "o=1":
			sampled = true
		case "o=0":
		default:
			return trace.SpanContext{}, false
		}
		rest = rest[:i]
	}

	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return trace.SpanContext{}, false
	}
	traceIDHex, spanIDDec := rest[:slash], rest[slash+1:]

	if len(traceIDHex) != 32 {
		return trace.SpanContext{}, false
	}
	traceID, err := trace.TraceIDFromHex(strings.ToLower(traceIDHex))
	if err != nil {
		return trace.SpanContext{}, false
	}

	// ParseUint tolerates a leading sign, the header format does not.
	if spanIDDec == "" || spanIDDec[0] == '+' {
		return trace.SpanContext{}, false
	}
	n, err := strconv.ParseUint(spanIDDec, 10, 64)
	if err != nil {
		return trace.SpanContext{}, false
	}
	var spanID trace.SpanID
	binary.BigEndian.PutUint64(spanID[:], n)

	var flags trace.TraceFlags
	if sampled {
		flags = trace.FlagsSampled
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: flags,
		Remote:     true,
	})
	if !sc.IsValid() {
		return trace.SpanContext{}, false
	}
	return sc, true
}
