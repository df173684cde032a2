package propagator

import (
	"context"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/reggiemcdonald/opentelemetry-operations-go/internal/spantest"
)

// spanIDDecimal is spantest.SpanIDHex interpreted as an unsigned
// 64-bit integer.
const spanIDDecimal = "7929822056569588882"

func contextWithSpan(t *testing.T, sampled bool) context.Context {
	t.Helper()
	sc := spantest.SpanContext(t, spantest.TraceIDHex, spantest.SpanIDHex, false)
	if !sampled {
		sc = sc.WithTraceFlags(0)
	}
	return trace.ContextWithSpanContext(context.Background(), sc)
}

func TestInject(t *testing.T) {
	tests := []struct {
		name    string
		sampled bool
		want    string
	}{
		{"sampled", true, spantest.TraceIDHex + "/" + spanIDDecimal + ";o=1"},
		{"not sampled", false, spantest.TraceIDHex + "/" + spanIDDecimal + ";o=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carrier := propagation.MapCarrier{}
			New().Inject(contextWithSpan(t, tt.sampled), carrier)

			if got := carrier.Get(TraceContextHeader); got != tt.want {
				t.Errorf("header = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInject_InvalidContextInjectsNothing(t *testing.T) {
	carrier := propagation.MapCarrier{}
	New().Inject(context.Background(), carrier)

	if len(carrier) != 0 {
		t.Errorf("carrier = %v, want empty", carrier)
	}
}

func TestInject_HTTPHeaders(t *testing.T) {
	header := http.Header{}
	New().Inject(contextWithSpan(t, true), propagation.HeaderCarrier(header))

	want := spantest.TraceIDHex + "/" + spanIDDecimal + ";o=1"
	if got := header.Get(TraceContextHeader); got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantTraceID string
		wantSpanID  string
		wantSampled bool
	}{
		{
			name:        "sampled",
			header:      spantest.TraceIDHex + "/" + spanIDDecimal + ";o=1",
			wantTraceID: spantest.TraceIDHex,
			wantSpanID:  spantest.SpanIDHex,
			wantSampled: true,
		},
		{
			name:        "not sampled",
			header:      spantest.TraceIDHex + "/" + spanIDDecimal + ";o=0",
			wantTraceID: spantest.TraceIDHex,
			wantSpanID:  spantest.SpanIDHex,
		},
		{
			name:        "options suffix absent",
			header:      spantest.TraceIDHex + "/" + spanIDDecimal,
			wantTraceID: spantest.TraceIDHex,
			wantSpanID:  spantest.SpanIDHex,
		},
		{
			name:        "uppercase trace id accepted",
			header:      "D4CDA95B652F4A1592B449D5929FDA1B/" + spanIDDecimal + ";o=1",
			wantTraceID: spantest.TraceIDHex,
			wantSpanID:  spantest.SpanIDHex,
			wantSampled: true,
		},
		{
			name:        "small decimal span id",
			header:      spantest.TraceIDHex + "/1;o=0",
			wantTraceID: spantest.TraceIDHex,
			wantSpanID:  "0000000000000001",
		},
		{
			name:        "max span id",
			header:      spantest.TraceIDHex + "/18446744073709551615;o=1",
			wantTraceID: spantest.TraceIDHex,
			wantSpanID:  "ffffffffffffffff",
			wantSampled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carrier := propagation.MapCarrier{TraceContextHeader: tt.header}
			ctx := New().Extract(context.Background(), carrier)

			sc := trace.SpanContextFromContext(ctx)
			if !sc.IsValid() {
				t.Fatalf("extracted span context invalid for header %q", tt.header)
			}
			if got := sc.TraceID().String(); got != tt.wantTraceID {
				t.Errorf("trace id = %q, want %q", got, tt.wantTraceID)
			}
			if got := sc.SpanID().String(); got != tt.wantSpanID {
				t.Errorf("span id = %q, want %q", got, tt.wantSpanID)
			}
			if got := sc.IsSampled(); got != tt.wantSampled {
				t.Errorf("sampled = %v, want %v", got, tt.wantSampled)
			}
			if !sc.IsRemote() {
				t.Error("extracted span context not marked remote")
			}
		})
	}
}

func TestExtract_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"garbage", "not-a-trace-header"},
		{"missing slash", spantest.TraceIDHex + ";o=1"},
		{"trace id too short", "d4cda95b652f4a1592b449d5929fda1/1;o=1"},
		{"trace id too long", spantest.TraceIDHex + "0/1;o=1"},
		{"trace id not hex", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz/1;o=1"},
		{"trace id all zero", "00000000000000000000000000000000/1;o=1"},
		{"span id zero", spantest.TraceIDHex + "/0;o=1"},
		{"span id empty", spantest.TraceIDHex + "/;o=1"},
		{"span id not decimal", spantest.TraceIDHex + "/abc;o=1"},
		{"span id hex form", spantest.TraceIDHex + "/0x12;o=1"},
		{"span id negative", spantest.TraceIDHex + "/-1;o=1"},
		{"span id signed positive", spantest.TraceIDHex + "/+1;o=1"},
		{"span id overflows uint64", spantest.TraceIDHex + "/18446744073709551616;o=1"},
		{"options not zero or one", spantest.TraceIDHex + "/1;o=2"},
		{"options empty", spantest.TraceIDHex + "/1;o="},
		{"options wrong key", spantest.TraceIDHex + "/1;sampled=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carrier := propagation.MapCarrier{TraceContextHeader: tt.header}
			ctx := context.Background()

			got := New().Extract(ctx, carrier)

			if got != ctx {
				t.Errorf("context replaced for header %q", tt.header)
			}
		})
	}
}

func TestExtract_MissingHeader(t *testing.T) {
	ctx := context.Background()

	got := New().Extract(ctx, propagation.MapCarrier{})

	if got != ctx {
		t.Error("context replaced for empty carrier")
	}
}

func TestExtract_MalformedKeepsExistingSpanContext(t *testing.T) {
	ctx := contextWithSpan(t, true)
	carrier := propagation.MapCarrier{TraceContextHeader: "garbage"}

	got := New().Extract(ctx, carrier)

	sc := trace.SpanContextFromContext(got)
	if sc.TraceID().String() != spantest.TraceIDHex {
		t.Errorf("trace id = %q, want original %q", sc.TraceID().String(), spantest.TraceIDHex)
	}
}

func TestRoundTrip(t *testing.T) {
	carrier := propagation.MapCarrier{}
	p := New()
	p.Inject(contextWithSpan(t, true), carrier)

	sc := trace.SpanContextFromContext(p.Extract(context.Background(), carrier))

	if sc.TraceID().String() != spantest.TraceIDHex {
		t.Errorf("trace id = %q, want %q", sc.TraceID().String(), spantest.TraceIDHex)
	}
	if sc.SpanID().String() != spantest.SpanIDHex {
		t.Errorf("span id = %q, want %q", sc.SpanID().String(), spantest.SpanIDHex)
	}
	if !sc.IsSampled() {
		t.Error("sampled flag lost in round trip")
	}
	if !sc.IsRemote() {
		t.Error("extracted span context not marked remote")
	}
}

func TestFields(t *testing.T) {
	fields := New().Fields()
	if len(fields) != 1 || fields[0] != TraceContextHeader {
		t.Errorf("Fields() = %v, want [%s]", fields, TraceContextHeader)
	}
}
