package cloudtrace

import (
	"math"

	"cloud.google.com/go/trace/apiv2/tracepb"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	codepb "google.golang.org/genproto/googleapis/rpc/code"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// transformer returns the function that maps SDK spans to Cloud Trace
// wire spans belonging to the given project.
func transformer(projectID string) func(sdktrace.ReadOnlySpan) *tracepb.Span {
	return func(s sdktrace.ReadOnlySpan) *tracepb.Span {
		sc := s.SpanContext()
		pb := &tracepb.Span{
			Name:                    spanName(projectID, sc),
			SpanId:                  sc.SpanID().String(),
			DisplayName:             truncatableString(s.Name()),
			StartTime:               timestamppb.New(s.StartTime()),
			EndTime:                 timestamppb.New(s.EndTime()),
			Attributes:              spanAttributes(s),
			TimeEvents:              timeEvents(s),
			Links:                   links(s),
			Status:                  spanStatus(s.Status()),
			SameProcessAsParentSpan: wrapperspb.Bool(!s.Parent().IsRemote()),
			SpanKind:                spanKind(s.SpanKind()),
		}
		if s.Parent().SpanID().IsValid() {
			pb.ParentSpanId = s.Parent().SpanID().String()
		}
		return pb
	}
}

// spanName builds the fully qualified Cloud Trace resource name for a
// span, projects/{project}/traces/{trace_id}/spans/{span_id}.
func spanName(projectID string, sc trace.SpanContext) string {
	return "projects/" + projectID + "/traces/" + sc.TraceID().String() + "/spans/" + sc.SpanID().String()
}

func truncatableString(s string) *tracepb.TruncatableString {
	return &tracepb.TruncatableString{Value: s}
}

// spanAttributes merges span attributes, the agent label, and resource
// attributes into one wire map. Later sources win on key collisions,
// so resource attributes take the highest precedence.
func spanAttributes(s sdktrace.ReadOnlySpan) *tracepb.Span_Attributes {
	attrs := s.Attributes()
	merged := make(map[attribute.Key]attribute.Value, len(attrs)+1)
	for _, kv := range attrs {
		merged[kv.Key] = kv.Value
	}
	merged[agentLabel] = attribute.StringValue(agentValue())
	for iter := s.Resource().Iter(); iter.Next(); {
		kv := iter.Attribute()
		merged[kv.Key] = kv.Value
	}
	return attributeMap(merged, 0)
}

// ownAttributes maps an annotation's or link's own attributes. Neither
// the agent label nor resource attributes participate.
func ownAttributes(attrs []attribute.KeyValue, recordedDropped int) *tracepb.Span_Attributes {
	merged := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, kv := range attrs {
		merged[kv.Key] = kv.Value
	}
	return attributeMap(merged, recordedDropped)
}

// attributeMap converts merged attributes to the wire map. Keys whose
// values have no Cloud Trace representation are dropped and counted.
func attributeMap(merged map[attribute.Key]attribute.Value, recordedDropped int) *tracepb.Span_Attributes {
	out := make(map[string]*tracepb.AttributeValue, len(merged))
	for k, v := range merged {
		if av := attributeValue(v); av != nil {
			out[string(k)] = av
		}
	}
	return &tracepb.Span_Attributes{
		AttributeMap:           out,
		DroppedAttributesCount: int32(len(merged) - len(out) + recordedDropped),
	}
}

// attributeValue maps a single value to its Cloud Trace form. Floats
// are rounded to the nearest integer because the wire format has no
// floating point variant. Unsupported types, slices included, yield
// nil.
func attributeValue(v attribute.Value) *tracepb.AttributeValue {
	switch v.Type() {
	case attribute.BOOL:
		return &tracepb.AttributeValue{
			Value: &tracepb.AttributeValue_BoolValue{BoolValue: v.AsBool()},
		}
	case attribute.INT64:
		return &tracepb.AttributeValue{
			Value: &tracepb.AttributeValue_IntValue{IntValue: v.AsInt64()},
		}
	case attribute.FLOAT64:
		return &tracepb.AttributeValue{
			Value: &tracepb.AttributeValue_IntValue{IntValue: int64(math.Round(v.AsFloat64()))},
		}
	case attribute.STRING:
		return &tracepb.AttributeValue{
			Value: &tracepb.AttributeValue_StringValue{StringValue: truncatableString(v.AsString())},
		}
	default:
		return nil
	}
}

// timeEvents maps span events to Cloud Trace annotations. The
// container is always present, even for spans without events.
func timeEvents(s sdktrace.ReadOnlySpan) *tracepb.Span_TimeEvents {
	events := s.Events()
	out := make([]*tracepb.Span_TimeEvent, 0, len(events))
	for _, e := range events {
		out = append(out, &tracepb.Span_TimeEvent{
			Time: timestamppb.New(e.Time),
			Value: &tracepb.Span_TimeEvent_Annotation_{
				Annotation: &tracepb.Span_TimeEvent_Annotation{
					Description: truncatableString(e.Name),
					Attributes:  ownAttributes(e.Attributes, e.DroppedAttributeCount),
				},
			},
		})
	}
	return &tracepb.Span_TimeEvents{
		TimeEvent:               out,
		DroppedAnnotationsCount: int32(s.DroppedEvents()),
	}
}

// links maps span links. Cloud Trace cannot tell parent from child
// links apart here, so every link is typed unspecified. The container
// is always present, even for spans without links.
func links(s sdktrace.ReadOnlySpan) *tracepb.Span_Links {
	ls := s.Links()
	out := make([]*tracepb.Span_Link, 0, len(ls))
	for _, l := range ls {
		out = append(out, &tracepb.Span_Link{
			TraceId:    l.SpanContext.TraceID().String(),
			SpanId:     l.SpanContext.SpanID().String(),
			Type:       tracepb.Span_Link_TYPE_UNSPECIFIED,
			Attributes: ownAttributes(l.Attributes, l.DroppedAttributeCount),
		})
	}
	return &tracepb.Span_Links{
		Link:              out,
		DroppedLinksCount: int32(s.DroppedLinks()),
	}
}

// spanStatus is always present on the wire. Cloud Trace has no unset
// state, so anything other than an error maps to OK.
func spanStatus(st sdktrace.Status) *statuspb.Status {
	if st.Code == codes.Error {
		return &statuspb.Status{
			Code:    int32(codepb.Code_UNKNOWN),
			Message: st.Description,
		}
	}
	return &statuspb.Status{Code: int32(codepb.Code_OK)}
}

func spanKind(k trace.SpanKind) tracepb.Span_SpanKind {
	switch k {
	case trace.SpanKindInternal:
		return tracepb.Span_INTERNAL
	case trace.SpanKindServer:
		return tracepb.Span_SERVER
	case trace.SpanKindClient:
		return tracepb.Span_CLIENT
	case trace.SpanKindProducer:
		return tracepb.Span_PRODUCER
	case trace.SpanKindConsumer:
		return tracepb.Span_CONSUMER
	default:
		return tracepb.Span_SPAN_KIND_UNSPECIFIED
	}
}

// droppedAttributes sums the dropped attribute counts recorded across
// a wire span, its annotations, and its links.
func droppedAttributes(pb *tracepb.Span) int {
	n := 0
	if pb.Attributes != nil {
		n += int(pb.Attributes.DroppedAttributesCount)
	}
	if pb.TimeEvents != nil {
		for _, te := range pb.TimeEvents.TimeEvent {
			if a := te.GetAnnotation(); a != nil && a.Attributes != nil {
				n += int(a.Attributes.DroppedAttributesCount)
			}
		}
	}
	if pb.Links != nil {
		for _, l := range pb.Links.Link {
			if l.Attributes != nil {
				n += int(l.Attributes.DroppedAttributesCount)
			}
		}
	}
	return n
}
