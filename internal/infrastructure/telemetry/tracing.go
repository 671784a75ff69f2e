package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the tracer used for relay spans
const TracerName = "supplier-relay"

// Span attribute keys for relay spans
const (
	SpanAttrPlatform   = "relay.platform"
	SpanAttrOperation  = "relay.operation"
	SpanAttrSupplierID = "relay.supplier_id"
)

// StartClientSpan starts a client span for a call to a downstream platform.
// The caller must end the span.
//
//	ctx, span := telemetry.StartClientSpan(ctx, "supplier_portal", "submit_order")
//	defer span.End()
func StartClientSpan(ctx context.Context, platform, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String(SpanAttrPlatform, platform),
		attribute.String(SpanAttrOperation, operation),
	)
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx, platform+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// RecordError records err on the span and marks it failed
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetOK marks the span as successful
func SetOK(span trace.Span) {
	if span == nil {
		return
	}
	span.SetStatus(codes.Ok, "")
}

// GetTraceID returns the trace ID of the span in ctx, or "" when there is none.
func GetTraceID(ctx context.Context) string {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
