package telemetry

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Forward outcomes
const (
	OutcomeSuccess     = "success"
	OutcomeRejected    = "rejected"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeInvalid     = "invalid_response"
)

// RelayMetrics tracks inbound requests and outbound platform calls.
type RelayMetrics struct {
	forwardTotal    *Counter
	forwardDuration *Histogram
	requestTotal    *Counter
	requestDuration *Histogram
}

// NewRelayMetrics registers the relay instruments on meter.
func NewRelayMetrics(meter metric.Meter) (*RelayMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	m := &RelayMetrics{}
	var err error

	if m.forwardTotal, err = NewCounter(meter,
		"relay_forward_total",
		"Outbound calls to downstream platforms",
		"{call}",
	); err != nil {
		return nil, err
	}
	if m.forwardDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "relay_forward_duration_seconds",
		Description: "Outbound platform call latency",
		Unit:        "s",
		Boundaries:  HTTPDurationBuckets,
	}); err != nil {
		return nil, err
	}
	if m.requestTotal, err = NewCounter(meter,
		"relay_http_requests_total",
		"Inbound relay API requests",
		"{request}",
	); err != nil {
		return nil, err
	}
	if m.requestDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "relay_http_request_duration_seconds",
		Description: "Inbound relay API request latency",
		Unit:        "s",
		Boundaries:  HTTPDurationBuckets,
	}); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordForward records one outbound platform call. Safe on a nil receiver.
func (m *RelayMetrics) RecordForward(ctx context.Context, platform, operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.forwardTotal.Inc(ctx,
		AttrPlatform.String(platform),
		AttrOperation.String(operation),
		AttrOutcome.String(outcome),
	)
	m.forwardDuration.RecordDuration(ctx, d,
		AttrPlatform.String(platform),
		AttrOperation.String(operation),
	)
}

// RecordRequest records one inbound request. Safe on a nil receiver.
func (m *RelayMetrics) RecordRequest(ctx context.Context, method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestTotal.Inc(ctx,
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatusCode.String(strconv.Itoa(status)),
	)
	m.requestDuration.RecordDuration(ctx, d,
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
	)
}
