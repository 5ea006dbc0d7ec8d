package metrics

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Page renders are template work; upstream calls cross the network and are
// bounded by the 10s client timeout.
var (
	requestBucketsMs  = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500}
	upstreamBucketsMs = []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000}
)

type otelInstruments struct {
	requests          metric.Int64Counter
	requestLatencyMs  metric.Float64Histogram
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	outcomes          metric.Int64Counter
}

type counterSpec struct {
	dst         *metric.Int64Counter
	name        string
	description string
}

type histogramSpec struct {
	dst         *metric.Float64Histogram
	name        string
	description string
	buckets     []float64
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)
	inst := &otelInstruments{}

	counters := []counterSpec{
		{&inst.requests, "http_requests_total", "Pages and assets served, by method, path and status."},
		{&inst.providerAttempts, "provider_attempts_total", "Score API fetches, by provider."},
		{&inst.providerErrors, "provider_errors_total", "Failed score API fetches, by provider."},
		{&inst.outcomes, "result_outcomes_total", "How each results page resolved, by route and outcome."},
	}
	for _, spec := range counters {
		c, err := meter.Int64Counter(spec.name, metric.WithDescription(spec.description))
		if err != nil {
			return nil, err
		}
		*spec.dst = c
	}

	histograms := []histogramSpec{
		{&inst.requestLatencyMs, "http_request_duration_ms", "Time to serve a request.", requestBucketsMs},
		{&inst.providerLatencyMs, "provider_duration_ms", "Time spent waiting on the score API.", upstreamBucketsMs},
	}
	for _, spec := range histograms {
		h, err := meter.Float64Histogram(spec.name,
			metric.WithUnit("ms"),
			metric.WithDescription(spec.description),
			metric.WithExplicitBucketBoundaries(spec.buckets...),
		)
		if err != nil {
			return nil, err
		}
		*spec.dst = h
	}

	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.String(AttrStatus, strconv.Itoa(status)),
	)
	ctx := context.Background()
	o.requests.Add(ctx, 1, attrs)
	o.requestLatencyMs.Record(ctx, millis(duration), attrs)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrProvider, provider))
	ctx := context.Background()
	o.providerAttempts.Add(ctx, 1, attrs)
	o.providerLatencyMs.Record(ctx, millis(duration), attrs)
	if err != nil {
		o.providerErrors.Add(ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordOutcome(route, outcome string) {
	if o == nil {
		return
	}
	o.outcomes.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String(AttrRoute, route),
		attribute.String(AttrOutcome, outcome),
	))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
