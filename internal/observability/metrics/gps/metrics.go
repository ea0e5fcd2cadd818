package gpsmetrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// GPSMetrics records operational metrics for distance lookups.
type GPSMetrics interface {
	RecordLookupAttempt(ctx context.Context, course string)
	RecordLookupSuccess(ctx context.Context, course string)
	RecordLookupMiss(ctx context.Context, course string)
	RecordLookupDuration(ctx context.Context, duration time.Duration)
}

type otelMetrics struct {
	attempts metric.Int64Counter
	hits     metric.Int64Counter
	misses   metric.Int64Counter
	duration metric.Float64Histogram
}

// NewGPSMetrics builds the OTel-backed implementation on the given meter.
func NewGPSMetrics(meter metric.Meter) (GPSMetrics, error) {
	attempts, err := meter.Int64Counter("gps_lookup_attempts_total")
	if err != nil {
		return nil, err
	}
	hits, err := meter.Int64Counter("gps_lookup_hits_total")
	if err != nil {
		return nil, err
	}
	misses, err := meter.Int64Counter("gps_lookup_misses_total")
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("gps_lookup_duration_seconds")
	if err != nil {
		return nil, err
	}
	return &otelMetrics{attempts: attempts, hits: hits, misses: misses, duration: duration}, nil
}

func courseAttr(course string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("course", course))
}

func (m *otelMetrics) RecordLookupAttempt(ctx context.Context, course string) {
	m.attempts.Add(ctx, 1, courseAttr(course))
}

func (m *otelMetrics) RecordLookupSuccess(ctx context.Context, course string) {
	m.hits.Add(ctx, 1, courseAttr(course))
}

func (m *otelMetrics) RecordLookupMiss(ctx context.Context, course string) {
	m.misses.Add(ctx, 1, courseAttr(course))
}

func (m *otelMetrics) RecordLookupDuration(ctx context.Context, duration time.Duration) {
	m.duration.Record(ctx, duration.Seconds())
}

// NoOpMetrics satisfies GPSMetrics without recording anything.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordLookupAttempt(context.Context, string)         {}
func (NoOpMetrics) RecordLookupSuccess(context.Context, string)         {}
func (NoOpMetrics) RecordLookupMiss(context.Context, string)            {}
func (NoOpMetrics) RecordLookupDuration(context.Context, time.Duration) {}
