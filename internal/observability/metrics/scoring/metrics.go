package scoringmetrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScoringMetrics records operational metrics for the scoring engine.
type ScoringMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordSkinsCarryOver(ctx context.Context, holes int)
	RecordPlayersRanked(ctx context.Context, operation string, count int)
}

type otelMetrics struct {
	attempts  metric.Int64Counter
	successes metric.Int64Counter
	failures  metric.Int64Counter
	duration  metric.Float64Histogram
	carryOver metric.Int64Counter
	ranked    metric.Int64Histogram
}

// NewScoringMetrics builds the OTel-backed implementation on the given meter.
func NewScoringMetrics(meter metric.Meter) (ScoringMetrics, error) {
	attempts, err := meter.Int64Counter("scoring_operation_attempts_total")
	if err != nil {
		return nil, err
	}
	successes, err := meter.Int64Counter("scoring_operation_successes_total")
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter("scoring_operation_failures_total")
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("scoring_operation_duration_seconds")
	if err != nil {
		return nil, err
	}
	carryOver, err := meter.Int64Counter("scoring_skins_carryover_holes_total")
	if err != nil {
		return nil, err
	}
	ranked, err := meter.Int64Histogram("scoring_players_ranked")
	if err != nil {
		return nil, err
	}
	return &otelMetrics{
		attempts:  attempts,
		successes: successes,
		failures:  failures,
		duration:  duration,
		carryOver: carryOver,
		ranked:    ranked,
	}, nil
}

func opAttr(operation string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("operation", operation))
}

func (m *otelMetrics) RecordOperationAttempt(ctx context.Context, operation string) {
	m.attempts.Add(ctx, 1, opAttr(operation))
}

func (m *otelMetrics) RecordOperationSuccess(ctx context.Context, operation string) {
	m.successes.Add(ctx, 1, opAttr(operation))
}

func (m *otelMetrics) RecordOperationFailure(ctx context.Context, operation string) {
	m.failures.Add(ctx, 1, opAttr(operation))
}

func (m *otelMetrics) RecordOperationDuration(ctx context.Context, operation string, duration time.Duration) {
	m.duration.Record(ctx, duration.Seconds(), opAttr(operation))
}

func (m *otelMetrics) RecordSkinsCarryOver(ctx context.Context, holes int) {
	m.carryOver.Add(ctx, int64(holes))
}

func (m *otelMetrics) RecordPlayersRanked(ctx context.Context, operation string, count int) {
	m.ranked.Record(ctx, int64(count), opAttr(operation))
}

// NoOpMetrics satisfies ScoringMetrics without recording anything. Used in
// unit tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordSkinsCarryOver(context.Context, int)                     {}
func (NoOpMetrics) RecordPlayersRanked(context.Context, string, int)              {}
