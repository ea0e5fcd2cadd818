package tournamentmetrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// TournamentMetrics records operational metrics for tournament management.
type TournamentMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordPlayerRegistered(ctx context.Context, preCreatedRounds int)
}

type otelMetrics struct {
	attempts    metric.Int64Counter
	successes   metric.Int64Counter
	failures    metric.Int64Counter
	duration    metric.Float64Histogram
	registered  metric.Int64Counter
	roundsMade  metric.Int64Counter
}

func NewTournamentMetrics(meter metric.Meter) (TournamentMetrics, error) {
	attempts, err := meter.Int64Counter("tournament_operation_attempts_total")
	if err != nil {
		return nil, err
	}
	successes, err := meter.Int64Counter("tournament_operation_successes_total")
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter("tournament_operation_failures_total")
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("tournament_operation_duration_seconds")
	if err != nil {
		return nil, err
	}
	registered, err := meter.Int64Counter("tournament_players_registered_total")
	if err != nil {
		return nil, err
	}
	roundsMade, err := meter.Int64Counter("tournament_rounds_precreated_total")
	if err != nil {
		return nil, err
	}
	return &otelMetrics{
		attempts:   attempts,
		successes:  successes,
		failures:   failures,
		duration:   duration,
		registered: registered,
		roundsMade: roundsMade,
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

func (m *otelMetrics) RecordPlayerRegistered(ctx context.Context, preCreatedRounds int) {
	m.registered.Add(ctx, 1)
	m.roundsMade.Add(ctx, int64(preCreatedRounds))
}

// NoOpMetrics satisfies TournamentMetrics without recording anything. Used
// in unit tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordPlayerRegistered(context.Context, int)                    {}
