package roundmetrics

import (
	"context"
	"time"

	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RoundMetrics records operational metrics for round bookkeeping.
type RoundMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordHoleScore(ctx context.Context, roundID sharedtypes.RoundID, hole sharedtypes.HoleNumber)
	RecordRoundCompleted(ctx context.Context, roundID sharedtypes.RoundID)
	RecordScorecardImport(ctx context.Context, players int)
}

type otelMetrics struct {
	attempts  metric.Int64Counter
	successes metric.Int64Counter
	failures  metric.Int64Counter
	duration  metric.Float64Histogram
	scores    metric.Int64Counter
	completed metric.Int64Counter
	imports   metric.Int64Counter
}

// NewRoundMetrics builds the OTel-backed implementation on the given meter.
func NewRoundMetrics(meter metric.Meter) (RoundMetrics, error) {
	attempts, err := meter.Int64Counter("round_operation_attempts_total")
	if err != nil {
		return nil, err
	}
	successes, err := meter.Int64Counter("round_operation_successes_total")
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter("round_operation_failures_total")
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("round_operation_duration_seconds")
	if err != nil {
		return nil, err
	}
	scores, err := meter.Int64Counter("round_hole_scores_total")
	if err != nil {
		return nil, err
	}
	completed, err := meter.Int64Counter("round_completed_total")
	if err != nil {
		return nil, err
	}
	imports, err := meter.Int64Counter("round_scorecard_imports_total")
	if err != nil {
		return nil, err
	}
	return &otelMetrics{
		attempts:  attempts,
		successes: successes,
		failures:  failures,
		duration:  duration,
		scores:    scores,
		completed: completed,
		imports:   imports,
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

func (m *otelMetrics) RecordHoleScore(ctx context.Context, _ sharedtypes.RoundID, hole sharedtypes.HoleNumber) {
	m.scores.Add(ctx, 1, metric.WithAttributes(attribute.Int("hole", int(hole))))
}

func (m *otelMetrics) RecordRoundCompleted(ctx context.Context, _ sharedtypes.RoundID) {
	m.completed.Add(ctx, 1)
}

func (m *otelMetrics) RecordScorecardImport(ctx context.Context, players int) {
	m.imports.Add(ctx, 1, metric.WithAttributes(attribute.Int("players", players)))
}

// NoOpMetrics satisfies RoundMetrics without recording anything.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                        {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                        {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                        {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration)       {}
func (NoOpMetrics) RecordHoleScore(context.Context, sharedtypes.RoundID, sharedtypes.HoleNumber) {
}
func (NoOpMetrics) RecordRoundCompleted(context.Context, sharedtypes.RoundID) {}
func (NoOpMetrics) RecordScorecardImport(context.Context, int)                {}
