package roundservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	rounddb "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/infrastructure/repositories"
	sharedevents "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/events"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/eventbus"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
	roundmetrics "github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/metrics/round"
)

const holesPerRound = 18

// RoundService keeps round records in step with their scores.
type RoundService struct {
	repo     rounddb.RoundDB
	players  PlayerSource
	enqueuer RecomputeEnqueuer
	eventBus eventbus.EventBus
	logger   *slog.Logger
	metrics  roundmetrics.RoundMetrics
	tracer   trace.Tracer
}

func NewRoundService(
	repo rounddb.RoundDB,
	players PlayerSource,
	enqueuer RecomputeEnqueuer,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics roundmetrics.RoundMetrics,
	tracer trace.Tracer,
) Service {
	return &RoundService{
		repo:     repo,
		players:  players,
		enqueuer: enqueuer,
		eventBus: eventBus,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
	}
}

func (s *RoundService) instrument(ctx context.Context, operation string) (context.Context, func(err *error)) {
	ctx, span := s.tracer.Start(ctx, operation, trace.WithAttributes(
		attribute.String("operation", operation),
	))
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, operation)

	finish := func(err *error) {
		s.metrics.RecordOperationDuration(ctx, operation, time.Since(start))
		if *err != nil {
			s.metrics.RecordOperationFailure(ctx, operation)
			span.RecordError(*err)
		} else {
			s.metrics.RecordOperationSuccess(ctx, operation)
		}
		span.End()
	}
	return ctx, finish
}

// StartRound marks a pre-created round as underway on hole 1.
func (s *RoundService) StartRound(ctx context.Context, roundID sharedtypes.RoundID) (round *sharedtypes.Round, err error) {
	ctx, finish := s.instrument(ctx, "StartRound")
	defer finish(&err)

	existing, err := s.repo.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		err = ErrRoundNotFound
		return nil, err
	}

	started := true
	firstHole := 1
	round, err = s.repo.UpdateRound(ctx, roundID, rounddb.RoundUpdate{
		IsStarted:   &started,
		CurrentHole: &firstHole,
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Round started",
		attr.ExtractCorrelationID(ctx),
		attr.RoundID("round_id", roundID),
		attr.String("course", round.CourseName),
	)

	payload := sharedevents.RoundStartedPayload{Round: *round}
	if pubErr := s.eventBus.Publish(ctx, sharedevents.RoundStarted, payload); pubErr != nil {
		s.logger.WarnContext(ctx, "Failed to publish round started event",
			attr.ExtractCorrelationID(ctx), attr.Error(pubErr))
	}
	return round, nil
}

// RecordScore records one hole and recomputes the round's aggregates
// inline. Resubmitting a hole overwrites the earlier stroke count; the
// published event carries the replaced strokes.
func (s *RoundService) RecordScore(ctx context.Context, score *sharedtypes.Score) (recorded *sharedtypes.Score, round *sharedtypes.Round, err error) {
	ctx, finish := s.instrument(ctx, "RecordScore")
	defer finish(&err)

	if score.RoundID == nil {
		err = ErrScoreMissingRound
		return nil, nil, err
	}
	if score.Hole < 1 || score.Hole > holesPerRound {
		err = fmt.Errorf("%w: %d", ErrInvalidHole, score.Hole)
		return nil, nil, err
	}
	if score.Strokes < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidStrokes, score.Strokes)
		return nil, nil, err
	}

	existing, err := s.repo.GetRound(ctx, *score.RoundID)
	if err != nil {
		return nil, nil, err
	}
	if existing == nil {
		err = ErrRoundNotFound
		return nil, nil, err
	}
	wasComplete := existing.IsComplete

	previous, err := s.repo.GetScoreByRoundHole(ctx, *score.RoundID, score.Hole)
	if err != nil {
		return nil, nil, err
	}

	recorded, err = s.repo.UpsertScore(ctx, score)
	if err != nil {
		return nil, nil, err
	}
	s.metrics.RecordHoleScore(ctx, *score.RoundID, score.Hole)

	round, err = s.recompute(ctx, existing)
	if err != nil {
		return nil, nil, err
	}

	s.logger.InfoContext(ctx, "Score recorded",
		attr.ExtractCorrelationID(ctx),
		attr.RoundID("round_id", *score.RoundID),
		attr.Hole("hole", score.Hole),
		attr.Int("strokes", int(score.Strokes)),
	)

	payload := sharedevents.ScoreRecordedPayload{Score: *recorded, Round: *round}
	if previous != nil {
		payload.PreviousStrokes = &previous.Strokes
	}
	if pubErr := s.eventBus.Publish(ctx, sharedevents.ScoreRecorded, payload); pubErr != nil {
		s.logger.WarnContext(ctx, "Failed to publish score recorded event",
			attr.ExtractCorrelationID(ctx), attr.Error(pubErr))
	}

	if round.IsComplete && !wasComplete {
		s.metrics.RecordRoundCompleted(ctx, round.ID)
		completed := sharedevents.RoundCompletedPayload{Round: *round}
		if pubErr := s.eventBus.Publish(ctx, sharedevents.RoundCompleted, completed); pubErr != nil {
			s.logger.WarnContext(ctx, "Failed to publish round completed event",
				attr.ExtractCorrelationID(ctx), attr.Error(pubErr))
		}
	}

	if round.TournamentID != nil {
		updated := sharedevents.LeaderboardUpdatedPayload{TournamentID: *round.TournamentID}
		if pubErr := s.eventBus.Publish(ctx, sharedevents.LeaderboardUpdated, updated); pubErr != nil {
			s.logger.WarnContext(ctx, "Failed to publish leaderboard updated event",
				attr.ExtractCorrelationID(ctx), attr.Error(pubErr))
		}
	}

	return recorded, round, nil
}

// RecomputeRound rebuilds a round's aggregates from its stored scores. The
// job queue worker calls this after bulk imports.
func (s *RoundService) RecomputeRound(ctx context.Context, roundID sharedtypes.RoundID) (round *sharedtypes.Round, err error) {
	ctx, finish := s.instrument(ctx, "RecomputeRound")
	defer finish(&err)

	existing, err := s.repo.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		err = ErrRoundNotFound
		return nil, err
	}
	wasComplete := existing.IsComplete

	round, err = s.recompute(ctx, existing)
	if err != nil {
		return nil, err
	}

	if round.IsComplete && !wasComplete {
		s.metrics.RecordRoundCompleted(ctx, round.ID)
		completed := sharedevents.RoundCompletedPayload{Round: *round}
		if pubErr := s.eventBus.Publish(ctx, sharedevents.RoundCompleted, completed); pubErr != nil {
			s.logger.WarnContext(ctx, "Failed to publish round completed event",
				attr.ExtractCorrelationID(ctx), attr.Error(pubErr))
		}
	}
	return round, nil
}

// recompute derives gross, net, completion, and hole progress from the
// round's scores. Net uses the player's full handicap; per-hole stroke
// allocation is the scoring engine's concern, not the round ledger's.
func (s *RoundService) recompute(ctx context.Context, round *sharedtypes.Round) (*sharedtypes.Round, error) {
	scores, err := s.repo.GetScoresByRound(ctx, round.ID)
	if err != nil {
		return nil, err
	}

	gross := 0
	for _, sc := range scores {
		gross += int(sc.Strokes)
	}

	net := gross
	if round.PlayerID != nil {
		player, err := s.players.GetPlayer(ctx, *round.PlayerID)
		if err != nil {
			return nil, err
		}
		if player != nil {
			net = gross - int(player.Handicap)
		}
	}

	complete := len(scores) == holesPerRound
	currentHole := len(scores) + 1
	if currentHole > holesPerRound {
		currentHole = holesPerRound
	}

	return s.repo.UpdateRound(ctx, round.ID, rounddb.RoundUpdate{
		GrossScore:  &gross,
		NetScore:    &net,
		IsComplete:  &complete,
		CurrentHole: &currentHole,
	})
}
