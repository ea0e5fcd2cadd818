package scoringservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	scoringdomain "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/domain"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
	scoringmetrics "github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/metrics/scoring"
)

// ScoringService computes leaderboards, skins games, and Stableford
// standings from stored tournament data. It owns no state of its own.
type ScoringService struct {
	tournaments TournamentReader
	players     PlayerReader
	rounds      RoundReader
	scores      ScoreReader
	courses     scoringdomain.Catalog
	logger      *slog.Logger
	metrics     scoringmetrics.ScoringMetrics
	tracer      trace.Tracer
}

// NewScoringService wires the scoring engine onto its storage readers.
func NewScoringService(
	tournaments TournamentReader,
	players PlayerReader,
	rounds RoundReader,
	scores ScoreReader,
	courses scoringdomain.Catalog,
	logger *slog.Logger,
	metrics scoringmetrics.ScoringMetrics,
	tracer trace.Tracer,
) Service {
	return &ScoringService{
		tournaments: tournaments,
		players:     players,
		rounds:      rounds,
		scores:      scores,
		courses:     courses,
		logger:      logger,
		metrics:     metrics,
		tracer:      tracer,
	}
}

// serviceWrapper runs a scoring computation inside a span with metrics and
// panic recovery, so every operation reports attempts, failures, and latency
// the same way.
func serviceWrapper[T any](
	ctx context.Context,
	s *ScoringService,
	operationName string,
	tournamentID sharedtypes.TournamentID,
	serviceFunc func(ctx context.Context) (T, error),
) (result T, err error) {
	if serviceFunc == nil {
		return result, errors.New("service function is nil")
	}

	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.Int64("tournament_id", int64(tournamentID)),
	))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			s.metrics.RecordOperationFailure(ctx, operationName)
			s.logger.ErrorContext(ctx, "Panic in scoring operation",
				attr.ExtractCorrelationID(ctx),
				attr.String("operation", operationName),
				attr.Any("panic", r),
			)
			err = fmt.Errorf("panic in %s: %v", operationName, r)
		}
	}()

	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(start))
	}()

	s.metrics.RecordOperationAttempt(ctx, operationName)
	s.logger.InfoContext(ctx, "Scoring operation triggered",
		attr.ExtractCorrelationID(ctx),
		attr.String("operation", operationName),
		attr.TournamentID("tournament_id", tournamentID),
	)

	result, err = serviceFunc(ctx)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(err)
		s.logger.ErrorContext(ctx, "Scoring operation failed",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Error(err),
		)
		return result, err
	}

	s.metrics.RecordOperationSuccess(ctx, operationName)
	return result, nil
}

// lookupTournament fetches the tournament and normalizes the not-found case.
func (s *ScoringService) lookupTournament(ctx context.Context, id sharedtypes.TournamentID) (*sharedtypes.Tournament, error) {
	tournament, err := s.tournaments.GetTournament(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	if tournament == nil {
		return nil, ErrTournamentNotFound
	}
	return tournament, nil
}
