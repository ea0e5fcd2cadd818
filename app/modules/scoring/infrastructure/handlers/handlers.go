// Package scoringhandlers holds the event handlers feeding standings
// consumers. Each handler turns an upstream event into a leaderboard
// refresh signal, or declines when the event carries no tournament.
package scoringhandlers

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	sharedevents "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/events"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/results"
)

// RefreshResult is the outcome of one standings handler invocation. The
// failure payload is the reason the event produced no refresh.
type RefreshResult = results.OperationResult[sharedevents.LeaderboardUpdatedPayload, string]

type Handlers struct {
	logger *slog.Logger
	tracer trace.Tracer
}

func NewHandlers(logger *slog.Logger, tracer trace.Tracer) *Handlers {
	return &Handlers{logger: logger, tracer: tracer}
}

// HandleRoundCompleted refreshes standings for the tournament the finished
// round belongs to. Casual rounds outside a tournament produce nothing.
func (h *Handlers) HandleRoundCompleted(ctx context.Context, payload *sharedevents.RoundCompletedPayload) (RefreshResult, error) {
	ctx, span := h.tracer.Start(ctx, "HandleRoundCompleted")
	defer span.End()

	if payload.Round.TournamentID == nil {
		return results.FailureResult[sharedevents.LeaderboardUpdatedPayload, string]("round outside any tournament"), nil
	}

	h.logger.InfoContext(ctx, "Round completed, refreshing standings",
		attr.ExtractCorrelationID(ctx),
		attr.RoundID("round_id", payload.Round.ID),
		attr.TournamentID("tournament_id", *payload.Round.TournamentID),
	)

	return results.SuccessResult[sharedevents.LeaderboardUpdatedPayload, string](
		sharedevents.LeaderboardUpdatedPayload{TournamentID: *payload.Round.TournamentID},
	), nil
}

// HandleScorecardImported refreshes standings after a bulk import.
func (h *Handlers) HandleScorecardImported(ctx context.Context, payload *sharedevents.ScorecardImportedPayload) (RefreshResult, error) {
	ctx, span := h.tracer.Start(ctx, "HandleScorecardImported")
	defer span.End()

	if payload.PlayersImported == 0 {
		return results.FailureResult[sharedevents.LeaderboardUpdatedPayload, string]("import added no players"), nil
	}

	h.logger.InfoContext(ctx, "Scorecard imported, refreshing standings",
		attr.ExtractCorrelationID(ctx),
		attr.TournamentID("tournament_id", payload.TournamentID),
		attr.Int("players_imported", payload.PlayersImported),
	)

	return results.SuccessResult[sharedevents.LeaderboardUpdatedPayload, string](
		sharedevents.LeaderboardUpdatedPayload{TournamentID: payload.TournamentID},
	), nil
}
