package scoringhandlers

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	sharedevents "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/events"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

func newTestHandlers() *Handlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandlers(logger, noop.NewTracerProvider().Tracer("test"))
}

func TestHandleRoundCompleted(t *testing.T) {
	t.Run("tournament round signals a refresh", func(t *testing.T) {
		h := newTestHandlers()
		tid := sharedtypes.TournamentID(7)

		result, err := h.HandleRoundCompleted(context.Background(), &sharedevents.RoundCompletedPayload{
			Round: sharedtypes.Round{ID: 42, TournamentID: &tid},
		})
		require.NoError(t, err)
		require.True(t, result.IsSuccess())
		assert.Equal(t, tid, result.Success.TournamentID)
	})

	t.Run("casual round produces nothing", func(t *testing.T) {
		h := newTestHandlers()

		result, err := h.HandleRoundCompleted(context.Background(), &sharedevents.RoundCompletedPayload{
			Round: sharedtypes.Round{ID: 42},
		})
		require.NoError(t, err)
		require.True(t, result.IsFailure())
		assert.Equal(t, "round outside any tournament", *result.Failure)
	})
}

func TestHandleScorecardImported(t *testing.T) {
	t.Run("import signals a refresh", func(t *testing.T) {
		h := newTestHandlers()

		result, err := h.HandleScorecardImported(context.Background(), &sharedevents.ScorecardImportedPayload{
			TournamentID:    3,
			RoundNumber:     1,
			PlayersImported: 4,
			HolesAdded:      72,
		})
		require.NoError(t, err)
		require.True(t, result.IsSuccess())
		assert.Equal(t, sharedtypes.TournamentID(3), result.Success.TournamentID)
	})

	t.Run("empty import produces nothing", func(t *testing.T) {
		h := newTestHandlers()

		result, err := h.HandleScorecardImported(context.Background(), &sharedevents.ScorecardImportedPayload{
			TournamentID: 3,
			RoundNumber:  1,
		})
		require.NoError(t, err)
		require.True(t, result.IsFailure())
	})
}
