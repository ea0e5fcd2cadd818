package roundqueue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riverqueue/river"

	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
)

// Recomputer is the slice of the round service the worker needs.
type Recomputer interface {
	RecomputeRound(ctx context.Context, roundID sharedtypes.RoundID) (*sharedtypes.Round, error)
}

// RecomputeRoundWorker processes RecomputeRoundJob jobs.
type RecomputeRoundWorker struct {
	river.WorkerDefaults[RecomputeRoundJob]
	logger     *slog.Logger
	recomputer Recomputer
}

func NewRecomputeRoundWorker(logger *slog.Logger, recomputer Recomputer) *RecomputeRoundWorker {
	return &RecomputeRoundWorker{
		logger:     logger,
		recomputer: recomputer,
	}
}

func (w *RecomputeRoundWorker) Work(ctx context.Context, job *river.Job[RecomputeRoundJob]) error {
	w.logger.InfoContext(ctx, "Recomputing round totals",
		attr.RoundID("round_id", job.Args.RoundID),
		attr.Int("attempt", job.Attempt),
	)

	round, err := w.recomputer.RecomputeRound(ctx, job.Args.RoundID)
	if err != nil {
		w.logger.ErrorContext(ctx, "Round recompute failed",
			attr.RoundID("round_id", job.Args.RoundID),
			attr.Error(err),
		)
		return fmt.Errorf("failed to recompute round %d: %w", job.Args.RoundID, err)
	}

	w.logger.InfoContext(ctx, "Round totals recomputed",
		attr.RoundID("round_id", round.ID),
		attr.Bool("is_complete", round.IsComplete),
	)
	return nil
}
