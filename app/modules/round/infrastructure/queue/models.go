package roundqueue

import (
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// RecomputeRoundJob rebuilds one round's aggregates from its stored scores.
// Bulk scorecard imports enqueue one per touched round.
type RecomputeRoundJob struct {
	RoundID sharedtypes.RoundID `json:"round_id"`
}

// Kind returns the job type identifier for River.
func (RecomputeRoundJob) Kind() string { return "round_recompute" }
