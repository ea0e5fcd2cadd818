package roundservice

import (
	"context"

	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// Service is the round bookkeeping surface: teeing off, recording strokes,
// and bulk scorecard imports.
type Service interface {
	StartRound(ctx context.Context, roundID sharedtypes.RoundID) (*sharedtypes.Round, error)
	RecordScore(ctx context.Context, score *sharedtypes.Score) (*sharedtypes.Score, *sharedtypes.Round, error)
	RecomputeRound(ctx context.Context, roundID sharedtypes.RoundID) (*sharedtypes.Round, error)
	ImportScorecard(ctx context.Context, tournamentID sharedtypes.TournamentID, roundNumber int, data []byte) (*ImportSummary, error)
}

// PlayerSource is the slice of player storage round bookkeeping reads.
type PlayerSource interface {
	GetPlayer(ctx context.Context, id sharedtypes.PlayerID) (*sharedtypes.Player, error)
	GetPlayersByTournament(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]sharedtypes.Player, error)
}

// RecomputeEnqueuer defers round total recomputation to the job queue.
// Bulk imports enqueue instead of recomputing inline so a large upload
// doesn't hold the request open.
type RecomputeEnqueuer interface {
	EnqueueRecompute(ctx context.Context, roundID sharedtypes.RoundID) error
}

// ImportSummary reports what a scorecard upload changed.
type ImportSummary struct {
	PlayersImported int      `json:"players_imported"`
	ScoresRecorded  int      `json:"scores_recorded"`
	SkippedPlayers  []string `json:"skipped_players,omitempty"`
}
