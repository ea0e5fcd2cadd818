package rounddb

import (
	"context"

	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// RoundUpdate carries the aggregate fields recomputed after score changes.
// Nil fields are left untouched.
type RoundUpdate struct {
	GrossScore  *int
	NetScore    *int
	IsComplete  *bool
	IsStarted   *bool
	CurrentHole *int
}

// RoundDB is the storage surface for rounds and per-hole scores. Get methods
// return nil without error when the row is absent.
type RoundDB interface {
	CreateRound(ctx context.Context, round *sharedtypes.Round) (*sharedtypes.Round, error)
	GetRound(ctx context.Context, id sharedtypes.RoundID) (*sharedtypes.Round, error)
	GetRoundsByPlayer(ctx context.Context, playerID sharedtypes.PlayerID) ([]sharedtypes.Round, error)
	GetRoundsByTournamentRound(ctx context.Context, tournamentID sharedtypes.TournamentID, roundNumber int) ([]sharedtypes.Round, error)
	UpdateRound(ctx context.Context, id sharedtypes.RoundID, update RoundUpdate) (*sharedtypes.Round, error)

	UpsertScore(ctx context.Context, score *sharedtypes.Score) (*sharedtypes.Score, error)
	GetScoresByRound(ctx context.Context, roundID sharedtypes.RoundID) ([]sharedtypes.Score, error)
	GetScoreByRoundHole(ctx context.Context, roundID sharedtypes.RoundID, hole sharedtypes.HoleNumber) (*sharedtypes.Score, error)
}
