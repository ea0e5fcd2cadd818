package scoringservice

import (
	"context"

	scoringdomain "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/domain"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// Service is the scoring engine surface the API layer calls. Every method is
// a synchronous, read-only computation: given the same stored records it
// returns the same result.
type Service interface {
	ComputeLeaderboard(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]scoringdomain.LeaderboardEntry, error)
	ComputeSkins(ctx context.Context, tournamentID sharedtypes.TournamentID, roundNumber int, totalPrize float64) (*scoringdomain.SkinsGame, error)
	ComputeStableford(ctx context.Context, tournamentID sharedtypes.TournamentID, roundNumber int, system sharedtypes.ScoringSystem) (*scoringdomain.StablefordResult, error)
}

// TournamentReader is the slice of tournament storage the engine reads.
type TournamentReader interface {
	GetTournament(ctx context.Context, id sharedtypes.TournamentID) (*sharedtypes.Tournament, error)
}

// PlayerReader is the slice of player storage the engine reads.
type PlayerReader interface {
	GetPlayersByTournament(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]sharedtypes.Player, error)
}

// RoundReader is the slice of round storage the engine reads.
type RoundReader interface {
	GetRoundsByPlayer(ctx context.Context, playerID sharedtypes.PlayerID) ([]sharedtypes.Round, error)
	GetRoundsByTournamentRound(ctx context.Context, tournamentID sharedtypes.TournamentID, roundNumber int) ([]sharedtypes.Round, error)
}

// ScoreReader is the slice of score storage the engine reads.
type ScoreReader interface {
	GetScoresByRound(ctx context.Context, roundID sharedtypes.RoundID) ([]sharedtypes.Score, error)
}
