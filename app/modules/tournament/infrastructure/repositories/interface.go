package tournamentdb

import (
	"context"

	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// TournamentDB is the storage surface for tournaments and players. Get
// methods return nil without error when the row is absent.
type TournamentDB interface {
	CreateTournament(ctx context.Context, tournament *sharedtypes.Tournament) (*sharedtypes.Tournament, error)
	GetTournament(ctx context.Context, id sharedtypes.TournamentID) (*sharedtypes.Tournament, error)
	GetActiveTournament(ctx context.Context) (*sharedtypes.Tournament, error)
	SetCurrentRound(ctx context.Context, id sharedtypes.TournamentID, currentRound int) error

	CreatePlayer(ctx context.Context, player *sharedtypes.Player) (*sharedtypes.Player, error)
	GetPlayer(ctx context.Context, id sharedtypes.PlayerID) (*sharedtypes.Player, error)
	GetPlayersByTournament(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]sharedtypes.Player, error)
}
