package scoringservice

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace/noop"

	scoringdomain "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/domain"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	scoringmetrics "github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/metrics/scoring"
)

// fakeStore is an in-memory stand-in for the storage readers. Tests seed it
// directly and can force errors per call site.
type fakeStore struct {
	tournaments map[sharedtypes.TournamentID]*sharedtypes.Tournament
	players     map[sharedtypes.TournamentID][]sharedtypes.Player
	rounds      []sharedtypes.Round
	scores      []sharedtypes.Score

	tournamentErr error
	playersErr    error
	roundsErr     error
	scoresErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tournaments: make(map[sharedtypes.TournamentID]*sharedtypes.Tournament),
		players:     make(map[sharedtypes.TournamentID][]sharedtypes.Player),
	}
}

func (f *fakeStore) GetTournament(_ context.Context, id sharedtypes.TournamentID) (*sharedtypes.Tournament, error) {
	if f.tournamentErr != nil {
		return nil, f.tournamentErr
	}
	return f.tournaments[id], nil
}

func (f *fakeStore) GetPlayersByTournament(_ context.Context, tournamentID sharedtypes.TournamentID) ([]sharedtypes.Player, error) {
	if f.playersErr != nil {
		return nil, f.playersErr
	}
	return f.players[tournamentID], nil
}

func (f *fakeStore) GetRoundsByPlayer(_ context.Context, playerID sharedtypes.PlayerID) ([]sharedtypes.Round, error) {
	if f.roundsErr != nil {
		return nil, f.roundsErr
	}
	var out []sharedtypes.Round
	for _, r := range f.rounds {
		if r.PlayerID != nil && *r.PlayerID == playerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) GetRoundsByTournamentRound(_ context.Context, tournamentID sharedtypes.TournamentID, roundNumber int) ([]sharedtypes.Round, error) {
	if f.roundsErr != nil {
		return nil, f.roundsErr
	}
	var out []sharedtypes.Round
	for _, r := range f.rounds {
		if r.TournamentID != nil && *r.TournamentID == tournamentID && r.RoundNumber == roundNumber {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) GetScoresByRound(_ context.Context, roundID sharedtypes.RoundID) ([]sharedtypes.Score, error) {
	if f.scoresErr != nil {
		return nil, f.scoresErr
	}
	var out []sharedtypes.Score
	for _, sc := range f.scores {
		if sc.RoundID != nil && *sc.RoundID == roundID {
			out = append(out, sc)
		}
	}
	return out, nil
}

// seedTournament registers a tournament with sensible single-round defaults.
func (f *fakeStore) seedTournament(id sharedtypes.TournamentID, totalRounds, currentRound int) *sharedtypes.Tournament {
	t := &sharedtypes.Tournament{
		ID:           id,
		Name:         "Club Championship",
		TotalRounds:  totalRounds,
		CurrentRound: currentRound,
		CoursePar:    72,
		IsActive:     true,
	}
	f.tournaments[id] = t
	return t
}

func (f *fakeStore) seedPlayer(tournamentID sharedtypes.TournamentID, id sharedtypes.PlayerID, name string, handicap sharedtypes.Handicap) sharedtypes.Player {
	tid := tournamentID
	p := sharedtypes.Player{
		ID:           id,
		Name:         name,
		Handicap:     handicap,
		TournamentID: &tid,
	}
	f.players[tournamentID] = append(f.players[tournamentID], p)
	return p
}

func (f *fakeStore) seedRound(id sharedtypes.RoundID, tournamentID sharedtypes.TournamentID, playerID sharedtypes.PlayerID, roundNumber int, courseName string) sharedtypes.Round {
	tid := tournamentID
	pid := playerID
	r := sharedtypes.Round{
		ID:           id,
		PlayerID:     &pid,
		TournamentID: &tid,
		RoundNumber:  roundNumber,
		CourseName:   courseName,
	}
	f.rounds = append(f.rounds, r)
	return r
}

func (f *fakeStore) seedScore(roundID sharedtypes.RoundID, hole sharedtypes.HoleNumber, strokes sharedtypes.Strokes) {
	rid := roundID
	f.scores = append(f.scores, sharedtypes.Score{
		ID:      sharedtypes.ScoreID(len(f.scores) + 1),
		RoundID: &rid,
		Hole:    hole,
		Strokes: strokes,
	})
}

// seedFullRound records the same stroke count on all 18 holes.
func (f *fakeStore) seedFullRound(roundID sharedtypes.RoundID, strokes sharedtypes.Strokes) {
	for hole := sharedtypes.HoleNumber(1); hole <= 18; hole++ {
		f.seedScore(roundID, hole, strokes)
	}
}

func newTestService(store *fakeStore) *ScoringService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	svc := NewScoringService(
		store, store, store, store,
		scoringdomain.Catalog{},
		logger,
		scoringmetrics.NoOpMetrics{},
		tracer,
	)
	return svc.(*ScoringService)
}
