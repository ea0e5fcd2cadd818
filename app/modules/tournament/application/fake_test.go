package tournamentservice

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace/noop"

	rounddb "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/infrastructure/repositories"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	tournamentmetrics "github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/metrics/tournament"
)

// fakeTournamentDB is an in-memory TournamentDB.
type fakeTournamentDB struct {
	tournaments map[sharedtypes.TournamentID]*sharedtypes.Tournament
	players     map[sharedtypes.PlayerID]*sharedtypes.Player
	nextID      int64
	failAll     error
}

func newFakeTournamentDB() *fakeTournamentDB {
	return &fakeTournamentDB{
		tournaments: make(map[sharedtypes.TournamentID]*sharedtypes.Tournament),
		players:     make(map[sharedtypes.PlayerID]*sharedtypes.Player),
		nextID:      1,
	}
}

func (f *fakeTournamentDB) CreateTournament(_ context.Context, tournament *sharedtypes.Tournament) (*sharedtypes.Tournament, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	created := *tournament
	created.ID = sharedtypes.TournamentID(f.nextID)
	f.nextID++
	f.tournaments[created.ID] = &created
	out := created
	return &out, nil
}

func (f *fakeTournamentDB) GetTournament(_ context.Context, id sharedtypes.TournamentID) (*sharedtypes.Tournament, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	tournament, ok := f.tournaments[id]
	if !ok {
		return nil, nil
	}
	out := *tournament
	return &out, nil
}

func (f *fakeTournamentDB) GetActiveTournament(_ context.Context) (*sharedtypes.Tournament, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	for _, tournament := range f.tournaments {
		if tournament.IsActive {
			out := *tournament
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeTournamentDB) SetCurrentRound(_ context.Context, id sharedtypes.TournamentID, currentRound int) error {
	if f.failAll != nil {
		return f.failAll
	}
	tournament, ok := f.tournaments[id]
	if !ok {
		return nil
	}
	tournament.CurrentRound = currentRound
	return nil
}

func (f *fakeTournamentDB) CreatePlayer(_ context.Context, player *sharedtypes.Player) (*sharedtypes.Player, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	created := *player
	created.ID = sharedtypes.PlayerID(f.nextID)
	f.nextID++
	f.players[created.ID] = &created
	out := created
	return &out, nil
}

func (f *fakeTournamentDB) GetPlayer(_ context.Context, id sharedtypes.PlayerID) (*sharedtypes.Player, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	player, ok := f.players[id]
	if !ok {
		return nil, nil
	}
	out := *player
	return &out, nil
}

func (f *fakeTournamentDB) GetPlayersByTournament(_ context.Context, tournamentID sharedtypes.TournamentID) ([]sharedtypes.Player, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var out []sharedtypes.Player
	for id := sharedtypes.PlayerID(1); int64(id) < f.nextID; id++ {
		p, ok := f.players[id]
		if !ok {
			continue
		}
		if p.TournamentID != nil && *p.TournamentID == tournamentID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// fakeRoundStore covers the slice of RoundDB the tournament service touches.
// The embedded interface panics on anything else.
type fakeRoundStore struct {
	rounddb.RoundDB
	rounds  map[sharedtypes.RoundID]*sharedtypes.Round
	nextID  int64
	failAll error
}

func newFakeRoundStore() *fakeRoundStore {
	return &fakeRoundStore{
		rounds: make(map[sharedtypes.RoundID]*sharedtypes.Round),
		nextID: 1,
	}
}

func (f *fakeRoundStore) CreateRound(_ context.Context, round *sharedtypes.Round) (*sharedtypes.Round, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	created := *round
	created.ID = sharedtypes.RoundID(f.nextID)
	f.nextID++
	f.rounds[created.ID] = &created
	out := created
	return &out, nil
}

func (f *fakeRoundStore) GetRoundsByPlayer(_ context.Context, playerID sharedtypes.PlayerID) ([]sharedtypes.Round, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var out []sharedtypes.Round
	for id := sharedtypes.RoundID(1); int64(id) < f.nextID; id++ {
		r, ok := f.rounds[id]
		if !ok {
			continue
		}
		if r.PlayerID != nil && *r.PlayerID == playerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

// fakeEventBus records published topics.
type fakeEventBus struct {
	mu     sync.Mutex
	topics []string
}

func (f *fakeEventBus) Publish(_ context.Context, topic string, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, topic)
	return nil
}

func (f *fakeEventBus) Subscriber() message.Subscriber { return nil }

func (f *fakeEventBus) Close() error { return nil }

func (f *fakeEventBus) published(topic string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, t := range f.topics {
		if t == topic {
			count++
		}
	}
	return count
}

type testHarness struct {
	svc    *TournamentService
	repo   *fakeTournamentDB
	rounds *fakeRoundStore
	bus    *fakeEventBus
}

func newTestHarness() *testHarness {
	repo := newFakeTournamentDB()
	rounds := newFakeRoundStore()
	bus := &fakeEventBus{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")

	svc := NewTournamentService(repo, rounds, bus, logger, tournamentmetrics.NoOpMetrics{}, tracer)
	return &testHarness{
		svc:    svc.(*TournamentService),
		repo:   repo,
		rounds: rounds,
		bus:    bus,
	}
}

func (h *testHarness) seedTournament(name string, totalRounds int, active bool) *sharedtypes.Tournament {
	tournament, _ := h.repo.CreateTournament(context.Background(), &sharedtypes.Tournament{
		Name:         name,
		TotalRounds:  totalRounds,
		CurrentRound: 1,
		CoursePar:    72,
		IsActive:     active,
	})
	return tournament
}
