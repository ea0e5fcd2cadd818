package roundservice

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace/noop"

	rounddb "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/infrastructure/repositories"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	roundmetrics "github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/metrics/round"
)

// fakeRoundDB is an in-memory RoundDB. Rounds and scores are keyed the way
// the real tables are.
type fakeRoundDB struct {
	rounds  map[sharedtypes.RoundID]*sharedtypes.Round
	scores  map[sharedtypes.RoundID]map[sharedtypes.HoleNumber]*sharedtypes.Score
	nextID  int64
	failAll error
}

func newFakeRoundDB() *fakeRoundDB {
	return &fakeRoundDB{
		rounds: make(map[sharedtypes.RoundID]*sharedtypes.Round),
		scores: make(map[sharedtypes.RoundID]map[sharedtypes.HoleNumber]*sharedtypes.Score),
		nextID: 1,
	}
}

func (f *fakeRoundDB) CreateRound(_ context.Context, round *sharedtypes.Round) (*sharedtypes.Round, error) {
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

func (f *fakeRoundDB) GetRound(_ context.Context, id sharedtypes.RoundID) (*sharedtypes.Round, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	round, ok := f.rounds[id]
	if !ok {
		return nil, nil
	}
	out := *round
	return &out, nil
}

func (f *fakeRoundDB) GetRoundsByPlayer(_ context.Context, playerID sharedtypes.PlayerID) ([]sharedtypes.Round, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var out []sharedtypes.Round
	for _, r := range f.rounds {
		if r.PlayerID != nil && *r.PlayerID == playerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRoundDB) GetRoundsByTournamentRound(_ context.Context, tournamentID sharedtypes.TournamentID, roundNumber int) ([]sharedtypes.Round, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var out []sharedtypes.Round
	for _, r := range f.rounds {
		if r.TournamentID != nil && *r.TournamentID == tournamentID && r.RoundNumber == roundNumber {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRoundDB) UpdateRound(_ context.Context, id sharedtypes.RoundID, update rounddb.RoundUpdate) (*sharedtypes.Round, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	round, ok := f.rounds[id]
	if !ok {
		return nil, nil
	}
	if update.GrossScore != nil {
		g := *update.GrossScore
		round.GrossScore = &g
	}
	if update.NetScore != nil {
		n := *update.NetScore
		round.NetScore = &n
	}
	if update.IsComplete != nil {
		round.IsComplete = *update.IsComplete
	}
	if update.IsStarted != nil {
		round.IsStarted = *update.IsStarted
	}
	if update.CurrentHole != nil {
		hole := sharedtypes.HoleNumber(*update.CurrentHole)
		round.CurrentHole = &hole
	}
	out := *round
	return &out, nil
}

func (f *fakeRoundDB) UpsertScore(_ context.Context, score *sharedtypes.Score) (*sharedtypes.Score, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	rid := *score.RoundID
	if f.scores[rid] == nil {
		f.scores[rid] = make(map[sharedtypes.HoleNumber]*sharedtypes.Score)
	}
	stored := *score
	if existing, ok := f.scores[rid][score.Hole]; ok {
		stored.ID = existing.ID
	} else {
		stored.ID = sharedtypes.ScoreID(f.nextID)
		f.nextID++
	}
	f.scores[rid][score.Hole] = &stored
	out := stored
	return &out, nil
}

func (f *fakeRoundDB) GetScoresByRound(_ context.Context, roundID sharedtypes.RoundID) ([]sharedtypes.Score, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var out []sharedtypes.Score
	for hole := sharedtypes.HoleNumber(1); hole <= 18; hole++ {
		if sc, ok := f.scores[roundID][hole]; ok {
			out = append(out, *sc)
		}
	}
	return out, nil
}

func (f *fakeRoundDB) GetScoreByRoundHole(_ context.Context, roundID sharedtypes.RoundID, hole sharedtypes.HoleNumber) (*sharedtypes.Score, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	sc, ok := f.scores[roundID][hole]
	if !ok {
		return nil, nil
	}
	out := *sc
	return &out, nil
}

// fakePlayers is an in-memory PlayerSource.
type fakePlayers struct {
	players map[sharedtypes.PlayerID]*sharedtypes.Player
}

func newFakePlayers() *fakePlayers {
	return &fakePlayers{players: make(map[sharedtypes.PlayerID]*sharedtypes.Player)}
}

func (f *fakePlayers) add(id sharedtypes.PlayerID, name string, handicap sharedtypes.Handicap, tournamentID sharedtypes.TournamentID) {
	tid := tournamentID
	f.players[id] = &sharedtypes.Player{ID: id, Name: name, Handicap: handicap, TournamentID: &tid}
}

func (f *fakePlayers) GetPlayer(_ context.Context, id sharedtypes.PlayerID) (*sharedtypes.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (f *fakePlayers) GetPlayersByTournament(_ context.Context, tournamentID sharedtypes.TournamentID) ([]sharedtypes.Player, error) {
	var out []sharedtypes.Player
	for _, p := range f.players {
		if p.TournamentID != nil && *p.TournamentID == tournamentID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// fakeEventBus records published topics and payloads.
type fakeEventBus struct {
	mu       sync.Mutex
	topics   []string
	payloads map[string][]any
}

func (f *fakeEventBus) Publish(_ context.Context, topic string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, topic)
	if f.payloads == nil {
		f.payloads = make(map[string][]any)
	}
	f.payloads[topic] = append(f.payloads[topic], payload)
	return nil
}

func (f *fakeEventBus) Subscriber() message.Subscriber { return nil }

func (f *fakeEventBus) Close() error { return nil }

func (f *fakeEventBus) lastPayload(topic string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	recorded := f.payloads[topic]
	if len(recorded) == 0 {
		return nil
	}
	return recorded[len(recorded)-1]
}

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

// fakeEnqueuer records recompute requests.
type fakeEnqueuer struct {
	roundIDs []sharedtypes.RoundID
}

func (f *fakeEnqueuer) EnqueueRecompute(_ context.Context, roundID sharedtypes.RoundID) error {
	f.roundIDs = append(f.roundIDs, roundID)
	return nil
}

type testHarness struct {
	svc      *RoundService
	db       *fakeRoundDB
	players  *fakePlayers
	bus      *fakeEventBus
	enqueuer *fakeEnqueuer
}

func newTestHarness() *testHarness {
	db := newFakeRoundDB()
	players := newFakePlayers()
	bus := &fakeEventBus{}
	enqueuer := &fakeEnqueuer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")

	svc := NewRoundService(db, players, enqueuer, bus, logger, roundmetrics.NoOpMetrics{}, tracer)
	return &testHarness{
		svc:      svc.(*RoundService),
		db:       db,
		players:  players,
		bus:      bus,
		enqueuer: enqueuer,
	}
}

func (h *testHarness) seedRound(playerID sharedtypes.PlayerID, tournamentID sharedtypes.TournamentID, roundNumber int) *sharedtypes.Round {
	pid := playerID
	tid := tournamentID
	round, _ := h.db.CreateRound(context.Background(), &sharedtypes.Round{
		PlayerID:     &pid,
		TournamentID: &tid,
		RoundNumber:  roundNumber,
		CourseName:   "Azaleas Course",
	})
	return round
}
