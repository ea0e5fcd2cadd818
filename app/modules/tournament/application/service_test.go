package tournamentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedevents "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/events"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

func TestCreateTournament(t *testing.T) {
	t.Run("creates and announces", func(t *testing.T) {
		h := newTestHarness()

		created, err := h.svc.CreateTournament(context.Background(), &sharedtypes.Tournament{
			Name:        "Club Championship",
			TotalRounds: 2,
			IsActive:    true,
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.NotZero(t, created.ID)
		assert.Equal(t, "Club Championship", created.Name)
		assert.Equal(t, 1, h.bus.published(sharedevents.TournamentCreated))
	})

	t.Run("storage failure", func(t *testing.T) {
		h := newTestHarness()
		h.repo.failAll = errors.New("insert refused")

		_, err := h.svc.CreateTournament(context.Background(), &sharedtypes.Tournament{Name: "Doomed Open"})
		require.Error(t, err)
		assert.Zero(t, h.bus.published(sharedevents.TournamentCreated))
	})
}

func TestGetTournament(t *testing.T) {
	h := newTestHarness()
	seeded := h.seedTournament("Member Guest", 2, false)

	got, err := h.svc.GetTournament(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)
	assert.Equal(t, "Member Guest", got.Name)

	_, err = h.svc.GetTournament(context.Background(), 404)
	require.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestAdvanceRound(t *testing.T) {
	t.Run("moves to the next round", func(t *testing.T) {
		h := newTestHarness()
		seeded := h.seedTournament("Member Guest", 3, true)

		advanced, err := h.svc.AdvanceRound(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, advanced.CurrentRound)

		stored, err := h.repo.GetTournament(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.CurrentRound)
		assert.Equal(t, 1, h.bus.published(sharedevents.LeaderboardUpdated))
	})

	t.Run("final round stays put", func(t *testing.T) {
		h := newTestHarness()
		seeded := h.seedTournament("One Day Open", 1, true)

		_, err := h.svc.AdvanceRound(context.Background(), seeded.ID)
		require.ErrorIs(t, err, ErrTournamentFinished)
		assert.Zero(t, h.bus.published(sharedevents.LeaderboardUpdated))
	})

	t.Run("unknown tournament", func(t *testing.T) {
		h := newTestHarness()

		_, err := h.svc.AdvanceRound(context.Background(), 404)
		require.ErrorIs(t, err, ErrTournamentNotFound)
	})
}

func TestGetActiveTournament(t *testing.T) {
	t.Run("returns the running tournament", func(t *testing.T) {
		h := newTestHarness()
		h.seedTournament("Last Year", 2, false)
		active := h.seedTournament("This Year", 2, true)

		got, err := h.svc.GetActiveTournament(context.Background())
		require.NoError(t, err)
		assert.Equal(t, active.ID, got.ID)
	})

	t.Run("nothing running", func(t *testing.T) {
		h := newTestHarness()
		h.seedTournament("Finished", 2, false)

		_, err := h.svc.GetActiveTournament(context.Background())
		require.ErrorIs(t, err, ErrNoActiveTournament)
	})
}

func TestRegisterPlayer(t *testing.T) {
	t.Run("pre-creates one round per tournament round", func(t *testing.T) {
		h := newTestHarness()
		seeded := h.seedTournament("Spring Invitational", 3, true)

		tid := seeded.ID
		created, err := h.svc.RegisterPlayer(context.Background(), &sharedtypes.Player{
			Name:         "Alice",
			Handicap:     9,
			TournamentID: &tid,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotZero(t, created.ID)

		rounds, err := h.rounds.GetRoundsByPlayer(context.Background(), created.ID)
		require.NoError(t, err)
		require.Len(t, rounds, 3)

		// Rotation covers the first two rounds, the rest fall back.
		assert.Equal(t, "Azaleas Course", rounds[0].CourseName)
		assert.Equal(t, "Oaks Course", rounds[1].CourseName)
		assert.Equal(t, "Main Course", rounds[2].CourseName)
		for i, round := range rounds {
			assert.Equal(t, i+1, round.RoundNumber)
			require.NotNil(t, round.TournamentID)
			assert.Equal(t, seeded.ID, *round.TournamentID)
			require.NotNil(t, round.CurrentHole)
			assert.Equal(t, sharedtypes.HoleNumber(1), *round.CurrentHole)
			assert.False(t, round.IsStarted)
		}

		assert.Equal(t, 1, h.bus.published(sharedevents.PlayerRegistered))
	})

	t.Run("no tournament means no rounds", func(t *testing.T) {
		h := newTestHarness()

		created, err := h.svc.RegisterPlayer(context.Background(), &sharedtypes.Player{
			Name:     "Walk-in Bob",
			Handicap: 14,
		})
		require.NoError(t, err)

		rounds, err := h.rounds.GetRoundsByPlayer(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Empty(t, rounds)
		assert.Equal(t, 1, h.bus.published(sharedevents.PlayerRegistered))
	})

	t.Run("round creation failure surfaces", func(t *testing.T) {
		h := newTestHarness()
		seeded := h.seedTournament("Spring Invitational", 2, true)
		h.rounds.failAll = errors.New("rounds table down")

		tid := seeded.ID
		_, err := h.svc.RegisterPlayer(context.Background(), &sharedtypes.Player{
			Name:         "Carol",
			Handicap:     4,
			TournamentID: &tid,
		})
		require.Error(t, err)
		assert.Zero(t, h.bus.published(sharedevents.PlayerRegistered))
	})
}

func TestGetPlayersByTournament(t *testing.T) {
	h := newTestHarness()
	seeded := h.seedTournament("Fall Classic", 1, true)
	other := h.seedTournament("Other Event", 1, false)

	tid := seeded.ID
	_, err := h.svc.RegisterPlayer(context.Background(), &sharedtypes.Player{Name: "Alice", Handicap: 9, TournamentID: &tid})
	require.NoError(t, err)
	oid := other.ID
	_, err = h.svc.RegisterPlayer(context.Background(), &sharedtypes.Player{Name: "Bob", Handicap: 4, TournamentID: &oid})
	require.NoError(t, err)

	players, err := h.svc.GetPlayersByTournament(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Alice", players[0].Name)
}

func TestGetStats(t *testing.T) {
	t.Run("counts the current round only", func(t *testing.T) {
		h := newTestHarness()
		seeded := h.seedTournament("Summer Open", 2, true)

		tid := seeded.ID
		alice, err := h.svc.RegisterPlayer(context.Background(), &sharedtypes.Player{Name: "Alice", Handicap: 9, TournamentID: &tid})
		require.NoError(t, err)
		bob, err := h.svc.RegisterPlayer(context.Background(), &sharedtypes.Player{Name: "Bob", Handicap: 4, TournamentID: &tid})
		require.NoError(t, err)

		// Alice finished round 1, Bob is still out. Round 2 state must not
		// bleed into the snapshot.
		for id, round := range h.rounds.rounds {
			if round.PlayerID != nil && *round.PlayerID == alice.ID && round.RoundNumber == 1 {
				h.rounds.rounds[id].IsComplete = true
			}
			if round.PlayerID != nil && *round.PlayerID == bob.ID && round.RoundNumber == 2 {
				h.rounds.rounds[id].IsComplete = true
			}
		}

		stats, err := h.svc.GetStats(context.Background(), seeded.ID)
		require.NoError(t, err)

		assert.Equal(t, 2, stats.TotalPlayers)
		assert.Equal(t, 1, stats.CompletedRounds)
		assert.Equal(t, 1, stats.PlayersStillPlaying)
		assert.Equal(t, 72, stats.CoursePar)
		assert.Equal(t, 1, stats.CurrentRound)
		assert.Equal(t, 2, stats.TotalRounds)
	})

	t.Run("unknown tournament", func(t *testing.T) {
		h := newTestHarness()

		_, err := h.svc.GetStats(context.Background(), 404)
		require.ErrorIs(t, err, ErrTournamentNotFound)
	})
}
