package scoringservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scoringdomain "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/domain"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

func TestComputeSkins_WinnerTracks(t *testing.T) {
	store := newFakeStore()
	store.seedTournament(1, 3, 1)
	store.seedPlayer(1, 10, "Alice", 0)
	store.seedPlayer(1, 11, "Bob", 18) // one stroke on every hole
	store.seedRound(100, 1, 10, 1, "Azaleas")
	store.seedRound(101, 1, 11, 1, "Azaleas")

	// Hole 1: gross tied 4-4, Bob nets 3 and takes the net skin.
	store.seedScore(100, 1, 4)
	store.seedScore(101, 1, 4)
	// Hole 2: Alice wins outright on both tracks.
	store.seedScore(100, 2, 3)
	store.seedScore(101, 2, 5)
	// Hole 3: Alice wins gross, net tied 4-4.
	store.seedScore(100, 3, 4)
	store.seedScore(101, 3, 5)

	svc := newTestService(store)
	game, err := svc.ComputeSkins(context.Background(), 1, 1, 1800)
	require.NoError(t, err)
	require.Len(t, game.Results, 18)

	assert.InDelta(t, 100.0, game.PrizePerHole, 1e-9)

	hole1 := game.Results[0]
	require.Len(t, hole1.Winners, 1)
	assert.Equal(t, sharedtypes.PlayerID(11), hole1.Winners[0].PlayerID)
	assert.Equal(t, scoringdomain.WinTypeNet, hole1.Winners[0].WinType)
	assert.InDelta(t, 100.0, hole1.PrizeAmount, 1e-9)

	// A single winner on both tracks is listed once per track and paid once.
	hole2 := game.Results[1]
	require.Len(t, hole2.Winners, 2)
	assert.Equal(t, scoringdomain.WinTypeGross, hole2.Winners[0].WinType)
	assert.Equal(t, scoringdomain.WinTypeNet, hole2.Winners[1].WinType)
	assert.Equal(t, sharedtypes.PlayerID(10), hole2.Winners[0].PlayerID)
	assert.Equal(t, sharedtypes.PlayerID(10), hole2.Winners[1].PlayerID)
	assert.InDelta(t, 100.0, hole2.PrizeAmount, 1e-9)

	hole3 := game.Results[2]
	require.Len(t, hole3.Winners, 1)
	assert.Equal(t, scoringdomain.WinTypeGross, hole3.Winners[0].WinType)

	// Holes 4-18 have no scores and each push one base prize onto the carry.
	assert.InDelta(t, 300.0, game.TotalPaid, 1e-9)
	assert.InDelta(t, 1500.0, game.CarryOverAmount, 1e-9)
	assert.Equal(t, "Azaleas", game.CourseName)
}

func TestComputeSkins_CarryOverPaysOut(t *testing.T) {
	store := newFakeStore()
	store.seedTournament(1, 1, 1)
	store.seedPlayer(1, 10, "Alice", 0)
	store.seedPlayer(1, 11, "Bob", 0)
	store.seedRound(100, 1, 10, 1, "Oaks")
	store.seedRound(101, 1, 11, 1, "Oaks")

	// Holes 1 and 2 tie on both tracks, hole 3 pays base plus two carries.
	for hole := sharedtypes.HoleNumber(1); hole <= 2; hole++ {
		store.seedScore(100, hole, 4)
		store.seedScore(101, hole, 4)
	}
	store.seedScore(100, 3, 3)
	store.seedScore(101, 3, 4)

	svc := newTestService(store)
	game, err := svc.ComputeSkins(context.Background(), 1, 1, 1800)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, game.Results[0].CarryOver, 1e-9)
	assert.InDelta(t, 200.0, game.Results[1].CarryOver, 1e-9)

	hole3 := game.Results[2]
	assert.InDelta(t, 300.0, hole3.PrizeAmount, 1e-9)
	assert.InDelta(t, 0.0, hole3.CarryOver, 1e-9)

	// A tied hole adds one base prize to the carry, never the whole pot.
	assert.InDelta(t, 1500.0, game.CarryOverAmount, 1e-9)
	assert.InDelta(t, 300.0, game.TotalPaid, 1e-9)
}

func TestComputeSkins_TournamentNotFound(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.ComputeSkins(context.Background(), 1, 1, 1800)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestComputeSkins_UnplayedRoundCarriesEverything(t *testing.T) {
	store := newFakeStore()
	store.seedTournament(1, 2, 1)
	store.seedPlayer(1, 10, "Alice", 0)
	store.seedRound(100, 1, 10, 1, "Oaks")
	store.seedScore(100, 1, 4)

	// A round number nobody has played yet still computes; every hole ties
	// the empty way and the whole pot rides the carry.
	svc := newTestService(store)
	game, err := svc.ComputeSkins(context.Background(), 1, 3, 1800)
	require.NoError(t, err)

	require.Len(t, game.Results, 18)
	for _, result := range game.Results {
		assert.Empty(t, result.Winners)
		assert.InDelta(t, 0.0, result.PrizeAmount, 1e-9)
	}
	assert.InDelta(t, 0.0, game.TotalPaid, 1e-9)
	assert.InDelta(t, 1800.0, game.CarryOverAmount, 1e-9)
}

func TestComputeSkins_StorageFailure(t *testing.T) {
	store := newFakeStore()
	store.seedTournament(1, 1, 1)
	store.seedPlayer(1, 10, "Alice", 0)
	store.seedRound(100, 1, 10, 1, "Oaks")
	store.scoresErr = errors.New("connection reset")

	svc := newTestService(store)
	_, err := svc.ComputeSkins(context.Background(), 1, 1, 1800)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestComputeSkins_UnknownCourseFallsBackToStandardPars(t *testing.T) {
	store := newFakeStore()
	store.seedTournament(1, 1, 1)
	store.seedPlayer(1, 10, "Alice", 0)
	store.seedRound(100, 1, 10, 1, "Backyard Links")
	store.seedScore(100, 3, 2)

	svc := newTestService(store)
	game, err := svc.ComputeSkins(context.Background(), 1, 1, 1800)
	require.NoError(t, err)

	assert.Equal(t, scoringdomain.StandardPars.Par(3), game.Results[2].Par)
	assert.Equal(t, "Backyard Links", game.CourseName)
}
