package bundb_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun/migrate"

	rounddb "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/infrastructure/repositories"
	roundmigrations "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/infrastructure/repositories/migrations"
	tournamentmigrations "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/tournament/infrastructure/repositories/migrations"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"github.com/Dancing-Rabbit-Club/golf-bot/db/bundb"
)

// setupDB starts a throwaway Postgres, connects, and migrates both modules.
func setupDB(t *testing.T) *bundb.DBService {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("golfbot_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, pgContainer)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	dbService, err := bundb.NewBunDBService(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbService.Close() })

	for _, migrations := range []*migrate.Migrations{tournamentmigrations.Migrations, roundmigrations.Migrations} {
		migrator := migrate.NewMigrator(dbService.GetDB(), migrations)
		require.NoError(t, migrator.Init(ctx))
		_, err = migrator.Migrate(ctx)
		require.NoError(t, err)
	}

	return dbService
}

func TestRepositoriesRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	faker := gofakeit.New(0)
	dbService := setupDB(t)
	ctx := context.Background()

	t.Run("tournament defaults and active lookup", func(t *testing.T) {
		created, err := dbService.Tournament.CreateTournament(ctx, &sharedtypes.Tournament{
			Name:        faker.Company() + " Invitational",
			StartDate:   time.Now().UTC(),
			EndDate:     time.Now().UTC().AddDate(0, 0, 2),
			Course:      "Azaleas Course",
			TotalRounds: 2,
			IsActive:    true,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, created.CurrentRound)
		assert.Equal(t, 72, created.CoursePar)
		assert.Equal(t, "stroke-play", created.TournamentType)

		fetched, err := dbService.Tournament.GetTournament(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		if diff := cmp.Diff(created, fetched, cmpopts.EquateApproxTime(time.Second)); diff != "" {
			t.Errorf("tournament changed across the round trip (-created +fetched):\n%s", diff)
		}

		active, err := dbService.Tournament.GetActiveTournament(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, created.ID, active.ID)

		require.NoError(t, dbService.Tournament.SetCurrentRound(ctx, created.ID, 2))
		updated, err := dbService.Tournament.GetTournament(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.CurrentRound)
	})

	t.Run("absent rows come back nil", func(t *testing.T) {
		tournament, err := dbService.Tournament.GetTournament(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, tournament)

		round, err := dbService.Round.GetRound(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, round)
	})

	t.Run("players, rounds, and score upserts", func(t *testing.T) {
		tournament, err := dbService.Tournament.CreateTournament(ctx, &sharedtypes.Tournament{
			Name:        faker.Company() + " Open",
			StartDate:   time.Now().UTC(),
			EndDate:     time.Now().UTC().AddDate(0, 0, 1),
			Course:      "Oaks Course",
			TotalRounds: 1,
		})
		require.NoError(t, err)

		tid := tournament.ID
		player, err := dbService.Tournament.CreatePlayer(ctx, &sharedtypes.Player{
			Name:         faker.Name(),
			Handicap:     sharedtypes.Handicap(faker.Number(0, 20)),
			TournamentID: &tid,
		})
		require.NoError(t, err)

		players, err := dbService.Tournament.GetPlayersByTournament(ctx, tid)
		require.NoError(t, err)
		require.Len(t, players, 1)
		if diff := cmp.Diff(*player, players[0], cmpopts.EquateApproxTime(time.Second)); diff != "" {
			t.Errorf("player changed across the round trip (-created +listed):\n%s", diff)
		}

		pid := player.ID
		firstHole := sharedtypes.HoleNumber(1)
		round, err := dbService.Round.CreateRound(ctx, &sharedtypes.Round{
			PlayerID:     &pid,
			TournamentID: &tid,
			RoundNumber:  1,
			CourseName:   "Oaks Course",
			CurrentHole:  &firstHole,
		})
		require.NoError(t, err)

		byTournament, err := dbService.Round.GetRoundsByTournamentRound(ctx, tid, 1)
		require.NoError(t, err)
		require.Len(t, byTournament, 1)
		assert.Equal(t, round.ID, byTournament[0].ID)

		rid := round.ID
		score, err := dbService.Round.UpsertScore(ctx, &sharedtypes.Score{
			PlayerID: &pid,
			RoundID:  &rid,
			Hole:     7,
			Strokes:  6,
		})
		require.NoError(t, err)

		// Resubmitting the hole must overwrite, not duplicate.
		corrected, err := dbService.Round.UpsertScore(ctx, &sharedtypes.Score{
			PlayerID: &pid,
			RoundID:  &rid,
			Hole:     7,
			Strokes:  4,
		})
		require.NoError(t, err)
		assert.Equal(t, score.ID, corrected.ID)
		assert.Equal(t, sharedtypes.Strokes(4), corrected.Strokes)

		scores, err := dbService.Round.GetScoresByRound(ctx, rid)
		require.NoError(t, err)
		require.Len(t, scores, 1)
		assert.Equal(t, sharedtypes.Strokes(4), scores[0].Strokes)

		gross := 4
		net := 4 - int(player.Handicap)
		complete := false
		updatedRound, err := dbService.Round.UpdateRound(ctx, rid, rounddb.RoundUpdate{
			GrossScore: &gross,
			NetScore:   &net,
			IsComplete: &complete,
		})
		require.NoError(t, err)
		require.NotNil(t, updatedRound.GrossScore)
		assert.Equal(t, gross, *updatedRound.GrossScore)
		require.NotNil(t, updatedRound.NetScore)
		assert.Equal(t, net, *updatedRound.NetScore)
	})
}
