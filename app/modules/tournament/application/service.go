package tournamentservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	rounddb "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/infrastructure/repositories"
	tournamentdb "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/tournament/infrastructure/repositories"
	sharedevents "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/events"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/eventbus"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
	tournamentmetrics "github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/metrics/tournament"
)

var (
	// ErrTournamentNotFound is returned when an operation targets a missing
	// tournament.
	ErrTournamentNotFound = errors.New("tournament not found")

	// ErrNoActiveTournament is returned when no tournament is currently
	// running.
	ErrNoActiveTournament = errors.New("no active tournament found")

	// ErrTournamentFinished is returned when advancement would go past the
	// final round.
	ErrTournamentFinished = errors.New("tournament is on its final round")
)

// roundCourseRotation assigns each tournament round its course. Rounds past
// the rotation play the fallback.
var roundCourseRotation = []string{"Azaleas Course", "Oaks Course"}

const fallbackCourseName = "Main Course"

// Stats is a tournament progress snapshot over the current round.
type Stats struct {
	TotalPlayers        int `json:"total_players"`
	CompletedRounds     int `json:"completed_rounds"`
	PlayersStillPlaying int `json:"players_still_playing"`
	CoursePar           int `json:"course_par"`
	CurrentRound        int `json:"current_round"`
	TotalRounds         int `json:"total_rounds"`
}

// Service is the tournament management surface.
type Service interface {
	CreateTournament(ctx context.Context, tournament *sharedtypes.Tournament) (*sharedtypes.Tournament, error)
	GetTournament(ctx context.Context, id sharedtypes.TournamentID) (*sharedtypes.Tournament, error)
	GetActiveTournament(ctx context.Context) (*sharedtypes.Tournament, error)
	RegisterPlayer(ctx context.Context, player *sharedtypes.Player) (*sharedtypes.Player, error)
	GetPlayersByTournament(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]sharedtypes.Player, error)
	GetStats(ctx context.Context, tournamentID sharedtypes.TournamentID) (*Stats, error)
	AdvanceRound(ctx context.Context, tournamentID sharedtypes.TournamentID) (*sharedtypes.Tournament, error)
}

// TournamentService manages tournaments and registrations.
type TournamentService struct {
	repo     tournamentdb.TournamentDB
	rounds   rounddb.RoundDB
	eventBus eventbus.EventBus
	logger   *slog.Logger
	metrics  tournamentmetrics.TournamentMetrics
	tracer   trace.Tracer
}

func NewTournamentService(
	repo tournamentdb.TournamentDB,
	rounds rounddb.RoundDB,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics tournamentmetrics.TournamentMetrics,
	tracer trace.Tracer,
) Service {
	return &TournamentService{
		repo:     repo,
		rounds:   rounds,
		eventBus: eventBus,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
	}
}

func (s *TournamentService) instrument(ctx context.Context, operation string) (context.Context, func(err *error)) {
	ctx, span := s.tracer.Start(ctx, operation, trace.WithAttributes(
		attribute.String("operation", operation),
	))
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, operation)

	finish := func(err *error) {
		s.metrics.RecordOperationDuration(ctx, operation, time.Since(start))
		if *err != nil {
			s.metrics.RecordOperationFailure(ctx, operation)
			span.RecordError(*err)
		} else {
			s.metrics.RecordOperationSuccess(ctx, operation)
		}
		span.End()
	}
	return ctx, finish
}

func (s *TournamentService) CreateTournament(ctx context.Context, tournament *sharedtypes.Tournament) (created *sharedtypes.Tournament, err error) {
	ctx, finish := s.instrument(ctx, "CreateTournament")
	defer finish(&err)

	created, err = s.repo.CreateTournament(ctx, tournament)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Tournament created",
		attr.ExtractCorrelationID(ctx),
		attr.TournamentID("tournament_id", created.ID),
		attr.String("name", created.Name),
		attr.Int("total_rounds", created.TotalRounds),
	)

	if pubErr := s.eventBus.Publish(ctx, sharedevents.TournamentCreated, created); pubErr != nil {
		s.logger.WarnContext(ctx, "Failed to publish tournament created event",
			attr.ExtractCorrelationID(ctx), attr.Error(pubErr))
	}
	return created, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, id sharedtypes.TournamentID) (tournament *sharedtypes.Tournament, err error) {
	ctx, finish := s.instrument(ctx, "GetTournament")
	defer finish(&err)

	tournament, err = s.repo.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	if tournament == nil {
		err = ErrTournamentNotFound
		return nil, err
	}
	return tournament, nil
}

func (s *TournamentService) GetActiveTournament(ctx context.Context) (tournament *sharedtypes.Tournament, err error) {
	ctx, finish := s.instrument(ctx, "GetActiveTournament")
	defer finish(&err)

	tournament, err = s.repo.GetActiveTournament(ctx)
	if err != nil {
		return nil, err
	}
	if tournament == nil {
		err = ErrNoActiveTournament
		return nil, err
	}
	return tournament, nil
}

// RegisterPlayer creates the player and pre-creates one round per tournament
// round so the leaderboard sees every player immediately. Registration
// outside any tournament just creates the player.
func (s *TournamentService) RegisterPlayer(ctx context.Context, player *sharedtypes.Player) (created *sharedtypes.Player, err error) {
	ctx, finish := s.instrument(ctx, "RegisterPlayer")
	defer finish(&err)

	created, err = s.repo.CreatePlayer(ctx, player)
	if err != nil {
		return nil, err
	}

	var roundIDs []sharedtypes.RoundID
	if created.TournamentID != nil {
		tournament, tErr := s.repo.GetTournament(ctx, *created.TournamentID)
		if tErr != nil {
			err = tErr
			return nil, err
		}
		if tournament != nil {
			roundIDs, err = s.preCreateRounds(ctx, tournament, created.ID)
			if err != nil {
				return nil, err
			}
		}
	}

	s.metrics.RecordPlayerRegistered(ctx, len(roundIDs))
	s.logger.InfoContext(ctx, "Player registered",
		attr.ExtractCorrelationID(ctx),
		attr.PlayerID("player_id", created.ID),
		attr.String("name", created.Name),
		attr.Int("rounds_precreated", len(roundIDs)),
	)

	payload := sharedevents.PlayerRegisteredPayload{Player: *created, RoundIDs: roundIDs}
	if pubErr := s.eventBus.Publish(ctx, sharedevents.PlayerRegistered, payload); pubErr != nil {
		s.logger.WarnContext(ctx, "Failed to publish player registered event",
			attr.ExtractCorrelationID(ctx), attr.Error(pubErr))
	}
	return created, nil
}

func (s *TournamentService) preCreateRounds(ctx context.Context, tournament *sharedtypes.Tournament, playerID sharedtypes.PlayerID) ([]sharedtypes.RoundID, error) {
	roundIDs := make([]sharedtypes.RoundID, 0, tournament.TotalRounds)
	for i := 1; i <= tournament.TotalRounds; i++ {
		courseName := fallbackCourseName
		if i-1 < len(roundCourseRotation) {
			courseName = roundCourseRotation[i-1]
		}

		pid := playerID
		tid := tournament.ID
		firstHole := sharedtypes.HoleNumber(1)
		round, err := s.rounds.CreateRound(ctx, &sharedtypes.Round{
			PlayerID:     &pid,
			TournamentID: &tid,
			RoundNumber:  i,
			CourseName:   courseName,
			CurrentHole:  &firstHole,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to pre-create round %d for player %d: %w", i, playerID, err)
		}
		roundIDs = append(roundIDs, round.ID)
	}
	return roundIDs, nil
}

func (s *TournamentService) GetPlayersByTournament(ctx context.Context, tournamentID sharedtypes.TournamentID) (players []sharedtypes.Player, err error) {
	ctx, finish := s.instrument(ctx, "GetPlayersByTournament")
	defer finish(&err)

	players, err = s.repo.GetPlayersByTournament(ctx, tournamentID)
	return players, err
}

// AdvanceRound moves the tournament onto its next round. Stats and the
// leaderboard status strings follow the new current round immediately.
func (s *TournamentService) AdvanceRound(ctx context.Context, tournamentID sharedtypes.TournamentID) (tournament *sharedtypes.Tournament, err error) {
	ctx, finish := s.instrument(ctx, "AdvanceRound")
	defer finish(&err)

	tournament, err = s.repo.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament == nil {
		err = ErrTournamentNotFound
		return nil, err
	}
	if tournament.CurrentRound >= tournament.TotalRounds {
		err = ErrTournamentFinished
		return nil, err
	}

	next := tournament.CurrentRound + 1
	if err = s.repo.SetCurrentRound(ctx, tournamentID, next); err != nil {
		return nil, err
	}
	tournament.CurrentRound = next

	s.logger.InfoContext(ctx, "Tournament advanced",
		attr.ExtractCorrelationID(ctx),
		attr.TournamentID("tournament_id", tournamentID),
		attr.Int("current_round", next),
	)

	payload := sharedevents.LeaderboardUpdatedPayload{TournamentID: tournamentID}
	if pubErr := s.eventBus.Publish(ctx, sharedevents.LeaderboardUpdated, payload); pubErr != nil {
		s.logger.WarnContext(ctx, "Failed to publish leaderboard updated event",
			attr.ExtractCorrelationID(ctx), attr.Error(pubErr))
	}
	return tournament, nil
}

// GetStats snapshots current-round progress across the field.
func (s *TournamentService) GetStats(ctx context.Context, tournamentID sharedtypes.TournamentID) (stats *Stats, err error) {
	ctx, finish := s.instrument(ctx, "GetStats")
	defer finish(&err)

	tournament, err := s.repo.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament == nil {
		err = ErrTournamentNotFound
		return nil, err
	}

	players, err := s.repo.GetPlayersByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	stats = &Stats{
		TotalPlayers: len(players),
		CoursePar:    tournament.CoursePar,
		CurrentRound: tournament.CurrentRound,
		TotalRounds:  tournament.TotalRounds,
	}

	for _, player := range players {
		rounds, rErr := s.rounds.GetRoundsByPlayer(ctx, player.ID)
		if rErr != nil {
			err = rErr
			return nil, err
		}
		for _, round := range rounds {
			if round.RoundNumber != tournament.CurrentRound {
				continue
			}
			if round.IsComplete {
				stats.CompletedRounds++
			} else {
				stats.PlayersStillPlaying++
			}
			break
		}
	}

	return stats, nil
}
