package tournamentdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

type TournamentDBImpl struct {
	DB *bun.DB
}

func (db *TournamentDBImpl) CreateTournament(ctx context.Context, tournament *sharedtypes.Tournament) (*sharedtypes.Tournament, error) {
	model := &Tournament{
		Name:           tournament.Name,
		StartDate:      tournament.StartDate,
		EndDate:        tournament.EndDate,
		Course:         &tournament.Course,
		Location:       tournament.Location,
		TotalRounds:    tournament.TotalRounds,
		CurrentRound:   tournament.CurrentRound,
		CoursePar:      tournament.CoursePar,
		IsActive:       tournament.IsActive,
		TournamentType: tournament.TournamentType,
	}
	if model.CurrentRound == 0 {
		model.CurrentRound = 1
	}
	if model.CoursePar == 0 {
		model.CoursePar = 72
	}
	if model.TournamentType == "" {
		model.TournamentType = "stroke-play"
	}

	if _, err := db.DB.NewInsert().Model(model).Returning("*").Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert tournament: %w", err)
	}
	return model.toShared(), nil
}

func (db *TournamentDBImpl) GetTournament(ctx context.Context, id sharedtypes.TournamentID) (*sharedtypes.Tournament, error) {
	var model Tournament
	err := db.DB.NewSelect().
		Model(&model).
		Where("id = ?", int64(id)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tournament %d: %w", id, err)
	}
	return model.toShared(), nil
}

func (db *TournamentDBImpl) GetActiveTournament(ctx context.Context) (*sharedtypes.Tournament, error) {
	var model Tournament
	err := db.DB.NewSelect().
		Model(&model).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch active tournament: %w", err)
	}
	return model.toShared(), nil
}

func (db *TournamentDBImpl) SetCurrentRound(ctx context.Context, id sharedtypes.TournamentID, currentRound int) error {
	res, err := db.DB.NewUpdate().
		Model((*Tournament)(nil)).
		Set("current_round = ?", currentRound).
		Where("id = ?", int64(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update current round for tournament %d: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("tournament %d not found", id)
	}
	return nil
}

func (db *TournamentDBImpl) CreatePlayer(ctx context.Context, player *sharedtypes.Player) (*sharedtypes.Player, error) {
	model := &Player{
		Name:     player.Name,
		Handicap: int(player.Handicap),
	}
	if player.TournamentID != nil {
		id := int64(*player.TournamentID)
		model.TournamentID = &id
	}

	if _, err := db.DB.NewInsert().Model(model).Returning("*").Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert player: %w", err)
	}
	shared := model.toShared()
	return &shared, nil
}

func (db *TournamentDBImpl) GetPlayer(ctx context.Context, id sharedtypes.PlayerID) (*sharedtypes.Player, error) {
	var model Player
	err := db.DB.NewSelect().
		Model(&model).
		Where("id = ?", int64(id)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch player %d: %w", id, err)
	}
	shared := model.toShared()
	return &shared, nil
}

func (db *TournamentDBImpl) GetPlayersByTournament(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]sharedtypes.Player, error) {
	var models []Player
	err := db.DB.NewSelect().
		Model(&models).
		Where("tournament_id = ?", int64(tournamentID)).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch players for tournament %d: %w", tournamentID, err)
	}
	players := make([]sharedtypes.Player, 0, len(models))
	for i := range models {
		players = append(players, models[i].toShared())
	}
	return players, nil
}
