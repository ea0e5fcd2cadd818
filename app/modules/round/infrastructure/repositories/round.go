package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

type RoundDBImpl struct {
	DB *bun.DB
}

func (db *RoundDBImpl) CreateRound(ctx context.Context, round *sharedtypes.Round) (*sharedtypes.Round, error) {
	model := &Round{
		RoundNumber: round.RoundNumber,
		CourseName:  round.CourseName,
		GrossScore:  round.GrossScore,
		NetScore:    round.NetScore,
		IsComplete:  round.IsComplete,
		IsStarted:   round.IsStarted,
	}
	if round.PlayerID != nil {
		id := int64(*round.PlayerID)
		model.PlayerID = &id
	}
	if round.TournamentID != nil {
		id := int64(*round.TournamentID)
		model.TournamentID = &id
	}
	if round.CurrentHole != nil {
		hole := int(*round.CurrentHole)
		model.CurrentHole = &hole
	}

	if _, err := db.DB.NewInsert().Model(model).Returning("*").Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert round: %w", err)
	}
	shared := model.toShared()
	return &shared, nil
}

func (db *RoundDBImpl) GetRound(ctx context.Context, id sharedtypes.RoundID) (*sharedtypes.Round, error) {
	var model Round
	err := db.DB.NewSelect().
		Model(&model).
		Where("id = ?", int64(id)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch round %d: %w", id, err)
	}
	shared := model.toShared()
	return &shared, nil
}

func (db *RoundDBImpl) GetRoundsByPlayer(ctx context.Context, playerID sharedtypes.PlayerID) ([]sharedtypes.Round, error) {
	var models []Round
	err := db.DB.NewSelect().
		Model(&models).
		Where("player_id = ?", int64(playerID)).
		Order("round_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rounds for player %d: %w", playerID, err)
	}
	return toSharedRounds(models), nil
}

func (db *RoundDBImpl) GetRoundsByTournamentRound(ctx context.Context, tournamentID sharedtypes.TournamentID, roundNumber int) ([]sharedtypes.Round, error) {
	var models []Round
	err := db.DB.NewSelect().
		Model(&models).
		Where("tournament_id = ?", int64(tournamentID)).
		Where("round_number = ?", roundNumber).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rounds for tournament %d round %d: %w", tournamentID, roundNumber, err)
	}
	return toSharedRounds(models), nil
}

func (db *RoundDBImpl) UpdateRound(ctx context.Context, id sharedtypes.RoundID, update RoundUpdate) (*sharedtypes.Round, error) {
	q := db.DB.NewUpdate().
		Model((*Round)(nil)).
		Where("id = ?", int64(id))

	touched := false
	if update.GrossScore != nil {
		q = q.Set("gross_score = ?", *update.GrossScore)
		touched = true
	}
	if update.NetScore != nil {
		q = q.Set("net_score = ?", *update.NetScore)
		touched = true
	}
	if update.IsComplete != nil {
		q = q.Set("is_complete = ?", *update.IsComplete)
		touched = true
	}
	if update.IsStarted != nil {
		q = q.Set("is_started = ?", *update.IsStarted)
		touched = true
	}
	if update.CurrentHole != nil {
		q = q.Set("current_hole = ?", *update.CurrentHole)
		touched = true
	}
	if touched {
		if _, err := q.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to update round %d: %w", id, err)
		}
	}

	return db.GetRound(ctx, id)
}

func (db *RoundDBImpl) UpsertScore(ctx context.Context, score *sharedtypes.Score) (*sharedtypes.Score, error) {
	model := &Score{
		Hole:    int(score.Hole),
		Strokes: int(score.Strokes),
	}
	if score.PlayerID != nil {
		id := int64(*score.PlayerID)
		model.PlayerID = &id
	}
	if score.RoundID != nil {
		id := int64(*score.RoundID)
		model.RoundID = &id
	}

	_, err := db.DB.NewInsert().
		Model(model).
		On("CONFLICT (round_id, hole) DO UPDATE").
		Set("strokes = EXCLUDED.strokes").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert score: %w", err)
	}
	shared := model.toShared()
	return &shared, nil
}

func (db *RoundDBImpl) GetScoresByRound(ctx context.Context, roundID sharedtypes.RoundID) ([]sharedtypes.Score, error) {
	var models []Score
	err := db.DB.NewSelect().
		Model(&models).
		Where("round_id = ?", int64(roundID)).
		Order("hole ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scores for round %d: %w", roundID, err)
	}
	scores := make([]sharedtypes.Score, 0, len(models))
	for i := range models {
		scores = append(scores, models[i].toShared())
	}
	return scores, nil
}

func (db *RoundDBImpl) GetScoreByRoundHole(ctx context.Context, roundID sharedtypes.RoundID, hole sharedtypes.HoleNumber) (*sharedtypes.Score, error) {
	var model Score
	err := db.DB.NewSelect().
		Model(&model).
		Where("round_id = ?", int64(roundID)).
		Where("hole = ?", int(hole)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch score for round %d hole %d: %w", roundID, hole, err)
	}
	shared := model.toShared()
	return &shared, nil
}

func toSharedRounds(models []Round) []sharedtypes.Round {
	rounds := make([]sharedtypes.Round, 0, len(models))
	for i := range models {
		rounds = append(rounds, models[i].toShared())
	}
	return rounds
}
