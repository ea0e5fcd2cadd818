// Package sharedevents defines the JetStream topics and payloads the
// modules publish. Consumers subscribe by topic constant, never by literal.
package sharedevents

import (
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

const (
	TournamentCreated  = "tournament.created"
	PlayerRegistered   = "player.registered"
	RoundStarted       = "round.started"
	ScoreRecorded      = "score.recorded"
	RoundCompleted     = "round.completed"
	ScorecardImported  = "scorecard.imported"
	LeaderboardUpdated = "leaderboard.updated"
)

// PlayerRegisteredPayload announces a new tournament registration with the
// rounds pre-created for the player.
type PlayerRegisteredPayload struct {
	Player   sharedtypes.Player    `json:"player"`
	RoundIDs []sharedtypes.RoundID `json:"round_ids"`
}

// RoundStartedPayload announces a player teeing off.
type RoundStartedPayload struct {
	Round sharedtypes.Round `json:"round"`
}

// ScoreRecordedPayload announces one recorded hole plus the round's
// recomputed aggregates. PreviousStrokes is set when the entry overwrote an
// earlier submission for the same hole.
type ScoreRecordedPayload struct {
	Score           sharedtypes.Score    `json:"score"`
	Round           sharedtypes.Round    `json:"round"`
	PreviousStrokes *sharedtypes.Strokes `json:"previous_strokes,omitempty"`
}

// RoundCompletedPayload announces the eighteenth hole landing.
type RoundCompletedPayload struct {
	Round sharedtypes.Round `json:"round"`
}

// ScorecardImportedPayload announces a bulk spreadsheet import.
type ScorecardImportedPayload struct {
	TournamentID    sharedtypes.TournamentID `json:"tournament_id"`
	RoundNumber     int                      `json:"round_number"`
	PlayersImported int                      `json:"players_imported"`
	HolesAdded      int                      `json:"holes_added"`
}

// LeaderboardUpdatedPayload tells standings consumers to refetch.
type LeaderboardUpdatedPayload struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
}
