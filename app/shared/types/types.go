package sharedtypes

import "time"

// TournamentID identifies a tournament. IDs are storage-generated; the
// services treat them as opaque keys and never mint their own.
type TournamentID int64

// PlayerID identifies a registered player.
type PlayerID int64

// RoundID identifies a single player's round within a tournament.
type RoundID int64

// ScoreID identifies one recorded hole score.
type ScoreID int64

// HoleNumber is a hole on the course, 1..18.
type HoleNumber int

// Strokes is a raw stroke count for a hole.
type Strokes int

// Handicap is a player's course handicap. Negative values are plus
// handicaps (the player gives strokes back).
type Handicap int

// ScoringSystem selects a Stableford point table.
type ScoringSystem string

const (
	SystemStableford         ScoringSystem = "stableford"
	SystemModifiedStableford ScoringSystem = "modified-stableford"
)

// Valid reports whether the system tag is one we know how to score.
func (s ScoringSystem) Valid() bool {
	return s == SystemStableford || s == SystemModifiedStableford
}

// Tournament is the top-level competition record.
type Tournament struct {
	ID             TournamentID `json:"id"`
	Name           string       `json:"name"`
	StartDate      time.Time    `json:"start_date"`
	EndDate        time.Time    `json:"end_date"`
	Course         string       `json:"course"`
	Location       *string      `json:"location,omitempty"`
	TotalRounds    int          `json:"total_rounds"`
	CurrentRound   int          `json:"current_round"`
	CoursePar      int          `json:"course_par"`
	IsActive       bool         `json:"is_active"`
	TournamentType string       `json:"tournament_type"`
	CreatedAt      time.Time    `json:"created_at"`
}

// Player is a tournament participant.
type Player struct {
	ID           PlayerID      `json:"id"`
	Name         string        `json:"name"`
	Handicap     Handicap      `json:"handicap"`
	TournamentID *TournamentID `json:"tournament_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Round is one player's pass over 18 holes in a given tournament round.
// Gross/net totals and the current-hole pointer are derived bookkeeping,
// recomputed whenever a score arrives.
type Round struct {
	ID           RoundID       `json:"id"`
	PlayerID     *PlayerID     `json:"player_id,omitempty"`
	TournamentID *TournamentID `json:"tournament_id,omitempty"`
	RoundNumber  int           `json:"round_number"`
	CourseName   string        `json:"course_name"`
	GrossScore   *int          `json:"gross_score,omitempty"`
	NetScore     *int          `json:"net_score,omitempty"`
	IsComplete   bool          `json:"is_complete"`
	IsStarted    bool          `json:"is_started"`
	CurrentHole  *HoleNumber   `json:"current_hole,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Score is a single recorded hole result. At most one per (round, hole);
// resubmitting a hole overwrites the stroke count.
type Score struct {
	ID        ScoreID    `json:"id"`
	PlayerID  *PlayerID  `json:"player_id,omitempty"`
	RoundID   *RoundID   `json:"round_id,omitempty"`
	Hole      HoleNumber `json:"hole"`
	Strokes   Strokes    `json:"strokes"`
	CreatedAt time.Time  `json:"created_at"`
}
