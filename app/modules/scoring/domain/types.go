package scoringdomain

import (
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// WinType tags which track a skin was won on.
type WinType string

const (
	WinTypeGross WinType = "gross"
	WinTypeNet   WinType = "net"
)

// HoleScore is one player's result on one hole, with the handicap strokes
// already allocated.
type HoleScore struct {
	PlayerID        sharedtypes.PlayerID `json:"player_id"`
	PlayerName      string               `json:"player_name"`
	GrossScore      int                  `json:"gross_score"`
	NetScore        int                  `json:"net_score"`
	HandicapStrokes int                  `json:"handicap_strokes"`
}

// SkinWinner is a paid-out winner entry on one hole.
type SkinWinner struct {
	PlayerID   sharedtypes.PlayerID `json:"player_id"`
	PlayerName string               `json:"player_name"`
	GrossScore int                  `json:"gross_score"`
	NetScore   int                  `json:"net_score"`
	WinType    WinType              `json:"win_type"`
}

// SkinResult is the outcome of one hole in a skins game.
type SkinResult struct {
	Hole        sharedtypes.HoleNumber `json:"hole"`
	Par         int                    `json:"par"`
	Winners     []SkinWinner           `json:"winners"`
	CarryOver   float64                `json:"carry_over"`
	PrizeAmount float64                `json:"prize_amount"`
}

// SkinsGame is the full per-round skins computation.
type SkinsGame struct {
	TournamentID    sharedtypes.TournamentID `json:"tournament_id"`
	RoundNumber     int                      `json:"round_number"`
	CourseName      string                   `json:"course_name"`
	TotalPrize      float64                  `json:"total_prize"`
	PrizePerHole    float64                  `json:"prize_per_hole"`
	Results         []SkinResult             `json:"results"`
	TotalPaid       float64                  `json:"total_paid"`
	CarryOverAmount float64                  `json:"carry_over_amount"`
}

// StablefordHoleScore is one player's scored hole with both point variants
// and the descriptive result tag.
type StablefordHoleScore struct {
	PlayerID                 sharedtypes.PlayerID `json:"player_id"`
	PlayerName               string               `json:"player_name"`
	GrossScore               int                  `json:"gross_score"`
	NetScore                 int                  `json:"net_score"`
	StablefordPoints         int                  `json:"stableford_points"`
	ModifiedStablefordPoints int                  `json:"modified_stableford_points"`
	Result                   string               `json:"result"`
}

// StablefordHole groups every player's result on one hole.
type StablefordHole struct {
	Hole         sharedtypes.HoleNumber `json:"hole"`
	Par          int                    `json:"par"`
	PlayerScores []StablefordHoleScore  `json:"player_scores"`
}

// PlayerTotal is a player's running Stableford standing. TotalPoints counts
// the selected system only.
type PlayerTotal struct {
	PlayerID    sharedtypes.PlayerID `json:"player_id"`
	PlayerName  string               `json:"player_name"`
	Handicap    int                  `json:"handicap"`
	TotalPoints int                  `json:"total_points"`
	TotalGross  int                  `json:"total_gross"`
	TotalNet    int                  `json:"total_net"`
	Position    int                  `json:"position"`
}

// StablefordResult is the full per-round Stableford computation.
type StablefordResult struct {
	TournamentID sharedtypes.TournamentID  `json:"tournament_id"`
	RoundNumber  int                       `json:"round_number"`
	CourseName   string                    `json:"course_name"`
	System       sharedtypes.ScoringSystem `json:"system"`
	Holes        []StablefordHole          `json:"holes"`
	PlayerTotals []PlayerTotal             `json:"player_totals"`
}

// RoundWithScores is a round plus its recorded hole scores.
type RoundWithScores struct {
	sharedtypes.Round
	Scores []sharedtypes.Score `json:"scores"`
}

// LeaderboardEntry is one player's aggregated tournament standing.
type LeaderboardEntry struct {
	sharedtypes.Player
	Rounds     []RoundWithScores `json:"rounds"`
	TotalGross int               `json:"total_gross"`
	TotalNet   int               `json:"total_net"`
	ToPar      int               `json:"to_par"`
	Position   int               `json:"position"`
	Status     string            `json:"status"`
}
