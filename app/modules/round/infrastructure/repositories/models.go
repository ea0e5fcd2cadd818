package rounddb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// Round is the bun model for the rounds table. Aggregate columns are null
// until the first score lands.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID           int64     `bun:"id,pk,autoincrement"`
	PlayerID     *int64    `bun:"player_id"`
	TournamentID *int64    `bun:"tournament_id"`
	RoundNumber  int       `bun:"round_number,notnull"`
	CourseName   string    `bun:"course_name,notnull"`
	GrossScore   *int      `bun:"gross_score"`
	NetScore     *int      `bun:"net_score"`
	IsComplete   bool      `bun:"is_complete,notnull,default:false"`
	IsStarted    bool      `bun:"is_started,notnull,default:false"`
	CurrentHole  *int      `bun:"current_hole"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Score is the bun model for the scores table, one row per recorded hole.
type Score struct {
	bun.BaseModel `bun:"table:scores,alias:s"`

	ID        int64     `bun:"id,pk,autoincrement"`
	PlayerID  *int64    `bun:"player_id"`
	RoundID   *int64    `bun:"round_id"`
	Hole      int       `bun:"hole,notnull"`
	Strokes   int       `bun:"strokes,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

func (m *Round) toShared() sharedtypes.Round {
	r := sharedtypes.Round{
		ID:          sharedtypes.RoundID(m.ID),
		RoundNumber: m.RoundNumber,
		CourseName:  m.CourseName,
		GrossScore:  m.GrossScore,
		NetScore:    m.NetScore,
		IsComplete:  m.IsComplete,
		IsStarted:   m.IsStarted,
		CreatedAt:   m.CreatedAt,
	}
	if m.PlayerID != nil {
		id := sharedtypes.PlayerID(*m.PlayerID)
		r.PlayerID = &id
	}
	if m.TournamentID != nil {
		id := sharedtypes.TournamentID(*m.TournamentID)
		r.TournamentID = &id
	}
	if m.CurrentHole != nil {
		hole := sharedtypes.HoleNumber(*m.CurrentHole)
		r.CurrentHole = &hole
	}
	return r
}

func (m *Score) toShared() sharedtypes.Score {
	s := sharedtypes.Score{
		ID:        sharedtypes.ScoreID(m.ID),
		Hole:      sharedtypes.HoleNumber(m.Hole),
		Strokes:   sharedtypes.Strokes(m.Strokes),
		CreatedAt: m.CreatedAt,
	}
	if m.PlayerID != nil {
		id := sharedtypes.PlayerID(*m.PlayerID)
		s.PlayerID = &id
	}
	if m.RoundID != nil {
		id := sharedtypes.RoundID(*m.RoundID)
		s.RoundID = &id
	}
	return s
}
