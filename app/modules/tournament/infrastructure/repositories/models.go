package tournamentdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// Tournament is the bun model for the tournaments table.
type Tournament struct {
	bun.BaseModel `bun:"table:tournaments,alias:t"`

	ID             int64     `bun:"id,pk,autoincrement"`
	Name           string    `bun:"name,notnull"`
	StartDate      time.Time `bun:"start_date,notnull"`
	EndDate        time.Time `bun:"end_date,notnull"`
	Course         *string   `bun:"course"`
	Location       *string   `bun:"location"`
	TotalRounds    int       `bun:"total_rounds,notnull"`
	CurrentRound   int       `bun:"current_round,notnull,default:1"`
	CoursePar      int       `bun:"course_par,notnull,default:72"`
	IsActive       bool      `bun:"is_active,notnull,default:false"`
	TournamentType string    `bun:"tournament_type,notnull,default:'stroke-play'"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Player is the bun model for the players table.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Name         string    `bun:"name,notnull"`
	Handicap     int       `bun:"handicap,notnull,default:0"`
	TournamentID *int64    `bun:"tournament_id"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

func (m *Tournament) toShared() *sharedtypes.Tournament {
	var course string
	if m.Course != nil {
		course = *m.Course
	}
	return &sharedtypes.Tournament{
		ID:             sharedtypes.TournamentID(m.ID),
		Name:           m.Name,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Course:         course,
		Location:       m.Location,
		TotalRounds:    m.TotalRounds,
		CurrentRound:   m.CurrentRound,
		CoursePar:      m.CoursePar,
		IsActive:       m.IsActive,
		TournamentType: m.TournamentType,
		CreatedAt:      m.CreatedAt,
	}
}

func (m *Player) toShared() sharedtypes.Player {
	p := sharedtypes.Player{
		ID:        sharedtypes.PlayerID(m.ID),
		Name:      m.Name,
		Handicap:  sharedtypes.Handicap(m.Handicap),
		CreatedAt: m.CreatedAt,
	}
	if m.TournamentID != nil {
		id := sharedtypes.TournamentID(*m.TournamentID)
		p.TournamentID = &id
	}
	return p
}
