package scoringservice

import "errors"

var (
	// ErrTournamentNotFound is returned when a computation targets a
	// tournament that storage does not have.
	ErrTournamentNotFound = errors.New("tournament not found")

	// ErrInvalidScoringSystem is returned when a Stableford request names an
	// unknown point system.
	ErrInvalidScoringSystem = errors.New("invalid scoring system")
)
