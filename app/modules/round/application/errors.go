package roundservice

import "errors"

var (
	// ErrRoundNotFound is returned when an operation targets a missing round.
	ErrRoundNotFound = errors.New("round not found")

	// ErrScoreMissingRound is returned when a score submission carries no
	// round reference.
	ErrScoreMissingRound = errors.New("score has no round id")

	// ErrInvalidHole is returned for hole numbers outside 1..18.
	ErrInvalidHole = errors.New("hole number out of range")

	// ErrInvalidStrokes is returned for non-positive stroke counts.
	ErrInvalidStrokes = errors.New("strokes must be positive")
)
