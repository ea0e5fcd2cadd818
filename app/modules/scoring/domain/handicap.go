package scoringdomain

import (
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// StrokesForHole returns the handicap strokes a player receives on a hole.
// The base allotment is floor(h/18) on every hole, and the first (h mod 18)
// holes receive one extra stroke. Both floor and mod are the mathematical
// (non-truncating) forms, so plus-handicap players mirror cleanly: strokes
// come out negative (deducted) and the 18-hole sum equals h for every
// integer handicap, not just non-negative ones.
func StrokesForHole(h sharedtypes.Handicap, hole sharedtypes.HoleNumber) int {
	base := floorDiv(int(h), 18)
	extra := mathMod(int(h), 18)
	strokes := base
	if int(hole) <= extra {
		strokes++
	}
	return strokes
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// mathMod is the non-negative remainder of a/b for positive b.
func mathMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
