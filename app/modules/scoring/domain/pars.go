package scoringdomain

import (
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// ParTable holds the par for each of the 18 holes, index 0 = hole 1.
type ParTable [18]int

// Par returns the par for a hole number (1..18).
func (t ParTable) Par(hole sharedtypes.HoleNumber) int {
	return t[hole-1]
}

// Total is the course par, the sum over all 18 holes.
func (t ParTable) Total() int {
	sum := 0
	for _, par := range t {
		sum += par
	}
	return sum
}

// StandardPars is the default par-72 layout used when a course has no
// registered configuration.
var StandardPars = ParTable{
	4, 4, 3, 4, 5, 4, 3, 4, 4, // Front 9
	4, 5, 3, 4, 4, 3, 4, 5, 4, // Back 9
}

// StandardStrokeIndex ranks holes by difficulty, index 0 = hole 1. Stroke
// index 1 is the hardest hole.
var StandardStrokeIndex = [18]int{
	5, 11, 17, 1, 9, 7, 15, 3, 13,
	6, 10, 18, 2, 8, 16, 4, 12, 14,
}

// CourseConfig is the per-course scoring configuration. Multi-course
// tournaments register one per course instead of sharing a hardcoded table.
type CourseConfig struct {
	Name        string
	Pars        ParTable
	StrokeIndex [18]int
}

// StandardCourse builds a course config on the standard par-72 layout.
func StandardCourse(name string) CourseConfig {
	return CourseConfig{
		Name:        name,
		Pars:        StandardPars,
		StrokeIndex: StandardStrokeIndex,
	}
}

// Catalog maps course names to their configurations. Lookups for
// unregistered courses fall back to the standard layout.
type Catalog map[string]CourseConfig

// Config returns the registered configuration for a course, or the standard
// layout when none is registered.
func (c Catalog) Config(courseName string) CourseConfig {
	if cfg, ok := c[courseName]; ok {
		return cfg
	}
	return StandardCourse(courseName)
}
