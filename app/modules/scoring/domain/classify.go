package scoringdomain

import (
	"fmt"

	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// NetScore is the gross stroke count less the handicap strokes allotted for
// the hole.
func NetScore(gross sharedtypes.Strokes, handicapStrokes int) int {
	return int(gross) - handicapStrokes
}

// ResultName names a net result relative to par. Anything beyond triple
// bogey falls through to a literal "+N".
func ResultName(net, par int) string {
	switch scoreToPar := net - par; {
	case scoreToPar <= -3:
		return "Albatross"
	case scoreToPar == -2:
		return "Eagle"
	case scoreToPar == -1:
		return "Birdie"
	case scoreToPar == 0:
		return "Par"
	case scoreToPar == 1:
		return "Bogey"
	case scoreToPar == 2:
		return "Double Bogey"
	case scoreToPar == 3:
		return "Triple Bogey"
	default:
		return fmt.Sprintf("+%d", scoreToPar)
	}
}

// Points scores a hole under the selected Stableford variant. Traditional
// Stableford floors at zero from net double bogey onward; the modified table
// pays richer rewards and keeps punishing past double bogey.
func Points(gross sharedtypes.Strokes, par, handicapStrokes int, system sharedtypes.ScoringSystem) int {
	scoreToPar := NetScore(gross, handicapStrokes) - par

	if system == sharedtypes.SystemStableford {
		switch {
		case scoreToPar <= -2:
			return 4
		case scoreToPar == -1:
			return 3
		case scoreToPar == 0:
			return 2
		case scoreToPar == 1:
			return 1
		default:
			return 0
		}
	}

	switch {
	case scoreToPar <= -3:
		return 8
	case scoreToPar == -2:
		return 5
	case scoreToPar == -1:
		return 2
	case scoreToPar == 0:
		return 0
	case scoreToPar == 1:
		return -1
	case scoreToPar == 2:
		return -3
	default:
		return -5
	}
}
