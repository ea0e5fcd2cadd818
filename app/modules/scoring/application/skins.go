package scoringservice

import (
	"context"
	"fmt"

	scoringdomain "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/domain"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
)

const holesPerRound = 18

// ComputeSkins runs the skins game for one tournament round. Each hole is
// worth totalPrize/18 plus whatever carried over; a hole pays out only when
// the gross track or the net track produces a single outright winner, and
// unwon holes push one hole's base prize onto the carry-over.
func (s *ScoringService) ComputeSkins(ctx context.Context, tournamentID sharedtypes.TournamentID, roundNumber int, totalPrize float64) (*scoringdomain.SkinsGame, error) {
	return serviceWrapper(ctx, s, "ComputeSkins", tournamentID, func(ctx context.Context) (*scoringdomain.SkinsGame, error) {
		if _, err := s.lookupTournament(ctx, tournamentID); err != nil {
			return nil, err
		}

		players, err := s.players.GetPlayersByTournament(ctx, tournamentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get players: %w", err)
		}

		rounds, err := s.rounds.GetRoundsByTournamentRound(ctx, tournamentID, roundNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to get rounds: %w", err)
		}

		courseName := "Unknown Course"
		if len(rounds) > 0 && rounds[0].CourseName != "" {
			courseName = rounds[0].CourseName
		}
		course := s.courses.Config(courseName)

		holeScores, err := s.collectHoleScores(ctx, players, rounds)
		if err != nil {
			return nil, err
		}

		prizePerHole := totalPrize / holesPerRound
		game := &scoringdomain.SkinsGame{
			TournamentID: tournamentID,
			RoundNumber:  roundNumber,
			CourseName:   courseName,
			TotalPrize:   totalPrize,
			PrizePerHole: prizePerHole,
			Results:      make([]scoringdomain.SkinResult, 0, holesPerRound),
		}

		carryOver := 0.0
		carriedHoles := 0

		for hole := sharedtypes.HoleNumber(1); hole <= holesPerRound; hole++ {
			par := course.Pars.Par(hole)
			scores := holeScores[hole]

			grossWinners := findSkinWinners(scores, scoringdomain.WinTypeGross)
			netWinners := findSkinWinners(scores, scoringdomain.WinTypeNet)

			currentPrize := prizePerHole + carryOver
			var winners []scoringdomain.SkinWinner
			prizeAmount := 0.0

			switch {
			case len(grossWinners) == 1 && len(netWinners) == 1:
				winners = []scoringdomain.SkinWinner{
					asWinner(grossWinners[0], scoringdomain.WinTypeGross),
					asWinner(netWinners[0], scoringdomain.WinTypeNet),
				}
				prizeAmount = currentPrize
				carryOver = 0
			case len(grossWinners) == 1:
				winners = []scoringdomain.SkinWinner{asWinner(grossWinners[0], scoringdomain.WinTypeGross)}
				prizeAmount = currentPrize
				carryOver = 0
			case len(netWinners) == 1:
				winners = []scoringdomain.SkinWinner{asWinner(netWinners[0], scoringdomain.WinTypeNet)}
				prizeAmount = currentPrize
				carryOver = 0
			default:
				// Tied or unscored holes carry one hole's base prize, not the
				// accumulated pot again.
				carryOver += prizePerHole
				carriedHoles++
			}

			game.TotalPaid += prizeAmount
			game.Results = append(game.Results, scoringdomain.SkinResult{
				Hole:        hole,
				Par:         par,
				Winners:     winners,
				CarryOver:   carryOver,
				PrizeAmount: prizeAmount,
			})
		}

		game.CarryOverAmount = carryOver
		s.metrics.RecordSkinsCarryOver(ctx, carriedHoles)
		s.logger.InfoContext(ctx, "Skins game computed",
			attr.ExtractCorrelationID(ctx),
			attr.TournamentID("tournament_id", tournamentID),
			attr.Int("round_number", roundNumber),
			attr.Float64("total_paid", game.TotalPaid),
			attr.Int("carried_holes", carriedHoles),
		)

		return game, nil
	})
}

// collectHoleScores gathers every recorded stroke for the given rounds into
// per-hole score lists with handicap strokes applied. Rounds whose player is
// not in the tournament roster are skipped.
func (s *ScoringService) collectHoleScores(
	ctx context.Context,
	players []sharedtypes.Player,
	rounds []sharedtypes.Round,
) (map[sharedtypes.HoleNumber][]scoringdomain.HoleScore, error) {
	roster := make(map[sharedtypes.PlayerID]sharedtypes.Player, len(players))
	for _, p := range players {
		roster[p.ID] = p
	}

	holeScores := make(map[sharedtypes.HoleNumber][]scoringdomain.HoleScore, holesPerRound)
	for _, round := range rounds {
		if round.PlayerID == nil {
			continue
		}
		player, ok := roster[*round.PlayerID]
		if !ok {
			continue
		}

		scores, err := s.scores.GetScoresByRound(ctx, round.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get scores for round %d: %w", round.ID, err)
		}

		for _, score := range scores {
			handicapStrokes := scoringdomain.StrokesForHole(player.Handicap, score.Hole)
			holeScores[score.Hole] = append(holeScores[score.Hole], scoringdomain.HoleScore{
				PlayerID:        player.ID,
				PlayerName:      player.Name,
				GrossScore:      int(score.Strokes),
				NetScore:        scoringdomain.NetScore(score.Strokes, handicapStrokes),
				HandicapStrokes: handicapStrokes,
			})
		}
	}
	return holeScores, nil
}

// findSkinWinners returns every score tied for the lowest on the requested
// track. A skin is only awarded when the returned slice has exactly one
// entry.
func findSkinWinners(scores []scoringdomain.HoleScore, track scoringdomain.WinType) []scoringdomain.HoleScore {
	if len(scores) == 0 {
		return nil
	}

	key := func(hs scoringdomain.HoleScore) int {
		if track == scoringdomain.WinTypeGross {
			return hs.GrossScore
		}
		return hs.NetScore
	}

	best := key(scores[0])
	for _, hs := range scores[1:] {
		if k := key(hs); k < best {
			best = k
		}
	}

	var winners []scoringdomain.HoleScore
	for _, hs := range scores {
		if key(hs) == best {
			winners = append(winners, hs)
		}
	}
	return winners
}

func asWinner(hs scoringdomain.HoleScore, track scoringdomain.WinType) scoringdomain.SkinWinner {
	return scoringdomain.SkinWinner{
		PlayerID:   hs.PlayerID,
		PlayerName: hs.PlayerName,
		GrossScore: hs.GrossScore,
		NetScore:   hs.NetScore,
		WinType:    track,
	}
}
