package scoringservice

import (
	"context"
	"fmt"
	"sort"

	scoringdomain "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/domain"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
)

// ComputeStableford scores one tournament round under the selected points
// system. Every registered player appears in the totals, including ones with
// no recorded strokes yet; per-hole detail carries both variants so a client
// can flip systems without recomputing.
func (s *ScoringService) ComputeStableford(ctx context.Context, tournamentID sharedtypes.TournamentID, roundNumber int, system sharedtypes.ScoringSystem) (*scoringdomain.StablefordResult, error) {
	return serviceWrapper(ctx, s, "ComputeStableford", tournamentID, func(ctx context.Context) (*scoringdomain.StablefordResult, error) {
		if !system.Valid() {
			return nil, ErrInvalidScoringSystem
		}

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

		totals := make(map[sharedtypes.PlayerID]*scoringdomain.PlayerTotal, len(players))
		for _, p := range players {
			totals[p.ID] = &scoringdomain.PlayerTotal{
				PlayerID:   p.ID,
				PlayerName: p.Name,
				Handicap:   int(p.Handicap),
			}
		}

		result := &scoringdomain.StablefordResult{
			TournamentID: tournamentID,
			RoundNumber:  roundNumber,
			CourseName:   courseName,
			System:       system,
			Holes:        make([]scoringdomain.StablefordHole, 0, holesPerRound),
		}

		for hole := sharedtypes.HoleNumber(1); hole <= holesPerRound; hole++ {
			par := course.Pars.Par(hole)
			playerScores := make([]scoringdomain.StablefordHoleScore, 0, len(holeScores[hole]))

			for _, hs := range holeScores[hole] {
				gross := sharedtypes.Strokes(hs.GrossScore)
				standard := scoringdomain.Points(gross, par, hs.HandicapStrokes, sharedtypes.SystemStableford)
				modified := scoringdomain.Points(gross, par, hs.HandicapStrokes, sharedtypes.SystemModifiedStableford)

				playerScores = append(playerScores, scoringdomain.StablefordHoleScore{
					PlayerID:                 hs.PlayerID,
					PlayerName:               hs.PlayerName,
					GrossScore:               hs.GrossScore,
					NetScore:                 hs.NetScore,
					StablefordPoints:         standard,
					ModifiedStablefordPoints: modified,
					Result:                   scoringdomain.ResultName(hs.NetScore, par),
				})

				total := totals[hs.PlayerID]
				if system == sharedtypes.SystemStableford {
					total.TotalPoints += standard
				} else {
					total.TotalPoints += modified
				}
				total.TotalGross += hs.GrossScore
				total.TotalNet += hs.NetScore
			}

			result.Holes = append(result.Holes, scoringdomain.StablefordHole{
				Hole:         hole,
				Par:          par,
				PlayerScores: playerScores,
			})
		}

		// Preserve roster order among equal totals so ranking is stable
		// across recomputations.
		playerTotals := make([]scoringdomain.PlayerTotal, 0, len(players))
		for _, p := range players {
			playerTotals = append(playerTotals, *totals[p.ID])
		}
		sort.SliceStable(playerTotals, func(i, j int) bool {
			return playerTotals[i].TotalPoints > playerTotals[j].TotalPoints
		})
		for i := range playerTotals {
			playerTotals[i].Position = i + 1
		}
		result.PlayerTotals = playerTotals

		s.metrics.RecordPlayersRanked(ctx, "ComputeStableford", len(playerTotals))
		s.logger.InfoContext(ctx, "Stableford standings computed",
			attr.ExtractCorrelationID(ctx),
			attr.TournamentID("tournament_id", tournamentID),
			attr.Int("round_number", roundNumber),
			attr.String("system", string(system)),
			attr.Int("players", len(playerTotals)),
		)

		return result, nil
	})
}
