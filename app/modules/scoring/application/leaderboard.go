package scoringservice

import (
	"context"
	"fmt"
	"sort"

	scoringdomain "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/domain"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
)

// ComputeLeaderboard aggregates every registered player's rounds into gross
// and net totals and ranks them ascending by net.
//
// ToPar counts course par once per round record, including rounds with no
// strokes yet. Pre-created rounds for future tournament days therefore pull
// a player's to-par down until they tee off. Kept intentionally: the club
// reads mid-tournament to-par this way.
func (s *ScoringService) ComputeLeaderboard(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]scoringdomain.LeaderboardEntry, error) {
	return serviceWrapper(ctx, s, "ComputeLeaderboard", tournamentID, func(ctx context.Context) ([]scoringdomain.LeaderboardEntry, error) {
		tournament, err := s.lookupTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}

		players, err := s.players.GetPlayersByTournament(ctx, tournamentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get players: %w", err)
		}

		entries := make([]scoringdomain.LeaderboardEntry, 0, len(players))
		for _, player := range players {
			entry, err := s.buildLeaderboardEntry(ctx, tournament, player)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}

		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].TotalNet < entries[j].TotalNet
		})
		for i := range entries {
			entries[i].Position = i + 1
		}

		s.metrics.RecordPlayersRanked(ctx, "ComputeLeaderboard", len(entries))
		s.logger.InfoContext(ctx, "Leaderboard computed",
			attr.ExtractCorrelationID(ctx),
			attr.TournamentID("tournament_id", tournamentID),
			attr.Int("players", len(entries)),
		)

		return entries, nil
	})
}

func (s *ScoringService) buildLeaderboardEntry(
	ctx context.Context,
	tournament *sharedtypes.Tournament,
	player sharedtypes.Player,
) (scoringdomain.LeaderboardEntry, error) {
	playerRounds, err := s.rounds.GetRoundsByPlayer(ctx, player.ID)
	if err != nil {
		return scoringdomain.LeaderboardEntry{}, fmt.Errorf("failed to get rounds for player %d: %w", player.ID, err)
	}

	roundsWithScores := make([]scoringdomain.RoundWithScores, 0, len(playerRounds))
	totalGross := 0
	totalNet := 0
	for _, round := range playerRounds {
		scores, err := s.scores.GetScoresByRound(ctx, round.ID)
		if err != nil {
			return scoringdomain.LeaderboardEntry{}, fmt.Errorf("failed to get scores for round %d: %w", round.ID, err)
		}
		roundsWithScores = append(roundsWithScores, scoringdomain.RoundWithScores{
			Round:  round,
			Scores: scores,
		})
		if round.GrossScore != nil {
			totalGross += *round.GrossScore
		}
		if round.NetScore != nil {
			totalNet += *round.NetScore
		}
	}

	toPar := totalNet - tournament.CoursePar*len(roundsWithScores)

	status := "Not Started"
	for _, round := range roundsWithScores {
		if round.RoundNumber != tournament.CurrentRound {
			continue
		}
		if round.IsComplete {
			status = "Completed"
		} else {
			currentHole := sharedtypes.HoleNumber(1)
			if round.CurrentHole != nil {
				currentHole = *round.CurrentHole
			}
			status = fmt.Sprintf("Playing - Hole %d", currentHole)
		}
		break
	}

	return scoringdomain.LeaderboardEntry{
		Player:     player,
		Rounds:     roundsWithScores,
		TotalGross: totalGross,
		TotalNet:   totalNet,
		ToPar:      toPar,
		Status:     status,
	}, nil
}
