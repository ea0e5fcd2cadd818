package roundservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/application/parsers"
	sharedevents "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/events"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
)

// ImportScorecard ingests a committee-uploaded XLSX scorecard for one
// tournament round. Rows are matched to registered players by name
// (case-insensitive); unmatched rows are reported, not fatal. Recomputation
// of each touched round is deferred to the job queue.
func (s *RoundService) ImportScorecard(ctx context.Context, tournamentID sharedtypes.TournamentID, roundNumber int, data []byte) (summary *ImportSummary, err error) {
	ctx, finish := s.instrument(ctx, "ImportScorecard")
	defer finish(&err)

	card, err := parsers.ParseXLSX(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scorecard: %w", err)
	}

	players, err := s.players.GetPlayersByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	playersByName := make(map[string]sharedtypes.Player, len(players))
	for _, p := range players {
		playersByName[strings.ToLower(p.Name)] = p
	}

	rounds, err := s.repo.GetRoundsByTournamentRound(ctx, tournamentID, roundNumber)
	if err != nil {
		return nil, err
	}
	roundByPlayer := make(map[sharedtypes.PlayerID]sharedtypes.Round, len(rounds))
	for _, r := range rounds {
		if r.PlayerID != nil {
			roundByPlayer[*r.PlayerID] = r
		}
	}

	summary = &ImportSummary{}
	for _, row := range card.PlayerScores {
		player, ok := playersByName[strings.ToLower(row.PlayerName)]
		if !ok {
			summary.SkippedPlayers = append(summary.SkippedPlayers, row.PlayerName)
			s.logger.WarnContext(ctx, "Scorecard row for unregistered player",
				attr.ExtractCorrelationID(ctx),
				attr.String("player_name", row.PlayerName),
			)
			continue
		}
		round, ok := roundByPlayer[player.ID]
		if !ok {
			summary.SkippedPlayers = append(summary.SkippedPlayers, row.PlayerName)
			s.logger.WarnContext(ctx, "Scorecard row for player without a round",
				attr.ExtractCorrelationID(ctx),
				attr.PlayerID("player_id", player.ID),
			)
			continue
		}

		recordedHoles, err := s.importPlayerRow(ctx, player, round, row)
		if err != nil {
			return nil, err
		}
		summary.PlayersImported++
		summary.ScoresRecorded += recordedHoles

		if s.enqueuer != nil {
			if qErr := s.enqueuer.EnqueueRecompute(ctx, round.ID); qErr != nil {
				return nil, fmt.Errorf("failed to enqueue recompute for round %d: %w", round.ID, qErr)
			}
		}
	}

	s.metrics.RecordScorecardImport(ctx, summary.PlayersImported)
	s.logger.InfoContext(ctx, "Scorecard imported",
		attr.ExtractCorrelationID(ctx),
		attr.TournamentID("tournament_id", tournamentID),
		attr.Int("round_number", roundNumber),
		attr.Int("players_imported", summary.PlayersImported),
		attr.Int("scores_recorded", summary.ScoresRecorded),
	)

	payload := sharedevents.ScorecardImportedPayload{
		TournamentID:    tournamentID,
		RoundNumber:     roundNumber,
		PlayersImported: summary.PlayersImported,
		HolesAdded:      summary.ScoresRecorded,
	}
	if pubErr := s.eventBus.Publish(ctx, sharedevents.ScorecardImported, payload); pubErr != nil {
		s.logger.WarnContext(ctx, "Failed to publish scorecard imported event",
			attr.ExtractCorrelationID(ctx), attr.Error(pubErr))
	}
	return summary, nil
}

func (s *RoundService) importPlayerRow(ctx context.Context, player sharedtypes.Player, round sharedtypes.Round, row parsers.PlayerScoreRow) (int, error) {
	recorded := 0
	for i, strokes := range row.HoleScores {
		if strokes <= 0 {
			// Blank cells mean the hole was not played.
			continue
		}
		pid := player.ID
		rid := round.ID
		_, err := s.repo.UpsertScore(ctx, &sharedtypes.Score{
			PlayerID: &pid,
			RoundID:  &rid,
			Hole:     sharedtypes.HoleNumber(i + 1),
			Strokes:  sharedtypes.Strokes(strokes),
		})
		if err != nil {
			return recorded, fmt.Errorf("failed to record hole %d for player %d: %w", i+1, player.ID, err)
		}
		recorded++
	}
	return recorded, nil
}
