// Package parsers turns uploaded scorecard spreadsheets into structured
// rows. The expected shape is a header row, a "Par" row with 18 hole pars,
// and one row per player with 18 stroke counts.
package parsers

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const scorecardHoles = 18

// PlayerScoreRow is one player's strokes from an uploaded scorecard.
type PlayerScoreRow struct {
	PlayerName string
	HoleScores []int
}

// ParsedScorecard is the structured form of an uploaded scorecard sheet.
type ParsedScorecard struct {
	ParScores    []int
	PlayerScores []PlayerScoreRow
}

// ParseXLSX reads the first sheet of an XLSX scorecard.
func ParseXLSX(data []byte) (*ParsedScorecard, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return parseRows(rows)
}

// parseRows holds the sheet-shape logic so tests can exercise it without
// building spreadsheet files.
func parseRows(rows [][]string) (*ParsedScorecard, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("scorecard sheet is empty")
	}

	parRowIndex, parScores, err := findParRow(rows)
	if err != nil {
		return nil, err
	}
	if parScores == nil {
		return nil, fmt.Errorf("no par row found in scorecard")
	}
	if len(parScores) != scorecardHoles {
		return nil, fmt.Errorf("par row has %d holes, want %d", len(parScores), scorecardHoles)
	}

	players, err := extractPlayerScores(rows, parRowIndex)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("no player rows found in scorecard")
	}

	return &ParsedScorecard{
		ParScores:    parScores,
		PlayerScores: players,
	}, nil
}

// findParRow identifies the par row by its "Par" label in the first column.
func findParRow(rows [][]string) (int, []int, error) {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(row[0]), "Par") {
			continue
		}
		parScores, err := parseScoreRow(row[1:])
		if err != nil {
			return -1, nil, fmt.Errorf("invalid par row at line %d: %w", i+1, err)
		}
		for _, par := range parScores {
			if par < 3 || par > 6 {
				return -1, nil, fmt.Errorf("invalid par row at line %d: par %d out of range", i+1, par)
			}
		}
		return i, parScores, nil
	}
	return -1, nil, nil
}

// parseScoreRow converts cell values to stroke counts. Blanks and dash
// placeholders become zero so hole positions survive partial rounds.
func parseScoreRow(row []string) ([]int, error) {
	var scores []int
	for _, val := range row {
		val = strings.TrimSpace(val)
		if val == "" || val == "-" {
			scores = append(scores, 0)
			continue
		}
		score, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("non-numeric score value: %q", val)
		}
		if score < 0 {
			return nil, fmt.Errorf("negative score value: %d", score)
		}
		scores = append(scores, score)
	}
	return scores, nil
}

func extractPlayerScores(rows [][]string, parRowIndex int) ([]PlayerScoreRow, error) {
	var players []PlayerScoreRow

	for i, row := range rows {
		// Header and par rows are structural, not player data.
		if i == 0 || i == parRowIndex {
			continue
		}
		if len(row) == 0 {
			continue
		}

		playerName := strings.TrimSpace(row[0])
		if playerName == "" {
			continue
		}

		scores, err := parseScoreRow(row[1:])
		if err != nil {
			// Rows that don't parse as scores are stray labels, not errors.
			continue
		}
		played := 0
		for _, strokes := range scores {
			if strokes > 0 {
				played++
			}
		}
		if played == 0 {
			continue
		}
		if len(scores) > scorecardHoles {
			scores = scores[:scorecardHoles]
		}

		players = append(players, PlayerScoreRow{
			PlayerName: playerName,
			HoleScores: scores,
		})
	}

	return players, nil
}
