package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	roundservice "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/application"
	rounddb "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/infrastructure/repositories"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// maxScorecardBytes caps uploaded scorecard size.
const maxScorecardBytes = 5 << 20

// RoundHandlers handles HTTP requests for rounds and scores.
type RoundHandlers struct {
	service roundservice.Service
	roundDB rounddb.RoundDB
}

func NewRoundHandlers(service roundservice.Service, roundDB rounddb.RoundDB) *RoundHandlers {
	return &RoundHandlers{service: service, roundDB: roundDB}
}

// GetRound retrieves a specific round by ID.
func (h *RoundHandlers) GetRound(w http.ResponseWriter, r *http.Request) {
	roundID, ok := parseRoundID(w, r)
	if !ok {
		return
	}

	round, err := h.roundDB.GetRound(r.Context(), roundID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch round: %v", err), http.StatusInternalServerError)
		return
	}
	if round == nil {
		http.Error(w, "Round not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, round)
}

// GetPlayerRounds lists a player's rounds across the tournament.
func (h *RoundHandlers) GetPlayerRounds(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "playerID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		http.Error(w, "Invalid player ID", http.StatusBadRequest)
		return
	}

	rounds, err := h.roundDB.GetRoundsByPlayer(r.Context(), sharedtypes.PlayerID(id))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch rounds: %v", err), http.StatusInternalServerError)
		return
	}
	if rounds == nil {
		rounds = []sharedtypes.Round{}
	}

	writeJSON(w, http.StatusOK, rounds)
}

// StartRound marks a round as underway.
func (h *RoundHandlers) StartRound(w http.ResponseWriter, r *http.Request) {
	roundID, ok := parseRoundID(w, r)
	if !ok {
		return
	}

	round, err := h.service.StartRound(r.Context(), roundID)
	if err != nil {
		if errors.Is(err, roundservice.ErrRoundNotFound) {
			http.Error(w, "Round not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to start round: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, round)
}

// RecordScoreDto represents the input data for recording a hole score.
type RecordScoreDto struct {
	PlayerID *int64 `json:"player_id,omitempty"`
	RoundID  int64  `json:"round_id"`
	Hole     int    `json:"hole"`
	Strokes  int    `json:"strokes"`
}

// RecordScoreResponse pairs the stored score with the recomputed round.
type RecordScoreResponse struct {
	Score *sharedtypes.Score `json:"score"`
	Round *sharedtypes.Round `json:"round"`
}

// RecordScore records one hole score and returns the recomputed round.
func (h *RoundHandlers) RecordScore(w http.ResponseWriter, r *http.Request) {
	var input RecordScoreDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	rid := sharedtypes.RoundID(input.RoundID)
	score := &sharedtypes.Score{
		RoundID: &rid,
		Hole:    sharedtypes.HoleNumber(input.Hole),
		Strokes: sharedtypes.Strokes(input.Strokes),
	}
	if input.PlayerID != nil {
		pid := sharedtypes.PlayerID(*input.PlayerID)
		score.PlayerID = &pid
	}

	recorded, round, err := h.service.RecordScore(r.Context(), score)
	if err != nil {
		switch {
		case errors.Is(err, roundservice.ErrRoundNotFound):
			http.Error(w, "Round not found", http.StatusNotFound)
		case errors.Is(err, roundservice.ErrScoreMissingRound),
			errors.Is(err, roundservice.ErrInvalidHole),
			errors.Is(err, roundservice.ErrInvalidStrokes):
			http.Error(w, fmt.Sprintf("Invalid score: %v", err), http.StatusBadRequest)
		default:
			http.Error(w, fmt.Sprintf("Failed to record score: %v", err), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, RecordScoreResponse{Score: recorded, Round: round})
}

// ImportScorecard ingests an uploaded XLSX scorecard for a tournament round.
// The sheet arrives either as a multipart "scorecard" file or as the raw
// request body.
func (h *RoundHandlers) ImportScorecard(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := parseTournamentID(w, r)
	if !ok {
		return
	}
	roundNumber, err := strconv.Atoi(chi.URLParam(r, "roundNumber"))
	if err != nil || roundNumber < 1 {
		http.Error(w, "Invalid round number", http.StatusBadRequest)
		return
	}

	data, err := readScorecard(w, r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read scorecard upload: %v", err), http.StatusBadRequest)
		return
	}

	summary, err := h.service.ImportScorecard(r.Context(), tournamentID, roundNumber, data)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to import scorecard: %v", err), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func readScorecard(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxScorecardBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(maxScorecardBytes); err != nil {
			return nil, fmt.Errorf("failed to parse multipart upload: %w", err)
		}
		file, _, err := r.FormFile("scorecard")
		if err != nil {
			return nil, fmt.Errorf("multipart upload missing scorecard file: %w", err)
		}
		defer file.Close()
		return io.ReadAll(file)
	}

	return io.ReadAll(r.Body)
}

// Routes sets up the routes for the round controller.
func (h *RoundHandlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{roundID}", h.GetRound)
	r.Post("/{roundID}/start", h.StartRound)
	return r
}

func parseRoundID(w http.ResponseWriter, r *http.Request) (sharedtypes.RoundID, bool) {
	raw := chi.URLParam(r, "roundID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		http.Error(w, "Invalid round ID", http.StatusBadRequest)
		return 0, false
	}
	return sharedtypes.RoundID(id), true
}
