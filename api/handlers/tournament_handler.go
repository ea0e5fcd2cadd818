package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	tournamentservice "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/tournament/application"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// TournamentHandlers handles HTTP requests for tournaments and registration.
type TournamentHandlers struct {
	service tournamentservice.Service
}

func NewTournamentHandlers(service tournamentservice.Service) *TournamentHandlers {
	return &TournamentHandlers{service: service}
}

// CreateTournamentDto represents the input data for creating a tournament.
type CreateTournamentDto struct {
	Name           string    `json:"name"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Course         string    `json:"course"`
	Location       *string   `json:"location,omitempty"`
	TotalRounds    int       `json:"total_rounds"`
	CoursePar      int       `json:"course_par"`
	TournamentType string    `json:"tournament_type"`
}

// CreateTournament creates a new tournament.
func (h *TournamentHandlers) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var input CreateTournamentDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}
	if input.Name == "" {
		http.Error(w, "Tournament name is required", http.StatusBadRequest)
		return
	}

	tournament, err := h.service.CreateTournament(r.Context(), &sharedtypes.Tournament{
		Name:           input.Name,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Course:         input.Course,
		Location:       input.Location,
		TotalRounds:    input.TotalRounds,
		CoursePar:      input.CoursePar,
		TournamentType: input.TournamentType,
		IsActive:       true,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create tournament: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, tournament)
}

// GetActiveTournament retrieves the most recently created active tournament.
func (h *TournamentHandlers) GetActiveTournament(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.service.GetActiveTournament(r.Context())
	if err != nil {
		if errors.Is(err, tournamentservice.ErrNoActiveTournament) {
			http.Error(w, "No active tournament", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch active tournament: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, tournament)
}

// GetTournament retrieves a tournament by ID.
func (h *TournamentHandlers) GetTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := parseTournamentID(w, r)
	if !ok {
		return
	}

	tournament, err := h.service.GetTournament(r.Context(), tournamentID)
	if err != nil {
		if errors.Is(err, tournamentservice.ErrTournamentNotFound) {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch tournament: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, tournament)
}

// GetStats reports registration and progress counters for a tournament.
func (h *TournamentHandlers) GetStats(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := parseTournamentID(w, r)
	if !ok {
		return
	}

	stats, err := h.service.GetStats(r.Context(), tournamentID)
	if err != nil {
		if errors.Is(err, tournamentservice.ErrTournamentNotFound) {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch tournament stats: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// AdvanceRound moves a tournament onto its next round.
func (h *TournamentHandlers) AdvanceRound(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := parseTournamentID(w, r)
	if !ok {
		return
	}

	tournament, err := h.service.AdvanceRound(r.Context(), tournamentID)
	if err != nil {
		switch {
		case errors.Is(err, tournamentservice.ErrTournamentNotFound):
			http.Error(w, "Tournament not found", http.StatusNotFound)
		case errors.Is(err, tournamentservice.ErrTournamentFinished):
			http.Error(w, "Tournament is on its final round", http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to advance tournament: %v", err), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, tournament)
}

// RegisterPlayerDto represents the input data for registering a player.
type RegisterPlayerDto struct {
	Name     string `json:"name"`
	Handicap int    `json:"handicap"`
}

// RegisterPlayer registers a player and pre-creates their rounds.
func (h *TournamentHandlers) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := parseTournamentID(w, r)
	if !ok {
		return
	}

	var input RegisterPlayerDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}
	if input.Name == "" {
		http.Error(w, "Player name is required", http.StatusBadRequest)
		return
	}

	tid := tournamentID
	player, err := h.service.RegisterPlayer(r.Context(), &sharedtypes.Player{
		Name:         input.Name,
		Handicap:     sharedtypes.Handicap(input.Handicap),
		TournamentID: &tid,
	})
	if err != nil {
		if errors.Is(err, tournamentservice.ErrTournamentNotFound) {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to register player: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, player)
}

// GetPlayers lists the players registered in a tournament.
func (h *TournamentHandlers) GetPlayers(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := parseTournamentID(w, r)
	if !ok {
		return
	}

	players, err := h.service.GetPlayersByTournament(r.Context(), tournamentID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch players: %v", err), http.StatusInternalServerError)
		return
	}
	if players == nil {
		players = []sharedtypes.Player{}
	}

	writeJSON(w, http.StatusOK, players)
}

func parseTournamentID(w http.ResponseWriter, r *http.Request) (sharedtypes.TournamentID, bool) {
	raw := chi.URLParam(r, "tournamentID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		http.Error(w, "Invalid tournament ID", http.StatusBadRequest)
		return 0, false
	}
	return sharedtypes.TournamentID(id), true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}
