package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	scoringservice "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/application"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// fallbackSkinsPrize covers construction with an unset configuration.
const fallbackSkinsPrize = 1800.0

// ScoringHandlers handles HTTP requests for computed standings.
type ScoringHandlers struct {
	service      scoringservice.Service
	defaultPrize float64
}

// NewScoringHandlers builds the standings handlers. defaultPrize is the skins
// pot used when a request does not name one; zero falls back to the
// configuration default.
func NewScoringHandlers(service scoringservice.Service, defaultPrize float64) *ScoringHandlers {
	if defaultPrize <= 0 {
		defaultPrize = fallbackSkinsPrize
	}
	return &ScoringHandlers{service: service, defaultPrize: defaultPrize}
}

// GetLeaderboard computes the tournament leaderboard.
func (h *ScoringHandlers) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := parseTournamentID(w, r)
	if !ok {
		return
	}

	leaderboard, err := h.service.ComputeLeaderboard(r.Context(), tournamentID)
	if err != nil {
		h.writeScoringError(w, err, "Failed to compute leaderboard")
		return
	}

	writeJSON(w, http.StatusOK, leaderboard)
}

// GetSkins computes the skins game for one tournament round. The pot comes
// from the "prize" query parameter.
func (h *ScoringHandlers) GetSkins(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := parseTournamentID(w, r)
	if !ok {
		return
	}
	roundNumber, ok := parseRoundNumber(w, r)
	if !ok {
		return
	}

	prize := h.defaultPrize
	if raw := r.URL.Query().Get("prize"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid prize amount", http.StatusBadRequest)
			return
		}
		prize = parsed
	}

	skins, err := h.service.ComputeSkins(r.Context(), tournamentID, roundNumber, prize)
	if err != nil {
		h.writeScoringError(w, err, "Failed to compute skins")
		return
	}

	writeJSON(w, http.StatusOK, skins)
}

// GetStableford computes Stableford standings for one tournament round. The
// point table comes from the "system" query parameter.
func (h *ScoringHandlers) GetStableford(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := parseTournamentID(w, r)
	if !ok {
		return
	}
	roundNumber, ok := parseRoundNumber(w, r)
	if !ok {
		return
	}

	system := sharedtypes.SystemStableford
	if raw := r.URL.Query().Get("system"); raw != "" {
		system = sharedtypes.ScoringSystem(raw)
	}

	result, err := h.service.ComputeStableford(r.Context(), tournamentID, roundNumber, system)
	if err != nil {
		h.writeScoringError(w, err, "Failed to compute stableford standings")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetStandingsChart renders the leaderboard as a PNG bar chart.
func (h *ScoringHandlers) GetStandingsChart(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := parseTournamentID(w, r)
	if !ok {
		return
	}

	leaderboard, err := h.service.ComputeLeaderboard(r.Context(), tournamentID)
	if err != nil {
		h.writeScoringError(w, err, "Failed to compute leaderboard")
		return
	}

	png, err := scoringservice.RenderStandingsChart(leaderboard, scoringservice.DefaultChartPalette)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to render chart: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *ScoringHandlers) writeScoringError(w http.ResponseWriter, err error, prefix string) {
	switch {
	case errors.Is(err, scoringservice.ErrTournamentNotFound):
		http.Error(w, "Tournament not found", http.StatusNotFound)
	case errors.Is(err, scoringservice.ErrInvalidScoringSystem):
		http.Error(w, fmt.Sprintf("%s: %v", prefix, err), http.StatusBadRequest)
	default:
		http.Error(w, fmt.Sprintf("%s: %v", prefix, err), http.StatusInternalServerError)
	}
}

func parseRoundNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "roundNumber")
	roundNumber, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "Invalid round number", http.StatusBadRequest)
		return 0, false
	}
	return roundNumber, true
}
