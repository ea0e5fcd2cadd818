package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	gpsservice "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/gps/application"
	gpsdomain "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/gps/domain"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// GPSHandlers handles HTTP requests for on-course GPS readouts.
type GPSHandlers struct {
	service gpsservice.Service
}

func NewGPSHandlers(service gpsservice.Service) *GPSHandlers {
	return &GPSHandlers{service: service}
}

// GetHoleGeometry returns the surveyed layout for a hole.
func (h *GPSHandlers) GetHoleGeometry(w http.ResponseWriter, r *http.Request) {
	courseName := chi.URLParam(r, "courseName")
	hole, ok := parseHole(w, r)
	if !ok {
		return
	}

	geometry, err := h.service.GetHoleGeometry(r.Context(), courseName, hole)
	if err != nil {
		if errors.Is(err, gpsservice.ErrHoleNotSurveyed) {
			http.Error(w, fmt.Sprintf("No GPS data for %s hole %d", courseName, hole), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch hole geometry: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, geometry)
}

// DistancesDto represents the input data for a distance readout.
type DistancesDto struct {
	CourseName string  `json:"course_name"`
	Hole       int     `json:"hole"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// ComputeDistances returns tee, hazard, and landmark yardages from the
// player's position.
func (h *GPSHandlers) ComputeDistances(w http.ResponseWriter, r *http.Request) {
	var input DistancesDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}
	if input.CourseName == "" {
		http.Error(w, "Course name is required", http.StatusBadRequest)
		return
	}

	calculation, err := h.service.ComputeDistances(r.Context(), input.CourseName, sharedtypes.HoleNumber(input.Hole), gpsdomain.Coordinate{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	if err != nil {
		if errors.Is(err, gpsservice.ErrHoleNotSurveyed) {
			http.Error(w, fmt.Sprintf("No GPS data for %s hole %d", input.CourseName, input.Hole), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to compute distances: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, calculation)
}

// Routes sets up the routes for the GPS controller.
func (h *GPSHandlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{courseName}/{hole}", h.GetHoleGeometry)
	r.Post("/distances", h.ComputeDistances)
	return r
}

func parseHole(w http.ResponseWriter, r *http.Request) (sharedtypes.HoleNumber, bool) {
	raw := chi.URLParam(r, "hole")
	hole, err := strconv.Atoi(raw)
	if err != nil || hole < 1 || hole > 18 {
		http.Error(w, "Invalid hole number", http.StatusBadRequest)
		return 0, false
	}
	return sharedtypes.HoleNumber(hole), true
}
