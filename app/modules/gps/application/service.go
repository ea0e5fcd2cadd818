package gpsservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	gpsdomain "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/gps/domain"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
	gpsmetrics "github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/metrics/gps"
)

const (
	hazardRangeYards   = 200
	landmarkRangeYards = 300
)

// ErrHoleNotSurveyed is returned when a course or hole has no geometry on
// record.
var ErrHoleNotSurveyed = errors.New("gps data not found")

// GeometrySource supplies surveyed hole layouts.
type GeometrySource interface {
	HoleGeometry(courseName string, hole sharedtypes.HoleNumber) (gpsdomain.HoleGeometry, bool)
}

// Service is the on-course GPS surface.
type Service interface {
	GetHoleGeometry(ctx context.Context, courseName string, hole sharedtypes.HoleNumber) (*gpsdomain.HoleGeometry, error)
	ComputeDistances(ctx context.Context, courseName string, hole sharedtypes.HoleNumber, playerLocation gpsdomain.Coordinate) (*gpsdomain.DistanceCalculation, error)
}

// GPSService computes distance readouts from surveyed geometry.
type GPSService struct {
	geometry GeometrySource
	logger   *slog.Logger
	metrics  gpsmetrics.GPSMetrics
	tracer   trace.Tracer
}

func NewGPSService(geometry GeometrySource, logger *slog.Logger, metrics gpsmetrics.GPSMetrics, tracer trace.Tracer) Service {
	return &GPSService{
		geometry: geometry,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
	}
}

// GetHoleGeometry returns the surveyed layout for a hole.
func (s *GPSService) GetHoleGeometry(ctx context.Context, courseName string, hole sharedtypes.HoleNumber) (*gpsdomain.HoleGeometry, error) {
	_, span := s.tracer.Start(ctx, "GetHoleGeometry", trace.WithAttributes(
		attribute.String("course", courseName),
		attribute.Int("hole", int(hole)),
	))
	defer span.End()

	s.metrics.RecordLookupAttempt(ctx, "GetHoleGeometry")
	geometry, ok := s.geometry.HoleGeometry(courseName, hole)
	if !ok {
		s.metrics.RecordLookupMiss(ctx, "GetHoleGeometry")
		return nil, fmt.Errorf("%w for %s hole %d", ErrHoleNotSurveyed, courseName, hole)
	}
	s.metrics.RecordLookupSuccess(ctx, "GetHoleGeometry")
	return &geometry, nil
}

// ComputeDistances builds the player's distance readout for a hole: yards to
// the pin, back to each tee, and to every hazard within 200 yards and
// landmark within 300 yards, nearest first.
func (s *GPSService) ComputeDistances(ctx context.Context, courseName string, hole sharedtypes.HoleNumber, playerLocation gpsdomain.Coordinate) (*gpsdomain.DistanceCalculation, error) {
	ctx, span := s.tracer.Start(ctx, "ComputeDistances", trace.WithAttributes(
		attribute.String("course", courseName),
		attribute.Int("hole", int(hole)),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordLookupDuration(ctx, time.Since(start))
	}()

	s.metrics.RecordLookupAttempt(ctx, "ComputeDistances")
	geometry, ok := s.geometry.HoleGeometry(courseName, hole)
	if !ok {
		s.metrics.RecordLookupMiss(ctx, "ComputeDistances")
		s.logger.WarnContext(ctx, "GPS lookup for unsurveyed hole",
			attr.ExtractCorrelationID(ctx),
			attr.String("course", courseName),
			attr.Hole("hole", hole),
		)
		return nil, fmt.Errorf("%w for %s hole %d", ErrHoleNotSurveyed, courseName, hole)
	}

	calc := &gpsdomain.DistanceCalculation{
		Hole:           hole,
		PlayerLocation: playerLocation,
		DistanceToPin:  gpsdomain.YardsBetween(playerLocation, geometry.Pin),
	}

	calc.DistanceToTees = make([]gpsdomain.TeeDistance, 0, len(geometry.TeeBoxes))
	for _, tee := range geometry.TeeBoxes {
		calc.DistanceToTees = append(calc.DistanceToTees, gpsdomain.TeeDistance{
			Name:     tee.Name,
			Distance: gpsdomain.YardsBetween(playerLocation, tee.Coordinates),
		})
	}

	for _, hazard := range geometry.Hazards {
		distance := gpsdomain.YardsBetween(playerLocation, hazard.Coordinates)
		if distance > hazardRangeYards {
			continue
		}
		calc.NearbyHazards = append(calc.NearbyHazards, gpsdomain.HazardDistance{
			Type:     hazard.Type,
			Name:     hazard.Name,
			Distance: distance,
		})
	}
	sort.SliceStable(calc.NearbyHazards, func(i, j int) bool {
		return calc.NearbyHazards[i].Distance < calc.NearbyHazards[j].Distance
	})

	for _, landmark := range geometry.Landmarks {
		distance := gpsdomain.YardsBetween(playerLocation, landmark.Coordinates)
		if distance > landmarkRangeYards {
			continue
		}
		calc.NearbyLandmarks = append(calc.NearbyLandmarks, gpsdomain.LandmarkDistance{
			Type:     landmark.Type,
			Name:     landmark.Name,
			Distance: distance,
		})
	}
	sort.SliceStable(calc.NearbyLandmarks, func(i, j int) bool {
		return calc.NearbyLandmarks[i].Distance < calc.NearbyLandmarks[j].Distance
	})

	s.metrics.RecordLookupSuccess(ctx, "ComputeDistances")
	return calc, nil
}
