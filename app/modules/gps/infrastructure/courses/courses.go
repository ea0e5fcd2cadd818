// Package courses holds the surveyed hole geometry for the club's courses.
// The data is static: survey updates ship as code changes, and lookups never
// mutate it, so concurrent readers need no locking.
package courses

import (
	gpsdomain "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/gps/domain"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// Registry maps course names to their surveyed holes.
type Registry map[string][]gpsdomain.HoleGeometry

// HoleGeometry returns the surveyed layout for a hole, or false when the
// course or hole has not been surveyed.
func (r Registry) HoleGeometry(courseName string, hole sharedtypes.HoleNumber) (gpsdomain.HoleGeometry, bool) {
	for _, h := range r[courseName] {
		if h.Hole == hole {
			return h, true
		}
	}
	return gpsdomain.HoleGeometry{}, false
}

// DancingRabbit is the survey data for the Dancing Rabbit Golf Club's two
// courses. Coverage is partial; unsurveyed holes report as not found.
func DancingRabbit() Registry {
	azaleas := []gpsdomain.HoleGeometry{
		{
			Hole: 1,
			Par:  4,
			TeeBoxes: []gpsdomain.TeeBox{
				{Name: "Black Tees", Coordinates: gpsdomain.Coordinate{Latitude: 33.2345, Longitude: -89.1234}, Yardage: 420},
				{Name: "Blue Tees", Coordinates: gpsdomain.Coordinate{Latitude: 33.2346, Longitude: -89.1235}, Yardage: 390},
				{Name: "White Tees", Coordinates: gpsdomain.Coordinate{Latitude: 33.2347, Longitude: -89.1236}, Yardage: 360},
				{Name: "Red Tees", Coordinates: gpsdomain.Coordinate{Latitude: 33.2348, Longitude: -89.1237}, Yardage: 310},
			},
			Pin: gpsdomain.Coordinate{Latitude: 33.2360, Longitude: -89.1250},
			Hazards: []gpsdomain.Hazard{
				{Type: gpsdomain.HazardWater, Name: "Creek crossing fairway", Coordinates: gpsdomain.Coordinate{Latitude: 33.2355, Longitude: -89.1245}},
				{Type: gpsdomain.HazardSand, Name: "Right greenside bunker", Coordinates: gpsdomain.Coordinate{Latitude: 33.2359, Longitude: -89.1249}},
			},
			Landmarks: []gpsdomain.Landmark{
				{Type: gpsdomain.LandmarkFairway, Name: "Landing area", Coordinates: gpsdomain.Coordinate{Latitude: 33.2350, Longitude: -89.1240}},
				{Type: gpsdomain.LandmarkGreen, Name: "Green center", Coordinates: gpsdomain.Coordinate{Latitude: 33.2360, Longitude: -89.1250}},
			},
		},
		{
			Hole: 2,
			Par:  4,
			TeeBoxes: []gpsdomain.TeeBox{
				{Name: "Black Tees", Coordinates: gpsdomain.Coordinate{Latitude: 33.2365, Longitude: -89.1260}, Yardage: 385},
				{Name: "Blue Tees", Coordinates: gpsdomain.Coordinate{Latitude: 33.2366, Longitude: -89.1261}, Yardage: 365},
				{Name: "White Tees", Coordinates: gpsdomain.Coordinate{Latitude: 33.2367, Longitude: -89.1262}, Yardage: 340},
				{Name: "Red Tees", Coordinates: gpsdomain.Coordinate{Latitude: 33.2368, Longitude: -89.1263}, Yardage: 290},
			},
			Pin: gpsdomain.Coordinate{Latitude: 33.2380, Longitude: -89.1275},
			Hazards: []gpsdomain.Hazard{
				{Type: gpsdomain.HazardSand, Name: "Left fairway bunker", Coordinates: gpsdomain.Coordinate{Latitude: 33.2370, Longitude: -89.1265}},
				{Type: gpsdomain.HazardSand, Name: "Green front bunker", Coordinates: gpsdomain.Coordinate{Latitude: 33.2378, Longitude: -89.1273}},
			},
			Landmarks: []gpsdomain.Landmark{
				{Type: gpsdomain.LandmarkFairway, Name: "Dogleg turn", Coordinates: gpsdomain.Coordinate{Latitude: 33.2375, Longitude: -89.1270}},
				{Type: gpsdomain.LandmarkGreen, Name: "Green center", Coordinates: gpsdomain.Coordinate{Latitude: 33.2380, Longitude: -89.1275}},
			},
		},
	}

	oaks := []gpsdomain.HoleGeometry{
		{
			Hole: 1,
			Par:  4,
			TeeBoxes: []gpsdomain.TeeBox{
				{Name: "Black Tees", Coordinates: gpsdomain.Coordinate{Latitude: 33.2400, Longitude: -89.1300}, Yardage: 410},
				{Name: "Blue Tees", Coordinates: gpsdomain.Coordinate{Latitude: 33.2401, Longitude: -89.1301}, Yardage: 380},
				{Name: "White Tees", Coordinates: gpsdomain.Coordinate{Latitude: 33.2402, Longitude: -89.1302}, Yardage: 350},
				{Name: "Red Tees", Coordinates: gpsdomain.Coordinate{Latitude: 33.2403, Longitude: -89.1303}, Yardage: 300},
			},
			Pin: gpsdomain.Coordinate{Latitude: 33.2415, Longitude: -89.1315},
			Hazards: []gpsdomain.Hazard{
				{Type: gpsdomain.HazardWater, Name: "Pond left of green", Coordinates: gpsdomain.Coordinate{Latitude: 33.2413, Longitude: -89.1313}},
				{Type: gpsdomain.HazardSand, Name: "Right fairway bunker", Coordinates: gpsdomain.Coordinate{Latitude: 33.2408, Longitude: -89.1308}},
			},
			Landmarks: []gpsdomain.Landmark{
				{Type: gpsdomain.LandmarkFairway, Name: "Fairway center", Coordinates: gpsdomain.Coordinate{Latitude: 33.2407, Longitude: -89.1307}},
				{Type: gpsdomain.LandmarkGreen, Name: "Green center", Coordinates: gpsdomain.Coordinate{Latitude: 33.2415, Longitude: -89.1315}},
			},
		},
	}

	return Registry{
		"Azaleas Course": azaleas,
		"Oaks Course":    oaks,
	}
}
