package gpsdomain

import (
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HazardType tags the kind of hazard a marker describes.
type HazardType string

const (
	HazardWater HazardType = "water"
	HazardSand  HazardType = "sand"
	HazardTrees HazardType = "trees"
)

// LandmarkType tags the kind of reference point a marker describes.
type LandmarkType string

const (
	LandmarkFairway LandmarkType = "fairway"
	LandmarkGreen   LandmarkType = "green"
	LandmarkDogleg  LandmarkType = "dogleg"
)

// TeeBox is a named tee with its surveyed position and card yardage.
type TeeBox struct {
	Name        string     `json:"name"`
	Coordinates Coordinate `json:"coordinates"`
	Yardage     int        `json:"yardage"`
}

// Hazard is a surveyed hazard marker on a hole.
type Hazard struct {
	Type        HazardType `json:"type"`
	Name        string     `json:"name"`
	Coordinates Coordinate `json:"coordinates"`
}

// Landmark is a surveyed reference point on a hole.
type Landmark struct {
	Type        LandmarkType `json:"type"`
	Name        string       `json:"name"`
	Coordinates Coordinate   `json:"coordinates"`
}

// HoleGeometry is the full surveyed layout of one hole.
type HoleGeometry struct {
	Hole      sharedtypes.HoleNumber `json:"hole"`
	Par       int                    `json:"par"`
	TeeBoxes  []TeeBox               `json:"tee_boxes"`
	Pin       Coordinate             `json:"pin"`
	Hazards   []Hazard               `json:"hazards"`
	Landmarks []Landmark             `json:"landmarks"`
}

// TeeDistance is the player's distance back to a tee box, in yards.
type TeeDistance struct {
	Name     string `json:"name"`
	Distance int    `json:"distance"`
}

// HazardDistance is a hazard within caddie-call range of the player.
type HazardDistance struct {
	Type     HazardType `json:"type"`
	Name     string     `json:"name"`
	Distance int        `json:"distance"`
}

// LandmarkDistance is a landmark within caddie-call range of the player.
type LandmarkDistance struct {
	Type     LandmarkType `json:"type"`
	Name     string       `json:"name"`
	Distance int          `json:"distance"`
}

// DistanceCalculation is the on-course distance readout for one player
// position. Hazards and landmarks are filtered to nearby ones and sorted
// closest first; tee distances keep the surveyed tee order.
type DistanceCalculation struct {
	Hole            sharedtypes.HoleNumber `json:"hole"`
	PlayerLocation  Coordinate             `json:"player_location"`
	DistanceToPin   int                    `json:"distance_to_pin"`
	DistanceToTees  []TeeDistance          `json:"distance_to_tees"`
	NearbyHazards   []HazardDistance       `json:"nearby_hazards"`
	NearbyLandmarks []LandmarkDistance     `json:"nearby_landmarks"`
}
