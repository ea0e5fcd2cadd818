package gpsdomain

import "math"

const (
	earthRadiusMeters = 6371e3
	yardsPerMeter     = 1.09361
)

// YardsBetween returns the great-circle distance between two coordinates,
// rounded to whole yards. Haversine on a spherical earth is accurate to well
// under a yard at on-course scales.
func YardsBetween(from, to Coordinate) int {
	lat1 := from.Latitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	dLat := (to.Latitude - from.Latitude) * math.Pi / 180
	dLon := (to.Longitude - from.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	meters := earthRadiusMeters * c
	return int(math.Round(meters * yardsPerMeter))
}
