package gpsdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYardsBetween(t *testing.T) {
	tee := Coordinate{Latitude: 33.2345, Longitude: -89.1234}
	pin := Coordinate{Latitude: 33.2360, Longitude: -89.1250}

	t.Run("zero distance to self", func(t *testing.T) {
		assert.Equal(t, 0, YardsBetween(tee, tee))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, YardsBetween(tee, pin), YardsBetween(pin, tee))
	})

	// One millidegree of latitude is about 111.2 meters everywhere on the
	// sphere, which converts to 122 whole yards.
	t.Run("known meridian distance", func(t *testing.T) {
		assert.Equal(t, 122, YardsBetween(Coordinate{}, Coordinate{Latitude: 0.001}))
	})

	t.Run("tee shot scale", func(t *testing.T) {
		assert.Equal(t, 244, YardsBetween(tee, pin))
	})
}
