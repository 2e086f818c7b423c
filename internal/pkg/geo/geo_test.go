package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_ZeroForIdenticalCoordinates(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(21.030, 105.800, 21.030, 105.800))
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	d1 := DistanceMeters(21.030, 105.800, 21.040, 105.810)
	d2 := DistanceMeters(21.040, 105.810, 21.030, 105.800)
	assert.Equal(t, d1, d2)
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// One degree of latitude is ~111,195 m on a 6,371 km sphere, so 500 m is
	// ~0.0044966 degrees due north.
	d := DistanceMeters(21.030, 105.800, 21.030+500.0/111194.9, 105.800)
	assert.InDelta(t, 500.0, d, 5.0) // within 1%
}

func TestWithinRadius(t *testing.T) {
	tests := []struct {
		name               string
		lat, lon           float64
		storeLat, storeLon float64
		radius             float64
		want               bool
	}{
		{"inside", 21.0301, 105.8001, 21.030, 105.800, 500, true},
		{"same point", 21.030, 105.800, 21.030, 105.800, 500, true},
		{"outside", 21.090, 105.800, 21.030, 105.800, 500, false},
		{"unassigned store sentinel", 0.0001, 0.0001, 0, 0, 500, false},
		{"sentinel even with huge radius", 21.030, 105.800, 0, 0, 1e9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinRadius(tt.lat, tt.lon, tt.storeLat, tt.storeLon, tt.radius))
		})
	}
}
