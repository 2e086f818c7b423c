package store

import "time"

type StoreLocation struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLocation reports whether the store has real coordinates assigned. The
// (0,0) pair is the "no location" sentinel and never satisfies geofencing.
func (s StoreLocation) HasLocation() bool {
	return s.Latitude != 0 || s.Longitude != 0
}
