package geo

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

// DistanceMeters returns the great-circle distance between two coordinates in
// meters, computed with the haversine formula.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// WithinRadius reports whether a position lies inside the circular geofence
// around a store. The boundary itself counts as inside. A store at the (0,0)
// sentinel has no real location and can never be satisfied.
func WithinRadius(lat, lon, storeLat, storeLon, radiusMeters float64) bool {
	if storeLat == 0 && storeLon == 0 {
		return false
	}
	return DistanceMeters(lat, lon, storeLat, storeLon) <= radiusMeters
}
