package domain

import "github.com/golang/geo/s2"

const earthRadiusKm = 6371.0

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as [lng, lat] for routing API compatibility.
func (c Coordinates) LngLat() []float64 { return []float64{c.Lng, c.Lat} }

// DistanceKm returns the great-circle distance to another coordinate in kilometers.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	a := s2.LatLngFromDegrees(c.Lat, c.Lng)
	b := s2.LatLngFromDegrees(other.Lat, other.Lng)
	return a.Distance(b).Radians() * earthRadiusKm
}
