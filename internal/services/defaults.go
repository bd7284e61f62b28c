package services

import "trip-timeline-service/internal/domain"

// Scheduling defaults and thresholds, tunable per deployment.
const (
	// DefaultStartTime is the wall-clock start of a planned day.
	DefaultStartTime = "09:00"
	// DefaultDwellMinutes applies when a stop has no declared visit length.
	DefaultDwellMinutes = 60
	// RushThreshold is the clock time past which stops are flagged as rushed.
	RushThreshold = "21:00"

	// WalkingMaxKm is the walking/transit cutoff for day-route legs.
	WalkingMaxKm = 3.0
	// PairWalkingMaxKm is the cutoff for the single-pair convenience query.
	PairWalkingMaxKm = 5.0
	// WalkingSpeedKmh is the assumed pedestrian speed for recomputed durations.
	WalkingSpeedKmh = 5.0

	// maxConcurrentFetches bounds per-day route fan-out against the routing
	// service.
	maxConcurrentFetches = 4
)

// dwellMinutes returns a stop's visit length. An explicit zero (lodging
// anchors) is preserved; unspecified falls back to the default.
func dwellMinutes(stop domain.Stop) int {
	if stop.DurationMinutes != nil {
		return *stop.DurationMinutes
	}
	return DefaultDwellMinutes
}
