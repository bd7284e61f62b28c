package ports

import (
	"context"

	"trip-timeline-service/internal/domain"
)

// RouteLeg is the routing service's unit of travel information between two
// consecutive input coordinates.
type RouteLeg struct {
	DistanceKm      float64
	DurationMinutes int
}

// RouteResult is one fetched route covering an ordered coordinate list.
type RouteResult struct {
	Path       []domain.Coordinates
	DistanceKm float64
	Legs       []RouteLeg // one per consecutive coordinate pair
}

// RouteProvider is the boundary for the external routing computation.
//
// Implementations return (nil, nil) for every expected failure mode: fewer
// than two coordinates, timeout, transport error, non-success status, or an
// empty route set. Callers must treat an absent route as a normal outcome,
// not an exceptional one.
type RouteProvider interface {
	FetchRoute(ctx context.Context, coords []domain.Coordinates) (*RouteResult, error)
}
