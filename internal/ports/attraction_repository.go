package ports

import (
	"context"

	"trip-timeline-service/internal/domain"
)

// Port: a boundary for retrieving and storing the attractions a trip plans.
type AttractionRepository interface {
	// ListByTrip returns every stop of a trip across all days.
	ListByTrip(ctx context.Context, tripID string) ([]*domain.Stop, error)
	// ListByDay returns one day's stops for a trip.
	ListByDay(ctx context.Context, tripID string, day int) ([]*domain.Stop, error)
	// Create stores a new stop, assigning an ID when the caller left it empty.
	Create(ctx context.Context, tripID string, stop *domain.Stop) error
}
