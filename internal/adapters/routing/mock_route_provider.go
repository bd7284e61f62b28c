package routing

import (
	"context"
	"sync/atomic"

	"trip-timeline-service/internal/domain"
	"trip-timeline-service/internal/ports"
)

// MockRouteProvider is a test double for the RouteProvider port. With a nil
// Fn it behaves like an unreachable routing service; Calls counts fetches
// so tests can assert on caching and short-circuit behavior. The counter is
// atomic because the trip planner fetches from concurrent goroutines.
type MockRouteProvider struct {
	Fn    func(coords []domain.Coordinates) *ports.RouteResult
	Calls atomic.Int64
}

func (m *MockRouteProvider) FetchRoute(ctx context.Context, coords []domain.Coordinates) (*ports.RouteResult, error) {
	m.Calls.Add(1)
	if m.Fn == nil {
		return nil, nil
	}
	return m.Fn(coords), nil
}
