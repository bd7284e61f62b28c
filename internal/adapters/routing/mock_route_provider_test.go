package routing

import (
	"context"
	"sync"
	"testing"

	"trip-timeline-service/internal/domain"
)

func TestMockRouteProviderCountsConcurrentFetches(t *testing.T) {
	provider := &MockRouteProvider{}
	coords := []domain.Coordinates{
		{Lat: 41.38, Lng: 2.17},
		{Lat: 41.39, Lng: 2.18},
	}

	const fetches = 8
	var wg sync.WaitGroup
	for i := 0; i < fetches; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := provider.FetchRoute(context.Background(), coords); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := provider.Calls.Load(); n != fetches {
		t.Errorf("Calls = %d, want %d", n, fetches)
	}
}
