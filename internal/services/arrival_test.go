package services

import (
	"testing"

	"trip-timeline-service/internal/domain"
)

func TestCalculateArrivalTimeIndexZero(t *testing.T) {
	stops := []domain.Stop{
		{ID: "a", Name: "a"},
		{ID: "b", Name: "b"},
	}

	if got := CalculateArrivalTime(stops, nil, 0, ""); got != "09:00" {
		t.Errorf("arrival = %q, want default start 09:00", got)
	}
	if got := CalculateArrivalTime(nil, nil, 0, "10:30"); got != "10:30" {
		t.Errorf("arrival = %q, want supplied start 10:30", got)
	}
}

func TestCalculateArrivalTimeAccumulatesDwellAndTravel(t *testing.T) {
	a := domain.Stop{ID: "a", DurationMinutes: minutes(45)}
	b := domain.Stop{ID: "b"} // default 60 dwell
	c := domain.Stop{ID: "c"}

	segments := []*domain.TravelSegment{travel(10), travel(20)}

	// 09:00 + 45 dwell + 10 travel = 09:55
	if got := CalculateArrivalTime([]domain.Stop{a, b, c}, segments, 1, ""); got != "09:55" {
		t.Errorf("arrival at b = %q, want 09:55", got)
	}

	// 09:55 + 60 dwell + 20 travel = 11:15
	if got := CalculateArrivalTime([]domain.Stop{a, b, c}, segments, 2, ""); got != "11:15" {
		t.Errorf("arrival at c = %q, want 11:15", got)
	}
}

func TestCalculateArrivalTimeAbsentSegmentsCountZero(t *testing.T) {
	a := domain.Stop{ID: "a"}
	b := domain.Stop{ID: "b"}

	if got := CalculateArrivalTime([]domain.Stop{a, b}, []*domain.TravelSegment{nil}, 1, ""); got != "10:00" {
		t.Errorf("arrival = %q, want 10:00 with absent segment", got)
	}
}

func TestCalculateArrivalTimeWaitsForOpening(t *testing.T) {
	a := domain.Stop{ID: "a", OpeningTime: "10:00", ClosingTime: "18:00"}
	b := domain.Stop{ID: "b"}

	// The walk waits at a until 10:00, then dwells 60: arrival at b 11:00.
	if got := CalculateArrivalTime([]domain.Stop{a, b}, []*domain.TravelSegment{travel(0)}, 1, ""); got != "11:00" {
		t.Errorf("arrival = %q, want 11:00", got)
	}
}
