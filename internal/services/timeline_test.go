package services

import (
	"context"
	"math"
	"testing"

	"trip-timeline-service/internal/adapters/routing"
	"trip-timeline-service/internal/domain"
	"trip-timeline-service/internal/ports"
)

func TestBuildDayTimelineEmptyInput(t *testing.T) {
	provider := &routing.MockRouteProvider{}
	if timeline := BuildDayTimeline(context.Background(), provider, nil, nil, ""); timeline != nil {
		t.Fatalf("timeline = %+v, want nil", timeline)
	}
}

func TestBuildDayTimelineSingleStop(t *testing.T) {
	provider := &routing.MockRouteProvider{}

	t.Run("explicit zero duration", func(t *testing.T) {
		s := stop("anchor", 0, coord(41.38, 2.17))
		s.DurationMinutes = minutes(0)

		timeline := BuildDayTimeline(context.Background(), provider, []domain.Stop{s}, nil, "")
		if timeline == nil {
			t.Fatal("timeline is nil")
		}
		got := timeline.Stops[0]
		if got.ArrivalTime != "09:00" || got.DepartureTime != "09:00" {
			t.Errorf("arrival/departure = %s/%s, want 09:00/09:00", got.ArrivalTime, got.DepartureTime)
		}
	})

	t.Run("unspecified duration defaults", func(t *testing.T) {
		s := stop("a", 0, coord(41.38, 2.17))

		timeline := BuildDayTimeline(context.Background(), provider, []domain.Stop{s}, nil, "")
		if timeline == nil {
			t.Fatal("timeline is nil")
		}
		got := timeline.Stops[0]
		if got.ArrivalTime != "09:00" || got.DepartureTime != "10:00" {
			t.Errorf("arrival/departure = %s/%s, want 09:00/10:00", got.ArrivalTime, got.DepartureTime)
		}
	})
}

func TestBuildDayTimelineRoutingUnavailable(t *testing.T) {
	// Two stops 1 km apart, no opening hours, default durations, routing
	// down: the itinerary still renders fully, only segments are missing.
	provider := &routing.MockRouteProvider{}

	stops := []domain.Stop{
		stop("b", 1, coord(41.39, 2.18)),
		stop("a", 0, coord(41.38, 2.17)),
	}

	timeline := BuildDayTimeline(context.Background(), provider, stops, nil, "")
	if timeline == nil {
		t.Fatal("timeline is nil")
	}

	if len(timeline.Segments) != 1 || timeline.Segments[0] != nil {
		t.Fatalf("segments = %v, want [nil]", timeline.Segments)
	}
	if timeline.Stops[0].ID != "a" || timeline.Stops[1].ID != "b" {
		t.Fatalf("stops not sorted by order: %s, %s", timeline.Stops[0].ID, timeline.Stops[1].ID)
	}

	first, second := timeline.Stops[0], timeline.Stops[1]
	if first.ArrivalTime != "09:00" || first.DepartureTime != "10:00" {
		t.Errorf("stop 0 = %s/%s, want 09:00/10:00", first.ArrivalTime, first.DepartureTime)
	}
	if second.ArrivalTime != "10:00" || second.DepartureTime != "11:00" {
		t.Errorf("stop 1 = %s/%s, want 10:00/11:00", second.ArrivalTime, second.DepartureTime)
	}

	if len(timeline.Conflicts) != 0 {
		t.Errorf("conflicts = %+v, want none", timeline.Conflicts)
	}
	if timeline.TotalDistanceKm != 0 || timeline.TotalTravelMinutes != 0 {
		t.Errorf("totals = %f km / %d min, want 0/0", timeline.TotalDistanceKm, timeline.TotalTravelMinutes)
	}
	if timeline.StartTime != "09:00" || timeline.EndTime != "11:00" {
		t.Errorf("start/end = %s/%s, want 09:00/11:00", timeline.StartTime, timeline.EndTime)
	}
}

func TestBuildDayTimelineClosedStop(t *testing.T) {
	s := stop("a", 0, coord(41.38, 2.17))
	s.OpeningTime, s.ClosingTime = "08:00", "09:00"

	timeline := BuildDayTimeline(context.Background(), &routing.MockRouteProvider{}, []domain.Stop{s}, nil, "")
	if timeline == nil {
		t.Fatal("timeline is nil")
	}
	if len(timeline.Conflicts) != 1 || timeline.Conflicts[0].Type != domain.ConflictClosed {
		t.Fatalf("conflicts = %+v, want one closed conflict", timeline.Conflicts)
	}
}

func TestBuildDayTimelineTotalsSumNonAbsentSegments(t *testing.T) {
	provider := &routing.MockRouteProvider{Fn: fixedRoute(
		ports.RouteLeg{DistanceKm: 1.0, DurationMinutes: 4},
		ports.RouteLeg{DistanceKm: 6.0, DurationMinutes: 18},
	)}

	stops := []domain.Stop{
		stop("a", 0, coord(41.38, 2.17)),
		stop("b", 1, coord(41.39, 2.18)),
		stop("c", 2, coord(41.45, 2.25)),
	}

	timeline := BuildDayTimeline(context.Background(), provider, stops, nil, "")
	if timeline == nil {
		t.Fatal("timeline is nil")
	}

	// walking leg 1 km -> ceil(12) = 12 min, transit leg keeps 18 min.
	if math.Abs(timeline.TotalDistanceKm-7.0) > 1e-9 {
		t.Errorf("TotalDistanceKm = %f, want 7.0", timeline.TotalDistanceKm)
	}
	if timeline.TotalTravelMinutes != 30 {
		t.Errorf("TotalTravelMinutes = %d, want 30", timeline.TotalTravelMinutes)
	}
}

func TestBuildDayTimelineReusesPrecomputedSegments(t *testing.T) {
	provider := &routing.MockRouteProvider{Fn: fixedRoute(ports.RouteLeg{DistanceKm: 1, DurationMinutes: 5})}

	stops := []domain.Stop{
		stop("a", 0, coord(41.38, 2.17)),
		stop("b", 1, coord(41.39, 2.18)),
	}
	precomputed := []*domain.TravelSegment{
		{From: stops[0], To: stops[1], DistanceKm: 1.0, DurationMinutes: 12, Mode: domain.ModeWalking},
	}

	timeline := BuildDayTimeline(context.Background(), provider, stops, precomputed, "")
	if timeline == nil {
		t.Fatal("timeline is nil")
	}
	if n := provider.Calls.Load(); n != 0 {
		t.Errorf("provider called %d times, want 0 with precomputed segments", n)
	}
	if timeline.Stops[1].ArrivalTime != "10:12" {
		t.Errorf("stop 1 arrival = %s, want 10:12", timeline.Stops[1].ArrivalTime)
	}
}

func TestBuildDayTimelineIgnoresMismatchedPrecomputedSegments(t *testing.T) {
	provider := &routing.MockRouteProvider{Fn: fixedRoute(
		ports.RouteLeg{DistanceKm: 1, DurationMinutes: 5},
		ports.RouteLeg{DistanceKm: 1, DurationMinutes: 5},
	)}

	stops := []domain.Stop{
		stop("a", 0, coord(41.38, 2.17)),
		stop("b", 1, coord(41.39, 2.18)),
		stop("c", 2, coord(41.40, 2.19)),
	}
	// Wrong count: must be discarded and refetched.
	precomputed := []*domain.TravelSegment{travel(99)}

	_ = BuildDayTimeline(context.Background(), provider, stops, precomputed, "")
	if n := provider.Calls.Load(); n != 1 {
		t.Errorf("provider called %d times, want 1", n)
	}
}
