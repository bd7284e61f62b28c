package services

import (
	"context"

	"trip-timeline-service/internal/domain"
	"trip-timeline-service/internal/ports"
)

// BuildDayTimeline assembles one ordered, time-stamped itinerary from an
// arbitrarily ordered set of stops for a single day. Returns nil for an
// empty stop set.
//
// When the caller supplies precomputed segments whose count matches
// len(stops)-1, they are used as-is and no route is fetched; this lets a
// consumer recompute the timeline after a cosmetic change (toggling a
// visited flag) without a network round trip. A day whose routing fails
// still yields a full, correctly time-stamped itinerary with conflict
// checks intact; only segments are absent.
func BuildDayTimeline(
	ctx context.Context,
	provider ports.RouteProvider,
	stops []domain.Stop,
	precomputed []*domain.TravelSegment,
	startTime string,
) *domain.DayTimeline {
	if len(stops) == 0 {
		return nil
	}
	if startTime == "" {
		startTime = DefaultStartTime
	}

	ordered := SortStops(stops)

	var segments []*domain.TravelSegment
	if len(precomputed) == len(ordered)-1 {
		segments = precomputed
	} else {
		segments = BuildTravelSegments(ctx, provider, ordered)
	}

	conflicts := DetectConflicts(ordered, segments, startTime)

	// Second pass over the same accumulation rule. Conflict detection and
	// rendering annotations stay decoupled so each walk is individually
	// testable.
	scheduled := make([]domain.ScheduledStop, 0, len(ordered))
	current := domain.ClockMinutes(startTime)
	for i, stop := range ordered {
		if i > 0 && segments[i-1] != nil {
			current += segments[i-1].DurationMinutes
		}

		arrival := current
		if stop.HasOpeningHours() {
			if opening := domain.ClockMinutes(stop.OpeningTime); current < opening {
				current = opening
			}
		}
		departure := current + dwellMinutes(stop)

		scheduled = append(scheduled, domain.ScheduledStop{
			Stop:          stop,
			ArrivalTime:   domain.FormatClock(arrival),
			DepartureTime: domain.FormatClock(departure),
		})
		current = departure
	}

	var totalKm float64
	var totalMinutes int
	for _, segment := range segments {
		if segment == nil {
			continue
		}
		totalKm += segment.DistanceKm
		totalMinutes += segment.DurationMinutes
	}

	first := ordered[0]
	return &domain.DayTimeline{
		Date:               first.Date,
		Day:                first.Day,
		Stops:              scheduled,
		Segments:           segments,
		Conflicts:          conflicts,
		TotalDistanceKm:    totalKm,
		TotalTravelMinutes: totalMinutes,
		StartTime:          startTime,
		EndTime:            scheduled[len(scheduled)-1].DepartureTime,
	}
}
