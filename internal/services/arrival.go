package services

import "trip-timeline-service/internal/domain"

// CalculateArrivalTime recomputes the wall-clock arrival time at the stop
// at targetIndex, accumulating dwell and travel durations from startTime
// (the default day start when empty).
//
// The walk intentionally repeats the assembler's accumulation rule instead
// of depending on it, so the function can run in isolation against partial
// or synthetic stop lists, e.g. previewing a reorder before committing it.
func CalculateArrivalTime(stops []domain.Stop, segments []*domain.TravelSegment, targetIndex int, startTime string) string {
	if startTime == "" {
		startTime = DefaultStartTime
	}
	current := domain.ClockMinutes(startTime)

	if targetIndex <= 0 {
		return domain.FormatClock(current)
	}

	limit := targetIndex
	if limit > len(stops) {
		limit = len(stops)
	}

	for i := 0; i < limit; i++ {
		if i > 0 && i-1 < len(segments) && segments[i-1] != nil {
			current += segments[i-1].DurationMinutes
		}

		stop := stops[i]
		if stop.HasOpeningHours() {
			if opening := domain.ClockMinutes(stop.OpeningTime); current < opening {
				current = opening
			}
		}
		current += dwellMinutes(stop)
	}

	// Travel of the segment arriving at the target itself.
	if targetIndex-1 < len(segments) && segments[targetIndex-1] != nil {
		current += segments[targetIndex-1].DurationMinutes
	}

	return domain.FormatClock(current)
}
