package services

import (
	"fmt"

	"trip-timeline-service/internal/domain"
)

// DetectConflicts walks the stops in visit order with their computed
// arrival/departure times and flags scheduling violations against each
// stop's declared opening hours plus an overall end-of-day threshold.
//
// The walk carries a running wall clock initialized to startTime (the
// default day start when empty). Arriving before a stop opens advances the
// clock to the opening time, so a day that waits for a late opening can
// legitimately trip the rush check further down the list.
func DetectConflicts(stops []domain.Stop, segments []*domain.TravelSegment, startTime string) []domain.Conflict {
	if startTime == "" {
		startTime = DefaultStartTime
	}

	conflicts := []domain.Conflict{}
	current := domain.ClockMinutes(startTime)
	rush := domain.ClockMinutes(RushThreshold)

	for i, stop := range stops {
		if i > 0 && i-1 < len(segments) && segments[i-1] != nil {
			current += segments[i-1].DurationMinutes
		}

		arrival := current
		departure := arrival + dwellMinutes(stop)

		if stop.HasOpeningHours() {
			opening := domain.ClockMinutes(stop.OpeningTime)
			closing := domain.ClockMinutes(stop.ClosingTime)

			if arrival < opening {
				conflicts = append(conflicts, domain.Conflict{
					Stop:     stop,
					Type:     domain.ConflictLateArrival,
					Severity: domain.SeverityWarning,
					Message:  fmt.Sprintf("%s does not open until %s", stop.Name, stop.OpeningTime),
				})
				// The visitor waits at the door.
				current = opening
				departure = current + dwellMinutes(stop)
			}

			// Closed takes precedence: arrival itself already fails, so no
			// overlap is reported for the same stop.
			switch {
			case arrival >= closing:
				conflicts = append(conflicts, domain.Conflict{
					Stop:     stop,
					Type:     domain.ConflictClosed,
					Severity: domain.SeverityError,
					Message:  fmt.Sprintf("%s closes at %s, before arrival", stop.Name, stop.ClosingTime),
				})
			case departure > closing:
				conflicts = append(conflicts, domain.Conflict{
					Stop:     stop,
					Type:     domain.ConflictOverlap,
					Severity: domain.SeverityWarning,
					Message:  fmt.Sprintf("visit to %s runs past closing time %s", stop.Name, stop.ClosingTime),
				})
			}
		}

		if current > rush {
			conflicts = append(conflicts, domain.Conflict{
				Stop:     stop,
				Type:     domain.ConflictRush,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("%s is scheduled after %s; the day may be too long", stop.Name, RushThreshold),
			})
		}

		current = departure
	}

	return conflicts
}
