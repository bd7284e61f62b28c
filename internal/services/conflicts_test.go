package services

import (
	"strings"
	"testing"

	"trip-timeline-service/internal/domain"
)

func minutes(m int) *int { return &m }

func timedStop(id string, order int, opening, closing string) domain.Stop {
	return domain.Stop{ID: id, Name: id, Order: order, OpeningTime: opening, ClosingTime: closing}
}

func travel(duration int) *domain.TravelSegment {
	return &domain.TravelSegment{DurationMinutes: duration, Mode: domain.ModeWalking}
}

func TestDetectConflictsNoOpeningHours(t *testing.T) {
	stops := []domain.Stop{
		timedStop("a", 0, "", ""),
		timedStop("b", 1, "", ""),
	}
	segments := []*domain.TravelSegment{travel(20)}

	conflicts := DetectConflicts(stops, segments, "")
	if len(conflicts) != 0 {
		t.Fatalf("conflicts = %+v, want none", conflicts)
	}
}

func TestDetectConflictsEarlyArrivalWaitsForOpening(t *testing.T) {
	// Arrival at b: 09:00 + 30 dwell + 15 travel = 09:45, before the 10:00
	// opening. Accumulation for c must then start from 10:00.
	a := timedStop("a", 0, "", "")
	a.DurationMinutes = minutes(30)
	b := timedStop("b", 1, "10:00", "18:00")
	b.DurationMinutes = minutes(60)
	// c closes before the visitor can get there if and only if the wait at
	// b was honored: 10:00 + 60 + 0 travel = 11:00 arrival.
	c := timedStop("c", 2, "08:00", "11:00")

	stops := []domain.Stop{a, b, c}
	segments := []*domain.TravelSegment{travel(15), travel(0)}

	conflicts := DetectConflicts(stops, segments, "")

	var late, closed int
	for _, conflict := range conflicts {
		switch conflict.Type {
		case domain.ConflictLateArrival:
			late++
			if conflict.Stop.ID != "b" {
				t.Errorf("late-arrival attached to %q, want b", conflict.Stop.ID)
			}
			if !strings.Contains(conflict.Message, "10:00") {
				t.Errorf("late-arrival message %q does not state the opening time", conflict.Message)
			}
			if conflict.Severity != domain.SeverityWarning {
				t.Errorf("late-arrival severity = %q, want warning", conflict.Severity)
			}
		case domain.ConflictClosed:
			closed++
			if conflict.Stop.ID != "c" {
				t.Errorf("closed attached to %q, want c", conflict.Stop.ID)
			}
		}
	}

	if late != 1 {
		t.Errorf("late-arrival conflicts = %d, want exactly 1", late)
	}
	if closed != 1 {
		t.Errorf("closed conflicts = %d, want 1 (clock must advance to 10:00)", closed)
	}
}

func TestDetectConflictsClosedPrecludesOverlap(t *testing.T) {
	// Arrival 09:00 is at closing; closed fires and overlap must not.
	stops := []domain.Stop{timedStop("a", 0, "08:00", "09:00")}

	conflicts := DetectConflicts(stops, nil, "")
	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %+v, want exactly one", conflicts)
	}
	if conflicts[0].Type != domain.ConflictClosed {
		t.Errorf("type = %q, want closed", conflicts[0].Type)
	}
	if conflicts[0].Severity != domain.SeverityError {
		t.Errorf("severity = %q, want error", conflicts[0].Severity)
	}
}

func TestDetectConflictsOverlapPastClosing(t *testing.T) {
	// Arrival 09:00, dwell 60, closing 09:30: starts in time, runs over.
	stop := timedStop("a", 0, "08:00", "09:30")

	conflicts := DetectConflicts([]domain.Stop{stop}, nil, "")
	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %+v, want exactly one", conflicts)
	}
	if conflicts[0].Type != domain.ConflictOverlap {
		t.Errorf("type = %q, want overlap", conflicts[0].Type)
	}
}

func TestDetectConflictsRushAfterThreshold(t *testing.T) {
	stops := []domain.Stop{
		timedStop("a", 0, "", ""),
		timedStop("b", 1, "", ""),
	}
	// 20:30 start + 60 dwell at a puts b past 21:00.
	segments := []*domain.TravelSegment{travel(10)}

	conflicts := DetectConflicts(stops, segments, "20:30")
	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %+v, want exactly one", conflicts)
	}
	if conflicts[0].Type != domain.ConflictRush {
		t.Errorf("type = %q, want rush", conflicts[0].Type)
	}
	if conflicts[0].Stop.ID != "b" {
		t.Errorf("rush attached to %q, want b", conflicts[0].Stop.ID)
	}
}

func TestDetectConflictsToleratesShortSegmentSlices(t *testing.T) {
	// Callers may hand over fewer segment entries than stop pairs, or none
	// at all; missing entries mean no travel, same as a nil entry.
	a := timedStop("a", 0, "", "")
	b := timedStop("b", 1, "10:00", "18:00")
	c := timedStop("c", 2, "", "")
	stops := []domain.Stop{a, b, c}

	for _, segments := range [][]*domain.TravelSegment{
		nil,
		{},
		{travel(0)},
	} {
		conflicts := DetectConflicts(stops, segments, "")
		if len(conflicts) != 0 {
			t.Errorf("segments=%v: conflicts = %+v, want none", segments, conflicts)
		}
	}
}

func TestDetectConflictsAbsentSegmentsContributeNoTravel(t *testing.T) {
	a := timedStop("a", 0, "", "")
	b := timedStop("b", 1, "10:00", "18:00")

	// No route: arrival at b is 10:00 sharp, so no conflict at all.
	conflicts := DetectConflicts([]domain.Stop{a, b}, []*domain.TravelSegment{nil}, "")
	if len(conflicts) != 0 {
		t.Fatalf("conflicts = %+v, want none", conflicts)
	}
}
