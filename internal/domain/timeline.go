package domain

// ScheduledStop annotates a stop with its computed wall-clock times.
type ScheduledStop struct {
	Stop
	ArrivalTime   string // "HH:MM"
	DepartureTime string // "HH:MM"
}

// DayTimeline is the assembled, immutable itinerary for one trip day.
// Segments has length len(Stops)-1; nil entries mark consecutive pairs for
// which no route could be computed. A DayTimeline is constructed fresh on
// every computation and never mutated in place.
type DayTimeline struct {
	Date               string
	Day                int
	Stops              []ScheduledStop
	Segments           []*TravelSegment
	Conflicts          []Conflict
	TotalDistanceKm    float64
	TotalTravelMinutes int
	StartTime          string
	EndTime            string
}
