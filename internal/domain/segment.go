package domain

// How a traveller covers the distance between two consecutive stops.
type TravelMode string

const (
	ModeWalking TravelMode = "walking"
	ModeTransit TravelMode = "transit"
	ModeDriving TravelMode = "driving"
)

// TravelSegment is the directional travel leg between two consecutive stops.
// Distance and duration are always non-negative; a segment only exists when
// both stops have coordinates and are adjacent in sort order.
type TravelSegment struct {
	From            Stop
	To              Stop
	DistanceKm      float64
	DurationMinutes int
	Mode            TravelMode
}
