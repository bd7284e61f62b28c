package domain

// StopKind distinguishes real attractions from synthetic anchors such as
// the lodging a day starts and ends at.
type StopKind string

const (
	KindAttraction StopKind = "attraction"
	KindLodging    StopKind = "lodging"
)

// Stop is a single point of interest scheduled for one trip day.
// It is supplied by the surrounding application and read-only to the
// timeline engine.
type Stop struct {
	ID          string
	Name        string
	City        string
	Coordinates *Coordinates // nil until the stop has been geocoded
	Day         int
	Date        string // calendar date, e.g. "2026-05-04"
	Order       int    // declared sequencing position within the day
	// DurationMinutes is the planned visit length. nil means unspecified
	// and a default applies; an explicit 0 is meaningful (lodging anchors)
	// and must be preserved.
	DurationMinutes *int
	OpeningTime     string // "HH:MM", empty when unknown
	ClosingTime     string // "HH:MM", empty when unknown
	Visited         bool
	Kind            StopKind
}

// HasCoordinates reports whether the stop can participate in routing.
func (s *Stop) HasCoordinates() bool { return s.Coordinates != nil }

// HasOpeningHours reports whether the stop declares a full opening window.
func (s *Stop) HasOpeningHours() bool { return s.OpeningTime != "" && s.ClosingTime != "" }
