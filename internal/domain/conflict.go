package domain

// ConflictType tags the scheduling problem a Conflict describes.
type ConflictType string

const (
	// Arriving before the stop opens; the visitor is assumed to wait.
	ConflictLateArrival ConflictType = "late-arrival"
	// Arriving at or after closing time.
	ConflictClosed ConflictType = "closed"
	// The visit starts in time but runs past closing.
	ConflictOverlap ConflictType = "overlap"
	// The running day clock has passed the rush threshold.
	ConflictRush ConflictType = "rush"
)

type ConflictSeverity string

const (
	SeverityWarning ConflictSeverity = "warning"
	SeverityError   ConflictSeverity = "error"
)

// Conflict is a detected scheduling problem for one stop. Conflicts are
// domain results, not failures; severity is advisory for the consumer.
// Multiple conflicts may attach to the same stop.
type Conflict struct {
	Stop     Stop
	Type     ConflictType
	Message  string
	Severity ConflictSeverity
}
