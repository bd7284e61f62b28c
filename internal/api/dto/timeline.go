package dto

import "trip-timeline-service/internal/domain"

// SegmentPayload is the wire form of a travel segment. In requests the
// endpoints are referenced by stop id; in responses they are echoed the
// same way.
type SegmentPayload struct {
	FromID          string  `json:"from_id"`
	ToID            string  `json:"to_id"`
	DistanceKm      float64 `json:"distance_km" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"gte=0"`
	Mode            string  `json:"mode" validate:"omitempty,oneof=walking transit driving"`
}

type DayTimelineRequest struct {
	Stops []StopPayload `json:"stops" validate:"required,min=1,dive"`
	// Segments, when present with one entry per consecutive stop pair
	// (null entries allowed), are reused instead of refetching the route.
	Segments  []*SegmentPayload `json:"segments"`
	StartTime string            `json:"start_time" validate:"omitempty,datetime=15:04"`
}

type ArrivalTimeRequest struct {
	Stops     []StopPayload     `json:"stops" validate:"required,dive"`
	Segments  []*SegmentPayload `json:"segments"`
	Index     int               `json:"index" validate:"gte=0"`
	StartTime string            `json:"start_time" validate:"omitempty,datetime=15:04"`
}

type ArrivalTimeResponse struct {
	ArrivalTime string `json:"arrival_time"`
}

type ScheduledStopResponse struct {
	StopPayload
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
}

type ConflictResponse struct {
	StopID   string `json:"stop_id"`
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type DayTimelineResponse struct {
	Date               string                  `json:"date"`
	Day                int                     `json:"day"`
	Stops              []ScheduledStopResponse `json:"stops"`
	Segments           []*SegmentPayload       `json:"segments"`
	Conflicts          []ConflictResponse      `json:"conflicts"`
	TotalDistanceKm    float64                 `json:"total_distance_km"`
	TotalTravelMinutes int                     `json:"total_travel_minutes"`
	StartTime          string                  `json:"start_time"`
	EndTime            string                  `json:"end_time"`
}

// ToSegments resolves segment payloads against the given stops, preserving
// null entries. Unknown ids leave zero-valued endpoints; the engine only
// reads durations from reused segments.
func ToSegments(payloads []*SegmentPayload, stops []domain.Stop) []*domain.TravelSegment {
	if payloads == nil {
		return nil
	}

	byID := make(map[string]domain.Stop, len(stops))
	for _, s := range stops {
		byID[s.ID] = s
	}

	segments := make([]*domain.TravelSegment, len(payloads))
	for i, p := range payloads {
		if p == nil {
			continue
		}
		segments[i] = &domain.TravelSegment{
			From:            byID[p.FromID],
			To:              byID[p.ToID],
			DistanceKm:      p.DistanceKm,
			DurationMinutes: p.DurationMinutes,
			Mode:            domain.TravelMode(p.Mode),
		}
	}
	return segments
}

// FromSegment converts a domain segment into its wire form.
func FromSegment(segment *domain.TravelSegment) *SegmentPayload {
	if segment == nil {
		return nil
	}
	return &SegmentPayload{
		FromID:          segment.From.ID,
		ToID:            segment.To.ID,
		DistanceKm:      segment.DistanceKm,
		DurationMinutes: segment.DurationMinutes,
		Mode:            string(segment.Mode),
	}
}

// FromTimeline converts an assembled day timeline into its wire form.
func FromTimeline(timeline *domain.DayTimeline) DayTimelineResponse {
	stops := make([]ScheduledStopResponse, 0, len(timeline.Stops))
	for _, s := range timeline.Stops {
		stops = append(stops, ScheduledStopResponse{
			StopPayload:   FromStop(s.Stop),
			ArrivalTime:   s.ArrivalTime,
			DepartureTime: s.DepartureTime,
		})
	}

	segments := make([]*SegmentPayload, 0, len(timeline.Segments))
	for _, s := range timeline.Segments {
		segments = append(segments, FromSegment(s))
	}

	conflicts := make([]ConflictResponse, 0, len(timeline.Conflicts))
	for _, c := range timeline.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			StopID:   c.Stop.ID,
			Type:     string(c.Type),
			Message:  c.Message,
			Severity: string(c.Severity),
		})
	}

	return DayTimelineResponse{
		Date:               timeline.Date,
		Day:                timeline.Day,
		Stops:              stops,
		Segments:           segments,
		Conflicts:          conflicts,
		TotalDistanceKm:    timeline.TotalDistanceKm,
		TotalTravelMinutes: timeline.TotalTravelMinutes,
		StartTime:          timeline.StartTime,
		EndTime:            timeline.EndTime,
	}
}
