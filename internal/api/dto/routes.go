package dto

import (
	"trip-timeline-service/internal/domain"
	"trip-timeline-service/internal/services"
)

type SegmentRequest struct {
	From StopPayload `json:"from" validate:"required"`
	To   StopPayload `json:"to" validate:"required"`
}

type TripRoutesRequest struct {
	Days    map[int][]StopPayload `json:"days" validate:"required"`
	Lodging *StopPayload          `json:"lodging"`
}

type CoordinatePayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DayRouteResponse struct {
	Day         int                 `json:"day"`
	Path        []CoordinatePayload `json:"path"`
	DistanceKm  float64             `json:"distance_km"`
	Segments    []*SegmentPayload   `json:"segments"`
	FromLodging *SegmentPayload     `json:"from_lodging,omitempty"`
	ToLodging   *SegmentPayload     `json:"to_lodging,omitempty"`
}

type TripRoutesResponse struct {
	Days map[int]DayRouteResponse `json:"days"`
}

// FromDayRoute converts one day's routing result into its wire form.
func FromDayRoute(route *services.DayRoute) DayRouteResponse {
	path := make([]CoordinatePayload, 0, len(route.Path))
	for _, c := range route.Path {
		path = append(path, CoordinatePayload{Lat: c.Lat, Lng: c.Lng})
	}

	segments := make([]*SegmentPayload, 0, len(route.Segments))
	for _, s := range route.Segments {
		segments = append(segments, FromSegment(s))
	}

	return DayRouteResponse{
		Day:         route.Day,
		Path:        path,
		DistanceKm:  route.DistanceKm,
		Segments:    segments,
		FromLodging: FromSegment(route.FromLodging),
		ToLodging:   FromSegment(route.ToLodging),
	}
}

// ToTripRouteRequest converts the wire form into the planner's input.
func (r TripRoutesRequest) ToTripRouteRequest() services.TripRouteRequest {
	days := make(map[int][]domain.Stop, len(r.Days))
	for day, payloads := range r.Days {
		days[day] = ToStops(payloads)
	}

	req := services.TripRouteRequest{Days: days}
	if r.Lodging != nil {
		lodging := r.Lodging.ToStop()
		lodging.Kind = domain.KindLodging
		req.Lodging = &lodging
	}
	return req
}
