package dto

import "trip-timeline-service/internal/domain"

// StopPayload is the wire form of a stop, shared by requests and responses.
type StopPayload struct {
	ID              string   `json:"id"`
	Name            string   `json:"name" validate:"required"`
	City            string   `json:"city"`
	Lat             *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng             *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
	Day             int      `json:"day" validate:"gte=0"`
	Date            string   `json:"date"`
	Order           int      `json:"order"`
	DurationMinutes *int     `json:"duration_minutes" validate:"omitempty,gte=0"`
	OpeningTime     string   `json:"opening_time" validate:"omitempty,datetime=15:04"`
	ClosingTime     string   `json:"closing_time" validate:"omitempty,datetime=15:04"`
	Visited         bool     `json:"visited"`
	Kind            string   `json:"kind" validate:"omitempty,oneof=attraction lodging"`
}

// ToStop converts the payload into a domain stop. Coordinates are set only
// when both latitude and longitude are present.
func (p StopPayload) ToStop() domain.Stop {
	stop := domain.Stop{
		ID:              p.ID,
		Name:            p.Name,
		City:            p.City,
		Day:             p.Day,
		Date:            p.Date,
		Order:           p.Order,
		DurationMinutes: p.DurationMinutes,
		OpeningTime:     p.OpeningTime,
		ClosingTime:     p.ClosingTime,
		Visited:         p.Visited,
		Kind:            domain.StopKind(p.Kind),
	}
	if stop.Kind == "" {
		stop.Kind = domain.KindAttraction
	}
	if p.Lat != nil && p.Lng != nil {
		stop.Coordinates = &domain.Coordinates{Lat: *p.Lat, Lng: *p.Lng}
	}
	return stop
}

// FromStop converts a domain stop into its wire form.
func FromStop(stop domain.Stop) StopPayload {
	p := StopPayload{
		ID:              stop.ID,
		Name:            stop.Name,
		City:            stop.City,
		Day:             stop.Day,
		Date:            stop.Date,
		Order:           stop.Order,
		DurationMinutes: stop.DurationMinutes,
		OpeningTime:     stop.OpeningTime,
		ClosingTime:     stop.ClosingTime,
		Visited:         stop.Visited,
		Kind:            string(stop.Kind),
	}
	if stop.Coordinates != nil {
		lat, lng := stop.Coordinates.Lat, stop.Coordinates.Lng
		p.Lat, p.Lng = &lat, &lng
	}
	return p
}

// ToStops converts a payload slice into domain stops.
func ToStops(payloads []StopPayload) []domain.Stop {
	stops := make([]domain.Stop, 0, len(payloads))
	for _, p := range payloads {
		stops = append(stops, p.ToStop())
	}
	return stops
}
