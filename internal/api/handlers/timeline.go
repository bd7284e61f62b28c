package handlers

import (
	"log"
	"net/http"

	"trip-timeline-service/internal/api/dto"
	"trip-timeline-service/internal/ports"
	"trip-timeline-service/internal/services"
)

// TimelineHandler exposes the day timeline engine over HTTP.
type TimelineHandler struct {
	Provider ports.RouteProvider
	Planner  *services.TripRoutePlanner
}

// BuildDay assembles one day's ordered, time-stamped itinerary.
func (h *TimelineHandler) BuildDay(w http.ResponseWriter, r *http.Request) {
	var req dto.DayTimelineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	stops := dto.ToStops(req.Stops)
	precomputed := dto.ToSegments(req.Segments, stops)

	timeline := services.BuildDayTimeline(r.Context(), h.Provider, stops, precomputed, req.StartTime)
	if timeline == nil {
		writeError(w, r, http.StatusBadRequest, "stops must not be empty")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromTimeline(timeline))
}

// ArrivalTime recomputes the wall-clock arrival at a single stop index.
func (h *TimelineHandler) ArrivalTime(w http.ResponseWriter, r *http.Request) {
	var req dto.ArrivalTimeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	stops := dto.ToStops(req.Stops)
	segments := dto.ToSegments(req.Segments, stops)

	arrival := services.CalculateArrivalTime(stops, segments, req.Index, req.StartTime)
	writeJSON(w, r, http.StatusOK, dto.ArrivalTimeResponse{ArrivalTime: arrival})
}

// Segment answers a single-pair travel query. A day with no reachable
// routing service renders as a null segment, not an error.
func (h *TimelineHandler) Segment(w http.ResponseWriter, r *http.Request) {
	var req dto.SegmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	segment := services.CalculateTravelSegment(r.Context(), h.Provider, req.From.ToStop(), req.To.ToStop())
	writeJSON(w, r, http.StatusOK, dto.FromSegment(segment))
}

// TripRoutes computes per-day routes for a whole trip in one call.
func (h *TimelineHandler) TripRoutes(w http.ResponseWriter, r *http.Request) {
	var req dto.TripRoutesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	routes, err := h.Planner.PlanTripRoutes(r.Context(), req.ToTripRouteRequest())
	if err != nil {
		log.Printf("plan trip routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.TripRoutesResponse{Days: make(map[int]dto.DayRouteResponse, len(routes))}
	for day, route := range routes {
		res.Days[day] = dto.FromDayRoute(route)
	}
	writeJSON(w, r, http.StatusOK, res)
}
