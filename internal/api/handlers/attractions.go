package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"trip-timeline-service/internal/api/dto"
	"trip-timeline-service/internal/domain"
	"trip-timeline-service/internal/ports"
)

// AttractionHandler exposes the stored attractions a trip plans around.
type AttractionHandler struct {
	Repo ports.AttractionRepository
}

// List returns a trip's attractions, optionally narrowed to one day.
func (h *AttractionHandler) List(w http.ResponseWriter, r *http.Request) {
	tripID := strings.TrimSpace(r.URL.Query().Get("trip_id"))
	if tripID == "" {
		writeError(w, r, http.StatusBadRequest, "trip_id is required")
		return
	}

	var (
		stops []*domain.Stop
		err   error
	)

	if dayParam := strings.TrimSpace(r.URL.Query().Get("day")); dayParam != "" {
		day, convErr := strconv.Atoi(dayParam)
		if convErr != nil || day < 0 {
			writeError(w, r, http.StatusBadRequest, "day must be a non-negative integer")
			return
		}
		stops, err = h.Repo.ListByDay(r.Context(), tripID, day)
	} else {
		stops, err = h.Repo.ListByTrip(r.Context(), tripID)
	}
	if err != nil {
		log.Printf("list attractions failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListAttractionsResponse{Attractions: make([]dto.StopPayload, 0, len(stops))}
	for _, s := range stops {
		res.Attractions = append(res.Attractions, dto.FromStop(*s))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Create stores one new attraction for a trip.
func (h *AttractionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAttractionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	stop := req.Stop.ToStop()
	if err := h.Repo.Create(r.Context(), req.TripID, &stop); err != nil {
		log.Printf("create attraction failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.FromStop(stop))
}
