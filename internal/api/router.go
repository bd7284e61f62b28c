package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"trip-timeline-service/internal/api/handlers"
	"trip-timeline-service/internal/ports"
	"trip-timeline-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(repo ports.AttractionRepository, provider ports.RouteProvider, planner *services.TripRoutePlanner) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	attractions := &handlers.AttractionHandler{Repo: repo}
	timeline := &handlers.TimelineHandler{Provider: provider, Planner: planner}

	r.Get("/health", handlers.Health)

	r.Get("/attractions", attractions.List)
	r.Post("/attractions", attractions.Create)

	r.Post("/timeline/day", timeline.BuildDay)
	r.Post("/timeline/arrival", timeline.ArrivalTime)
	r.Post("/routes/segment", timeline.Segment)
	r.Post("/routes/trip", timeline.TripRoutes)

	return r
}
