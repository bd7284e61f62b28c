package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"trip-timeline-service/internal/domain"
	"trip-timeline-service/internal/ports"
)

// requestTimeout caps a single route fetch so it can never hang a caller.
const requestTimeout = 6 * time.Second

// OSRMRouteProvider implements RouteProvider against an OSRM-compatible
// public routing service.
//
// Every expected failure mode (timeout, transport error, non-success
// status, empty route set) is logged as a warning and mapped to an absent
// route, never an error. The provider is safe for concurrent use.
type OSRMRouteProvider struct {
	session *http.Client
	baseURL string
	profile string
}

func NewOSRMRouteProvider(baseURL, profile string) *OSRMRouteProvider {
	if baseURL == "" {
		baseURL = "https://router.project-osrm.org"
	}
	if profile == "" {
		profile = "driving"
	}

	return &OSRMRouteProvider{
		session: &http.Client{Timeout: requestTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: profile,
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lng, lat]
		} `json:"geometry"`
		Legs []struct {
			Distance float64 `json:"distance"` // meters
			Duration float64 `json:"duration"` // seconds
		} `json:"legs"`
	} `json:"routes"`
}

// FetchRoute issues exactly one request covering the entire ordered
// coordinate list. Batching amortizes round-trip latency and keeps leg
// timings internally consistent.
func (o *OSRMRouteProvider) FetchRoute(ctx context.Context, coords []domain.Coordinates) (*ports.RouteResult, error) {
	if len(coords) < 2 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	pairs := make([]string, 0, len(coords))
	for _, c := range coords {
		pairs = append(pairs, fmt.Sprintf("%f,%f", c.Lng, c.Lat))
	}
	endpoint := fmt.Sprintf("%s/route/v1/%s/%s", o.baseURL, o.profile, strings.Join(pairs, ";"))

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("overview", "full")
		q.Set("geometries", "geojson")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		log.Printf("osrm: route fetch failed coords=%d err=%v", len(coords), err)
		return nil, nil
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("osrm: decode route response: %v", err)
		return nil, nil
	}

	if len(decoded.Routes) == 0 {
		log.Printf("osrm: no usable routes coords=%d code=%s", len(coords), decoded.Code)
		return nil, nil
	}

	route := decoded.Routes[0]

	path := make([]domain.Coordinates, 0, len(route.Geometry.Coordinates))
	for _, p := range route.Geometry.Coordinates {
		if len(p) != 2 {
			continue
		}
		// GeoJSON order is [lng, lat].
		path = append(path, domain.Coordinates{Lat: p[1], Lng: p[0]})
	}

	legs := make([]ports.RouteLeg, 0, len(route.Legs))
	for _, l := range route.Legs {
		legs = append(legs, ports.RouteLeg{
			DistanceKm:      l.Distance / 1000,
			DurationMinutes: int(math.Round(l.Duration / 60)),
		})
	}

	return &ports.RouteResult{
		Path:       path,
		DistanceKm: route.Distance / 1000,
		Legs:       legs,
	}, nil
}
