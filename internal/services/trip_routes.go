package services

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"sync"

	"trip-timeline-service/internal/domain"
	"trip-timeline-service/internal/ports"
)

// TripRouteRequest maps day numbers to that day's stops, plus an optional
// lodging anchor shared by every day of the trip.
type TripRouteRequest struct {
	Days    map[int][]domain.Stop
	Lodging *domain.Stop
}

// DayRoute is one day's fetched routing result mapped back onto stop pairs.
type DayRoute struct {
	Day        int
	Path       []domain.Coordinates
	DistanceKm float64
	// Segments is aligned with consecutive stop pairs in sort order; nil
	// entries mark pairs without a routable leg.
	Segments []*domain.TravelSegment
	// Travel to and from the lodging anchor, kept apart from Segments so
	// per-stop alignment stays intact.
	FromLodging *domain.TravelSegment
	ToLodging   *domain.TravelSegment
}

// TripRoutePlanner fans the route fetch out across every day of a trip,
// skipping days whose routing input has not changed since the cached fetch.
// It keeps no state of its own between calls; the RouteCache is the only
// thing that persists.
type TripRoutePlanner struct {
	Provider ports.RouteProvider
	Cache    ports.RouteCache // optional
}

type dayRouteResult struct {
	day   int
	route *DayRoute
}

// PlanTripRoutes computes a route for every requested day. Days are
// independent, so fetches run concurrently behind a bounded semaphore. A
// day whose routing is unavailable still yields a result with absent
// segments.
func (p *TripRoutePlanner) PlanTripRoutes(ctx context.Context, req TripRouteRequest) (map[int]*DayRoute, error) {
	if p.Provider == nil {
		return nil, errors.New("plan trip routes: provider is nil")
	}

	out := make(map[int]*DayRoute, len(req.Days))
	if len(req.Days) == 0 {
		return out, nil
	}

	sem := make(chan struct{}, maxConcurrentFetches)
	results := make(chan dayRouteResult, len(req.Days))
	var wg sync.WaitGroup

	for day, stops := range req.Days {
		wg.Add(1)
		go func(day int, stops []domain.Stop) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			results <- dayRouteResult{day: day, route: p.planDay(ctx, day, stops, req.Lodging)}
		}(day, stops)
	}

	wg.Wait()
	close(results)

	for r := range results {
		out[r.day] = r.route
	}

	return out, nil
}

// planDay resolves one day's route, consulting the cache before the
// provider. The day's stops are anchored to the lodging on both ends when
// one is supplied, so travel to and from lodging is part of the path and
// the leg list.
func (p *TripRoutePlanner) planDay(ctx context.Context, day int, stops []domain.Stop, lodging *domain.Stop) *DayRoute {
	ordered := SortStops(stops)
	routed := routedIndices(ordered)

	out := &DayRoute{Day: day}
	if len(ordered) > 1 {
		out.Segments = make([]*domain.TravelSegment, len(ordered)-1)
	} else {
		out.Segments = make([]*domain.TravelSegment, 0)
	}

	anchored := lodging != nil && lodging.HasCoordinates()
	if len(routed) == 0 || (len(routed) < 2 && !anchored) {
		return out
	}

	key := daySignature(day, ordered, lodging)

	var route *ports.RouteResult
	if p.Cache != nil {
		cached, err := p.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("trip routes: cache read failed day=%d err=%v", day, err)
		} else {
			route = cached
		}
	}

	fetched := false
	if route == nil {
		coords := make([]domain.Coordinates, 0, len(routed)+2)
		if anchored {
			coords = append(coords, *lodging.Coordinates)
		}
		for _, i := range routed {
			coords = append(coords, *ordered[i].Coordinates)
		}
		if anchored {
			coords = append(coords, *lodging.Coordinates)
		}

		var err error
		route, err = p.Provider.FetchRoute(ctx, coords)
		if err != nil {
			log.Printf("trip routes: route fetch failed day=%d err=%v", day, err)
			route = nil
		}
		fetched = true
	}

	if route == nil {
		return out
	}

	if fetched && p.Cache != nil {
		if err := p.Cache.Put(ctx, key, route); err != nil {
			log.Printf("trip routes: cache write failed day=%d err=%v", day, err)
		}
	}

	out.Path = route.Path
	out.DistanceKm = route.DistanceKm

	legs := route.Legs
	if anchored && len(legs) > 0 {
		first := ordered[routed[0]]
		out.FromLodging = classifySegment(*lodging, first, legs[0], WalkingMaxKm)
		legs = legs[1:]

		if len(legs) > 0 {
			last := ordered[routed[len(routed)-1]]
			out.ToLodging = classifySegment(last, *lodging, legs[len(legs)-1], WalkingMaxKm)
			legs = legs[:len(legs)-1]
		}
	}

	if len(ordered) > 1 && len(legs) > 0 {
		out.Segments = alignLegs(ordered, routed, legs)
	}

	return out
}

// daySignature derives the identity key for one day's routing input. Any
// change to stop ids, coordinates, or order produces a new key; unrelated
// field changes (a toggled visited flag) do not.
func daySignature(day int, stops []domain.Stop, lodging *domain.Stop) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "day=%d", day)
	for _, s := range stops {
		if !s.HasCoordinates() {
			continue
		}
		fmt.Fprintf(h, ";%s@%.6f,%.6f#%d", s.ID, s.Coordinates.Lat, s.Coordinates.Lng, s.Order)
	}
	if lodging != nil && lodging.HasCoordinates() {
		fmt.Fprintf(h, ";anchor:%s@%.6f,%.6f", lodging.ID, lodging.Coordinates.Lat, lodging.Coordinates.Lng)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
