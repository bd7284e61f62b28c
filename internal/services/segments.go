package services

import (
	"context"
	"log"
	"math"
	"slices"

	"trip-timeline-service/internal/domain"
	"trip-timeline-service/internal/ports"
)

// SortStops returns the day's stops ordered by their declared sequence.
// The sort is stable so equal orders keep their input position.
func SortStops(stops []domain.Stop) []domain.Stop {
	ordered := slices.Clone(stops)
	slices.SortStableFunc(ordered, func(a, b domain.Stop) int {
		return a.Order - b.Order
	})
	return ordered
}

// BuildTravelSegments produces one entry per consecutive stop pair, in sort
// order. Entry i is the segment from stop i to stop i+1, or nil when either
// stop lacks coordinates, a coordinate-less stop sits between them, or no
// route could be fetched.
//
// One batched request covers the whole day; when fewer than two stops have
// coordinates no request is issued at all.
func BuildTravelSegments(ctx context.Context, provider ports.RouteProvider, stops []domain.Stop) []*domain.TravelSegment {
	if len(stops) < 2 {
		return make([]*domain.TravelSegment, 0)
	}
	segments := make([]*domain.TravelSegment, len(stops)-1)

	routed := routedIndices(stops)
	if len(routed) < 2 {
		return segments
	}

	coords := make([]domain.Coordinates, 0, len(routed))
	for _, i := range routed {
		coords = append(coords, *stops[i].Coordinates)
	}

	route, err := provider.FetchRoute(ctx, coords)
	if err != nil {
		log.Printf("segments: route fetch failed stops=%d err=%v", len(coords), err)
		return segments
	}
	if route == nil || len(route.Legs) == 0 {
		return segments
	}

	return alignLegs(stops, routed, route.Legs)
}

// CalculateTravelSegment answers an ad hoc "distance between exactly these
// two points" query outside the context of a full day route. Returns nil
// when either stop is not geocoded or no route is available.
func CalculateTravelSegment(ctx context.Context, provider ports.RouteProvider, from, to domain.Stop) *domain.TravelSegment {
	if !from.HasCoordinates() || !to.HasCoordinates() {
		return nil
	}

	route, err := provider.FetchRoute(ctx, []domain.Coordinates{*from.Coordinates, *to.Coordinates})
	if err != nil {
		log.Printf("segments: pair route fetch failed err=%v", err)
		return nil
	}
	if route == nil {
		return nil
	}

	distanceKm := route.DistanceKm
	reported := 0
	if len(route.Legs) > 0 {
		reported = route.Legs[0].DurationMinutes
		if route.Legs[0].DistanceKm > 0 {
			distanceKm = route.Legs[0].DistanceKm
		}
	}
	if distanceKm == 0 {
		// Route without usable metrics; estimate over the straight line.
		distanceKm = from.Coordinates.DistanceKm(*to.Coordinates)
	}

	segment := &domain.TravelSegment{From: from, To: to, DistanceKm: distanceKm}
	if distanceKm > PairWalkingMaxKm {
		segment.Mode = domain.ModeTransit
		segment.DurationMinutes = reported
	} else {
		segment.Mode = domain.ModeWalking
		segment.DurationMinutes = walkingMinutes(distanceKm)
	}
	if segment.DurationMinutes == 0 && distanceKm > 0 {
		// The service returned no per-leg duration; fall back to speed.
		segment.DurationMinutes = walkingMinutes(distanceKm)
	}

	return segment
}

// routedIndices returns the original indices of coordinate-bearing stops,
// preserving order.
func routedIndices(stops []domain.Stop) []int {
	routed := make([]int, 0, len(stops))
	for i := range stops {
		if stops[i].HasCoordinates() {
			routed = append(routed, i)
		}
	}
	return routed
}

// alignLegs maps fetched legs back onto consecutive stop pairs. A leg is
// consumed only for pairs that are also adjacent within the routed
// subsequence.
func alignLegs(stops []domain.Stop, routed []int, legs []ports.RouteLeg) []*domain.TravelSegment {
	segments := make([]*domain.TravelSegment, len(stops)-1)

	position := make(map[int]int, len(routed))
	for pos, i := range routed {
		position[i] = pos
	}

	for i := 0; i < len(stops)-1; i++ {
		pa, okA := position[i]
		pb, okB := position[i+1]
		if !okA || !okB || pb != pa+1 {
			continue
		}
		if pa >= len(legs) {
			break
		}
		leg := legs[pa]
		segments[i] = classifySegment(stops[i], stops[i+1], leg, WalkingMaxKm)
	}

	return segments
}

// classifySegment picks a travel mode per leg. Short hops become walking
// legs with speed-derived durations; public routing services report
// unrealistically short walking times for them. Longer legs keep the
// reported duration, which tracks motorized transit reasonably well.
func classifySegment(from, to domain.Stop, leg ports.RouteLeg, walkingMaxKm float64) *domain.TravelSegment {
	segment := &domain.TravelSegment{From: from, To: to, DistanceKm: leg.DistanceKm}
	if leg.DistanceKm > walkingMaxKm {
		segment.Mode = domain.ModeTransit
		segment.DurationMinutes = leg.DurationMinutes
	} else {
		segment.Mode = domain.ModeWalking
		segment.DurationMinutes = walkingMinutes(leg.DistanceKm)
	}
	return segment
}

// walkingMinutes derives a pedestrian duration from distance, rounded up to
// the next whole minute.
func walkingMinutes(distanceKm float64) int {
	return int(math.Ceil(distanceKm / WalkingSpeedKmh * 60))
}
