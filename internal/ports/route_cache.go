package ports

import "context"

// RouteCache is a lookaside store for fetched routes, keyed by the identity
// of a day's stop set (ids, coordinates, order, lodging anchor). Evicting an
// entry only costs a refetch, never correctness.
type RouteCache interface {
	// Get returns the cached route for a key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) (*RouteResult, error)
	// Put stores a fetched route under a key, replacing any prior entry.
	Put(ctx context.Context, key string, route *RouteResult) error
}
