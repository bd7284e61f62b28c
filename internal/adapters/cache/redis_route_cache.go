package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-timeline-service/internal/ports"
)

const defaultRouteTTL = 24 * time.Hour

// RedisRouteCache is a TTL'd route cache for deployments with a shared
// Redis. Entries expire on their own, so stale stop sets age out without
// explicit eviction.
type RedisRouteCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	if ttl <= 0 {
		ttl = defaultRouteTTL
	}
	return &RedisRouteCache{Client: client, TTL: ttl}
}

func routeKey(key string) string { return "route:" + key }

// Get returns the cached route for a signature, or (nil, nil) on a miss.
func (c *RedisRouteCache) Get(ctx context.Context, key string) (*ports.RouteResult, error) {
	if c.Client == nil {
		return nil, errors.New("route cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("get route cache: key must not be empty")
	}

	payload, err := c.Client.Get(ctx, routeKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get route cache: redis get %q: %w", key, err)
	}

	var route ports.RouteResult
	if err := json.Unmarshal(payload, &route); err != nil {
		return nil, fmt.Errorf("get route cache: decode payload for %q: %w", key, err)
	}

	return &route, nil
}

// Put stores one fetched route under its signature with the cache TTL.
func (c *RedisRouteCache) Put(ctx context.Context, key string, route *ports.RouteResult) error {
	if c.Client == nil {
		return errors.New("route cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}
	if route == nil {
		return errors.New("insert route cache: route must not be nil")
	}

	payload, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("insert route cache: encode payload: %w", err)
	}

	if err := c.Client.Set(ctx, routeKey(key), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
