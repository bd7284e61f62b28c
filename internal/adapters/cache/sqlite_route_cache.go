package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"trip-timeline-service/internal/ports"
)

// SQLite-backed route cache. Keys are day signatures computed by the
// orchestrator; payloads are the full fetched route as JSON.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Get returns the cached route for a signature, or (nil, nil) on a miss.
func (s *SqliteRouteCache) Get(ctx context.Context, key string) (*ports.RouteResult, error) {
	if s.DB == nil {
		return nil, errors.New("route cache: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT payload
	FROM route_cache
	WHERE signature = ?;
	`

	var payload []byte
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	var route ports.RouteResult
	if err := json.Unmarshal(payload, &route); err != nil {
		return nil, fmt.Errorf("get route cache: decode payload for %q: %w", key, err)
	}

	return &route, nil
}

// Put stores one fetched route under its signature, replacing any prior entry.
func (s *SqliteRouteCache) Put(ctx context.Context, key string, route *ports.RouteResult) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
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

	q := `
	INSERT OR REPLACE INTO route_cache (signature, payload)
	VALUES (?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q, key, payload); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
