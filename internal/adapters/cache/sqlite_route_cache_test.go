package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"trip-timeline-service/internal/adapters/repositories"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqliteRouteCacheRoundTrip(t *testing.T) {
	routeCache := NewSqliteRouteCache(openTestDB(t))
	ctx := context.Background()

	got, err := routeCache.Get(ctx, "sig-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("miss returned %+v, want nil", got)
	}

	want := testRoute()
	if err := routeCache.Put(ctx, "sig-1", want); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err = routeCache.Get(ctx, "sig-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached route")
	}
	if got.DistanceKm != want.DistanceKm || len(got.Path) != 2 {
		t.Errorf("cached route = %+v, want %+v", got, want)
	}
}

func TestSqliteRouteCachePutReplacesExisting(t *testing.T) {
	routeCache := NewSqliteRouteCache(openTestDB(t))
	ctx := context.Background()

	first := testRoute()
	if err := routeCache.Put(ctx, "sig-1", first); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	second := testRoute()
	second.DistanceKm = 9.9
	if err := routeCache.Put(ctx, "sig-1", second); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	got, err := routeCache.Get(ctx, "sig-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.DistanceKm != 9.9 {
		t.Errorf("cached route = %+v, want replaced distance 9.9", got)
	}
}
