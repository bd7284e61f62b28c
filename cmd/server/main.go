package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trip-timeline-service/internal/adapters/cache"
	"trip-timeline-service/internal/adapters/repositories"
	"trip-timeline-service/internal/adapters/routing"
	"trip-timeline-service/internal/api"
	"trip-timeline-service/internal/config"
	pgdb "trip-timeline-service/internal/platform/db"
	"trip-timeline-service/internal/ports"
	"trip-timeline-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, OSRM, optionally Redis) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/attractions.json")
	port := config.Get("PORT", "8080")
	osrmBaseURL := config.Get("OSRM_BASE_URL", "")
	osrmProfile := config.Get("OSRM_PROFILE", "")
	redisAddr := os.Getenv("REDIS_ADDR")
	databaseURL := os.Getenv("DATABASE_URL")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	provider := routing.NewOSRMRouteProvider(osrmBaseURL, osrmProfile)

	// Route cache: shared Redis when configured, shared Postgres when a
	// DATABASE_URL is set (run cmd/dbtool first), the local SQLite file
	// otherwise. Either way recomputation is skipped for unchanged days.
	var routeCache ports.RouteCache
	switch {
	case redisAddr != "":
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		routeCache = cache.NewRedisRouteCache(client, 0)
		log.Printf("route cache backend=redis addr=%s", redisAddr)
	case databaseURL != "":
		pool, err := pgdb.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		routeCache = cache.NewSQLRouteCache(pool)
		log.Print("route cache backend=postgres")
	default:
		routeCache = cache.NewSqliteRouteCache(db)
		log.Printf("route cache backend=sqlite path=%s", dbPath)
	}

	repo := repositories.NewSqliteAttractionRepository(db)
	planner := &services.TripRoutePlanner{Provider: provider, Cache: routeCache}
	router := api.NewRouter(repo, provider, planner)

	// Timeouts are tuned for cold-cache trip routing (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); os.IsNotExist(err) {
		log.Printf("seed file %q not found, skipping seed", seedPath)
		return nil
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
