package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Initialize the Postgres database schema (shared deployments).
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS attractions (
			attraction_id TEXT PRIMARY KEY,
			trip_id TEXT NOT NULL,
			name TEXT NOT NULL,
			city TEXT,
			lat DOUBLE PRECISION,
			lng DOUBLE PRECISION,
			day INTEGER NOT NULL,
			visit_date TEXT,
			position INTEGER NOT NULL,
			duration_minutes INTEGER,
			opening_time TEXT,
			closing_time TEXT,
			visited BOOLEAN NOT NULL DEFAULT FALSE,
			kind TEXT NOT NULL DEFAULT 'attraction'
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS route_cache (
			signature TEXT PRIMARY KEY,
			payload JSONB NOT NULL
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_attractions_trip_day
		ON attractions(trip_id, day);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate Postgres with attraction data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed attractions: read %q: %w", jsonPath, err)
	}

	var data []AttractionSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed attractions: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed attractions: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO attractions (
		attraction_id, trip_id, name, city, lat, lng,
		day, visit_date, position, duration_minutes,
		opening_time, closing_time, kind
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (attraction_id) DO UPDATE SET
		trip_id = EXCLUDED.trip_id,
		name = EXCLUDED.name,
		city = EXCLUDED.city,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		day = EXCLUDED.day,
		visit_date = EXCLUDED.visit_date,
		position = EXCLUDED.position,
		duration_minutes = EXCLUDED.duration_minutes,
		opening_time = EXCLUDED.opening_time,
		closing_time = EXCLUDED.closing_time,
		kind = EXCLUDED.kind;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed attractions: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, a := range data {
		if strings.TrimSpace(a.TripID) == "" {
			return fmt.Errorf("seed attractions: item at index %d: trip_id cannot be empty", i+1)
		}
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("seed attractions: item at index %d: name cannot be empty", i+1)
		}
		if a.AttractionID == "" {
			a.AttractionID = uuid.NewString()
		}
		if a.Kind == "" {
			a.Kind = "attraction"
		}

		if _, err := stmt.Exec(
			a.AttractionID, a.TripID, a.Name, a.City, a.Lat, a.Lng,
			a.Day, a.Date, a.Order, a.DurationMinutes,
			a.OpeningTime, a.ClosingTime, a.Kind,
		); err != nil {
			return fmt.Errorf("seed attractions: insert attraction_id=%s: %w", a.AttractionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed attractions: commit tx: %w", err)
	}

	return nil
}
