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

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAttractionsQuery := `
	CREATE TABLE IF NOT EXISTS attractions (
		attraction_id TEXT PRIMARY KEY,
		trip_id TEXT NOT NULL,
		name TEXT NOT NULL,
		city TEXT,
		lat REAL,
		lng REAL,
		day INTEGER NOT NULL,
		visit_date TEXT,
		position INTEGER NOT NULL,
		duration_minutes INTEGER,
		opening_time TEXT,
		closing_time TEXT,
		visited INTEGER NOT NULL DEFAULT 0,
		kind TEXT NOT NULL DEFAULT 'attraction'
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		signature TEXT PRIMARY KEY,
		payload TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_attractions_trip_day
	ON attractions(trip_id, day);
	`

	statements := []string{
		createAttractionsQuery,
		createRouteCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type AttractionSeed struct {
	AttractionID    string   `json:"attraction_id"`
	TripID          string   `json:"trip_id"`
	Name            string   `json:"name"`
	City            string   `json:"city"`
	Lat             *float64 `json:"lat"`
	Lng             *float64 `json:"lng"`
	Day             int      `json:"day"`
	Date            string   `json:"date"`
	Order           int      `json:"order"`
	DurationMinutes *int     `json:"duration_minutes"`
	OpeningTime     string   `json:"opening_time"`
	ClosingTime     string   `json:"closing_time"`
	Kind            string   `json:"kind"`
}

// Populate the database with attraction data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed attractions: read %q: %w", jsonPath, err)
	}

	var data []AttractionSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed attractions: parse json: %w", err)
	}

	rows := make([]AttractionSeed, 0, len(data))
	for i, item := range data {
		if strings.TrimSpace(item.TripID) == "" {
			return fmt.Errorf("seed attractions: item at index %d: trip_id cannot be empty", i+1)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed attractions: item at index %d: name cannot be empty", i+1)
		}
		if item.AttractionID == "" {
			item.AttractionID = uuid.NewString()
		}
		if item.Kind == "" {
			item.Kind = "attraction"
		}
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed attractions: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO attractions (
		attraction_id, trip_id, name, city, lat, lng,
		day, visit_date, position, duration_minutes,
		opening_time, closing_time, kind
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed attractions: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range rows {
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
