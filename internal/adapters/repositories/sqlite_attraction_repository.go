package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"trip-timeline-service/internal/domain"
)

// SQLite-backed implementation of the AttractionRepository port.
type SqliteAttractionRepository struct{ DB *sql.DB }

func NewSqliteAttractionRepository(db *sql.DB) *SqliteAttractionRepository {
	return &SqliteAttractionRepository{DB: db}
}

const attractionColumns = `
	attraction_id, name, city, lat, lng,
	day, visit_date, position, duration_minutes,
	opening_time, closing_time, visited, kind
`

// ListByTrip returns every stop of a trip, ordered by day and position.
func (s *SqliteAttractionRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.Stop, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite attraction repository: DB is nil")
	}

	query := `
	SELECT ` + attractionColumns + `
	FROM attractions
	WHERE trip_id = ?
	ORDER BY day, position;
	`
	rows, err := s.DB.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("list attractions: query attractions table: %w", err)
	}
	defer rows.Close()

	return scanStops(rows)
}

// ListByDay returns one day's stops for a trip, ordered by position.
func (s *SqliteAttractionRepository) ListByDay(ctx context.Context, tripID string, day int) ([]*domain.Stop, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite attraction repository: DB is nil")
	}

	query := `
	SELECT ` + attractionColumns + `
	FROM attractions
	WHERE trip_id = ? AND day = ?
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query, tripID, day)
	if err != nil {
		return nil, fmt.Errorf("list attractions by day: query attractions table: %w", err)
	}
	defer rows.Close()

	return scanStops(rows)
}

// Create stores a new stop, assigning a fresh ID when the caller left it empty.
func (s *SqliteAttractionRepository) Create(ctx context.Context, tripID string, stop *domain.Stop) error {
	if s.DB == nil {
		return errors.New("sqlite attraction repository: DB is nil")
	}
	if stop == nil {
		return errors.New("create attraction: stop is nil")
	}
	if stop.ID == "" {
		stop.ID = uuid.NewString()
	}
	if stop.Kind == "" {
		stop.Kind = domain.KindAttraction
	}

	var lat, lng *float64
	if stop.Coordinates != nil {
		lat = &stop.Coordinates.Lat
		lng = &stop.Coordinates.Lng
	}

	query := `
	INSERT INTO attractions (
		attraction_id, trip_id, name, city, lat, lng,
		day, visit_date, position, duration_minutes,
		opening_time, closing_time, visited, kind
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(ctx, query,
		stop.ID, tripID, stop.Name, stop.City, lat, lng,
		stop.Day, stop.Date, stop.Order, stop.DurationMinutes,
		stop.OpeningTime, stop.ClosingTime, stop.Visited, string(stop.Kind),
	)
	if err != nil {
		return fmt.Errorf("create attraction %q: %w", stop.Name, err)
	}

	return nil
}

func scanStops(rows *sql.Rows) ([]*domain.Stop, error) {
	stops := make([]*domain.Stop, 0, 32)
	for rows.Next() {
		var (
			stop     domain.Stop
			city     sql.NullString
			lat, lng sql.NullFloat64
			date     sql.NullString
			duration sql.NullInt64
			opening  sql.NullString
			closing  sql.NullString
			kind     string
		)
		err := rows.Scan(
			&stop.ID, &stop.Name, &city, &lat, &lng,
			&stop.Day, &date, &stop.Order, &duration,
			&opening, &closing, &stop.Visited, &kind,
		)
		if err != nil {
			return nil, fmt.Errorf("list attractions: scan row: %w", err)
		}

		stop.City = city.String
		stop.Date = date.String
		stop.OpeningTime = opening.String
		stop.ClosingTime = closing.String
		stop.Kind = domain.StopKind(kind)
		if lat.Valid && lng.Valid {
			stop.Coordinates = &domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
		}
		if duration.Valid {
			minutes := int(duration.Int64)
			stop.DurationMinutes = &minutes
		}

		stops = append(stops, &stop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attractions: row iteration: %w", err)
	}

	return stops, nil
}
