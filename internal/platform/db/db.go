package db

import (
	"database/sql"
	"fmt"
	"time"

	"trip-timeline-service/internal/config"
)

// Open a Postgres pool via the pgx stdlib driver. Pool sizing is taken from
// the environment so a shared route cache can be tuned per instance; cold
// trip fetches hold connections longer than typical request traffic.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	maxConns := config.GetInt("DB_MAX_CONNS", 10)
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxLifetime(time.Duration(config.GetInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return db, nil
}
