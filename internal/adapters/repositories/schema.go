package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// InitSchema creates the service tables if they do not exist. The DDL is
// kept portable across SQLite and Postgres so the same schema backs both
// the local server database and the dbtool deployment path.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		driver_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		home_tz TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`

	createDailyLogsQuery := `
	CREATE TABLE IF NOT EXISTS daily_logs (
		trip_id TEXT NOT NULL,
		driver_id INTEGER NOT NULL,
		log_date TEXT NOT NULL,
		entries TEXT NOT NULL,
		totals TEXT NOT NULL,
		PRIMARY KEY (trip_id, log_date)
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_meters INTEGER NOT NULL,
		duration_seconds INTEGER NOT NULL,
		geometry TEXT NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		position TEXT PRIMARY KEY,
		address TEXT NOT NULL
	);
	`

	createLogIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_daily_logs_driver_date
	ON daily_logs(driver_id, log_date);
	`

	statements := []string{
		createDriversQuery,
		createDailyLogsQuery,
		createRouteCacheQuery,
		createGeocodeCacheQuery,
		createLogIndexQuery,
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

type DriverSeed struct {
	DriverID int    `json:"driver_id"`
	Name     string `json:"name"`
	HomeTZ   string `json:"home_tz"`
}

// LoadDriverSeeds reads and validates the driver seed file.
func LoadDriverSeeds(jsonPath string) ([]DriverSeed, error) {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed drivers: read %q: %w", jsonPath, err)
	}

	var data []DriverSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("seed drivers: parse json: %w", err)
	}

	rows := make([]DriverSeed, 0, len(data))
	for i, item := range data {
		if item.DriverID <= 0 {
			return nil, fmt.Errorf("seed drivers: invalid driver_id at index %d: %d", i+1, item.DriverID)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("seed drivers: item at index %d: name cannot be empty", i+1)
		}

		tz := strings.TrimSpace(item.HomeTZ)
		if tz == "" {
			tz = "America/Phoenix"
		}
		rows = append(rows, DriverSeed{DriverID: item.DriverID, Name: name, HomeTZ: tz})
	}

	return rows, nil
}

// SeedDriversFromJSON populates the drivers table in a SQLite database
// from a JSON file. Existing rows with the same id are updated in place.
// Postgres deployments seed through dbtool, which binds $n placeholders.
func SeedDriversFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := LoadDriverSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed drivers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO drivers (driver_id, name, home_tz, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (driver_id) DO UPDATE
	SET name = excluded.name,
		home_tz = excluded.home_tz,
		updated_at = excluded.updated_at;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed drivers: prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, d := range rows {
		if _, err := stmt.Exec(d.DriverID, d.Name, d.HomeTZ, now, now); err != nil {
			return fmt.Errorf("seed drivers: insert driver_id=%d: %w", d.DriverID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed drivers: commit tx: %w", err)
	}

	return nil
}
