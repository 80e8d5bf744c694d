package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hos-trip-service/internal/domain"
)

// SQLite-backed implementation of the DriverRepository port.
type SqliteDriverRepository struct{ DB *sql.DB }

func NewSqliteDriverRepository(db *sql.DB) *SqliteDriverRepository {
	return &SqliteDriverRepository{DB: db}
}

// ListDrivers returns all registered drivers ordered by id.
func (s *SqliteDriverRepository) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite driver repository: DB is nil")
	}

	query := `
	SELECT driver_id, name, home_tz, created_at, updated_at
	FROM drivers
	ORDER BY driver_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drivers: query drivers table: %w", err)
	}
	defer rows.Close()

	drivers := make([]*domain.Driver, 0, 16)
	for rows.Next() {
		d, err := scanDriver(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list drivers: %w", err)
		}
		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: row iteration: %w", err)
	}

	return drivers, nil
}

// GetDriver returns one driver, or an error when the id is unknown.
func (s *SqliteDriverRepository) GetDriver(ctx context.Context, driverID int) (*domain.Driver, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite driver repository: DB is nil")
	}

	query := `
	SELECT driver_id, name, home_tz, created_at, updated_at
	FROM drivers
	WHERE driver_id = ?;
	`
	row := s.DB.QueryRowContext(ctx, query, driverID)

	d, err := scanDriver(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get driver: driver %d not found", driverID)
	}
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	return d, nil
}

func scanDriver(scan func(...any) error) (*domain.Driver, error) {
	var d domain.Driver
	var createdAt, updatedAt string

	if err := scan(&d.DriverID, &d.Name, &d.HomeTZ, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	d.CreatedAt = parseTimestamp(createdAt)
	d.UpdatedAt = parseTimestamp(updatedAt)
	return &d, nil
}

// Timestamps are stored as RFC 3339 text; anything unparseable scans as
// the zero time rather than failing the row.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
