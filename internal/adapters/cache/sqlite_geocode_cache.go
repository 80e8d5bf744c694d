package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite-backed cache mapping coordinate strings to resolved addresses.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Get fetches the cached address for a position; the second return
// reports a hit.
func (s *SqliteGeocodeCache) Get(ctx context.Context, position string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("geocode cache: db is nil")
	}
	if position == "" {
		return "", false, errors.New("get geocode cache: position must not be empty")
	}

	q := `
	SELECT address
	FROM geocode_cache
	WHERE position = ?;
	`

	var address string
	err := s.DB.QueryRowContext(ctx, q, position).Scan(&address)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return address, true, nil
}

// Put stores one position -> address mapping.
func (s *SqliteGeocodeCache) Put(ctx context.Context, position, address string) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	if position == "" {
		return errors.New("insert geocode cache: position must not be empty")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (position, address)
	VALUES (?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, position, address); err != nil {
		return fmt.Errorf("insert geocode cache %s: %w", position, err)
	}

	return nil
}
