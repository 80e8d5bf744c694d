package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hos-trip-service/internal/platform/obs"
)

// Postgres-backed geocode cache.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

func (s *SQLGeocodeCache) Get(ctx context.Context, position string) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return "", false, errors.New("geocode cache: db is nil")
	}
	if position == "" {
		return "", false, errors.New("get geocode cache: position must not be empty")
	}

	q := `
	SELECT address
	FROM geocode_cache
	WHERE position = $1;
	`

	var address string
	err = s.DB.QueryRowContext(ctx, q, position).Scan(&address)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return address, true, nil
}

func (s *SQLGeocodeCache) Put(ctx context.Context, position, address string) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	if position == "" {
		return errors.New("insert geocode cache: position must not be empty")
	}

	q := `
	INSERT INTO geocode_cache (position, address)
	VALUES ($1, $2)
	ON CONFLICT (position) DO UPDATE
	SET address = EXCLUDED.address;
	`

	if _, err := s.DB.ExecContext(ctx, q, position, address); err != nil {
		return fmt.Errorf("insert geocode cache %s: %w", position, err)
	}

	return nil
}
