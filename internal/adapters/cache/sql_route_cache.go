package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hos-trip-service/internal/domain"
	"hos-trip-service/internal/platform/obs"
)

// Postgres-backed route cache, used when the service runs against a
// shared database instead of a local SQLite file.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

func (s *SQLRouteCache) Get(ctx context.Context, origin, destination string) (_ domain.Route, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return domain.Route{}, false, errors.New("route cache: db is nil")
	}
	if origin == "" || destination == "" {
		return domain.Route{}, false, errors.New("get route cache: origin and destination must not be empty")
	}

	q := `
	SELECT distance_meters, duration_seconds, geometry
	FROM route_cache
	WHERE origin = $1 AND destination = $2;
	`

	var meters, seconds int
	var geometryJSON string
	err = s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&meters, &seconds, &geometryJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Route{}, false, nil
	}
	if err != nil {
		return domain.Route{}, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	geometry, err := decodeGeometry(geometryJSON)
	if err != nil {
		return domain.Route{}, false, fmt.Errorf("get route cache: %w", err)
	}

	return domain.Route{
		DistanceMeters:  meters,
		DurationSeconds: seconds,
		Geometry:        geometry,
	}, true, nil
}

func (s *SQLRouteCache) Put(ctx context.Context, origin, destination string, route domain.Route) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}
	if origin == "" || destination == "" {
		return errors.New("insert route cache: origin and destination must not be empty")
	}

	geometryJSON, err := encodeGeometry(route.Geometry)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	q := `
	INSERT INTO route_cache (origin, destination, distance_meters, duration_seconds, geometry)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds,
		geometry = EXCLUDED.geometry;
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, route.DistanceMeters, route.DurationSeconds, geometryJSON); err != nil {
		return fmt.Errorf("insert route cache %s -> %s: %w", origin, destination, err)
	}

	return nil
}
