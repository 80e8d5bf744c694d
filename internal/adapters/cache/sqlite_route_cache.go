package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"hos-trip-service/internal/domain"
)

// SQLite-backed cache for computed route legs. Keys are normalized
// coordinate strings produced by the caller; geometry is stored as a
// JSON [lon,lat] pair list.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Get fetches one cached leg; the second return reports a hit.
func (s *SqliteRouteCache) Get(ctx context.Context, origin, destination string) (domain.Route, bool, error) {
	if s.DB == nil {
		return domain.Route{}, false, errors.New("route cache: db is nil")
	}
	if origin == "" || destination == "" {
		return domain.Route{}, false, errors.New("get route cache: origin and destination must not be empty")
	}

	q := `
	SELECT distance_meters, duration_seconds, geometry
	FROM route_cache
	WHERE origin = ? AND destination = ?;
	`

	var meters, seconds int
	var geometryJSON string
	err := s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&meters, &seconds, &geometryJSON)
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

// Put stores one computed leg, replacing any previous value.
func (s *SqliteRouteCache) Put(ctx context.Context, origin, destination string, route domain.Route) error {
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
	INSERT OR REPLACE INTO route_cache (
		origin,
		destination,
		distance_meters,
		duration_seconds,
		geometry
	)
	VALUES (?, ?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, route.DistanceMeters, route.DurationSeconds, geometryJSON); err != nil {
		return fmt.Errorf("insert route cache %s -> %s: %w", origin, destination, err)
	}

	return nil
}

func encodeGeometry(geometry []domain.Coordinates) (string, error) {
	pairs := make([][]float64, 0, len(geometry))
	for _, c := range geometry {
		pairs = append(pairs, c.CoordsToList())
	}
	b, err := json.Marshal(pairs)
	if err != nil {
		return "", fmt.Errorf("encode geometry: %w", err)
	}
	return string(b), nil
}

func decodeGeometry(geometryJSON string) ([]domain.Coordinates, error) {
	var pairs [][]float64
	if err := json.Unmarshal([]byte(geometryJSON), &pairs); err != nil {
		return nil, fmt.Errorf("decode geometry: %w", err)
	}

	geometry := make([]domain.Coordinates, 0, len(pairs))
	for _, p := range pairs {
		if len(p) < 2 {
			return nil, errors.New("decode geometry: short coordinate pair")
		}
		geometry = append(geometry, domain.Coordinates{Lon: p[0], Lat: p[1]})
	}
	return geometry, nil
}
