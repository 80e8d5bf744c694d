package ports

import (
	"context"

	"hos-trip-service/internal/domain"
)

// Contract for retrieving a driving route between two coordinates.
type RouteProvider interface {
	// Return distance, duration and road geometry for one leg.
	GetRoute(ctx context.Context, origin, destination domain.Coordinates) (domain.Route, error)
}

// Resolves a coordinate pair to a human-readable address.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, position domain.Coordinates) (string, error)
}
