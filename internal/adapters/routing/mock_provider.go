package routing

import (
	"context"
	"fmt"

	"hos-trip-service/internal/domain"
)

type MockLeg struct {
	From, To domain.Coordinates
	Meters   int
	Seconds  int
	Geometry []domain.Coordinates
}

// MockRouteProvider serves fixed legs keyed by origin/destination, for
// tests and offline runs.
type MockRouteProvider struct {
	m map[string]domain.Route
}

func NewMockRouteProvider(legs []MockLeg) *MockRouteProvider {
	m := make(map[string]domain.Route, len(legs))
	for _, l := range legs {
		geometry := l.Geometry
		if len(geometry) == 0 {
			geometry = []domain.Coordinates{l.From, l.To}
		}
		m[l.From.Key()+"|"+l.To.Key()] = domain.Route{
			DistanceMeters:  l.Meters,
			DurationSeconds: l.Seconds,
			Geometry:        geometry,
		}
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) GetRoute(ctx context.Context, origin, destination domain.Coordinates) (domain.Route, error) {
	r, ok := p.m[origin.Key()+"|"+destination.Key()]
	if !ok {
		return domain.Route{}, fmt.Errorf("missing leg %s -> %s", origin.Key(), destination.Key())
	}
	return r, nil
}

// MockGeocoder resolves coordinates from a fixed address table.
type MockGeocoder struct {
	m map[string]string
}

func NewMockGeocoder(addresses map[domain.Coordinates]string) *MockGeocoder {
	m := make(map[string]string, len(addresses))
	for pos, addr := range addresses {
		m[pos.Key()] = addr
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) ReverseGeocode(ctx context.Context, position domain.Coordinates) (string, error) {
	addr, ok := g.m[position.Key()]
	if !ok {
		return "", fmt.Errorf("no address for %s", position.Key())
	}
	return addr, nil
}
