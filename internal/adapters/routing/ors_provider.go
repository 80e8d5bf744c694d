package routing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"hos-trip-service/internal/domain"
)

// RouteCache is a persistent cache for computed route legs, keyed by
// normalized origin/destination coordinate strings.
type RouteCache interface {
	Get(ctx context.Context, origin, destination string) (domain.Route, bool, error)
	Put(ctx context.Context, origin, destination string, route domain.Route) error
}

// AddressCache is a persistent cache for reverse-geocoded addresses,
// keyed by normalized coordinate strings.
type AddressCache interface {
	Get(ctx context.Context, position string) (string, bool, error)
	Put(ctx context.Context, position, address string) error
}

// ORSProvider resolves routes and addresses through OpenRouteService.
//
// It coordinates persistent route and geocode caching with external API
// calls retried on transient failures. Both caches are optional. The
// provider is safe for concurrent use.
type ORSProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	profile      string
	routeCache   RouteCache
	addressCache AddressCache
}

func NewORSProvider(apiKey string, routeCache RouteCache, addressCache AddressCache) (*ORSProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSProvider{
		session: &http.Client{Timeout: 15 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		// Heavy goods vehicle profile: routes and durations for trucks.
		profile:      "driving-hgv",
		routeCache:   routeCache,
		addressCache: addressCache,
	}, nil
}

// GetRoute returns distance, duration and geometry for one leg,
// consulting the route cache before calling the directions endpoint.
func (o *ORSProvider) GetRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (domain.Route, error) {
	originKey := origin.Key()
	destKey := destination.Key()

	if o.routeCache != nil {
		cached, ok, err := o.routeCache.Get(ctx, originKey, destKey)
		if err != nil {
			return domain.Route{}, fmt.Errorf("get route cache %s -> %s: %w", originKey, destKey, err)
		}
		if ok {
			return cached, nil
		}
	}

	route, err := o.fetchDirections(ctx, origin, destination)
	if err != nil {
		return domain.Route{}, fmt.Errorf("fetch directions %s -> %s: %w", originKey, destKey, err)
	}

	if o.routeCache != nil {
		if err := o.routeCache.Put(ctx, originKey, destKey, route); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return route, nil
}

// ReverseGeocode resolves a coordinate to an address label, consulting
// the address cache before calling the geocoding endpoint.
func (o *ORSProvider) ReverseGeocode(
	ctx context.Context,
	position domain.Coordinates,
) (string, error) {
	key := position.Key()

	if o.addressCache != nil {
		cached, ok, err := o.addressCache.Get(ctx, key)
		if err != nil {
			return "", fmt.Errorf("get geocode cache %s: %w", key, err)
		}
		if ok {
			return cached, nil
		}
	}

	address, err := o.fetchReverseGeocode(ctx, position)
	if err != nil {
		return "", fmt.Errorf("reverse geocode %s: %w", key, err)
	}

	if o.addressCache != nil {
		if err := o.addressCache.Put(ctx, key, address); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return address, nil
}
