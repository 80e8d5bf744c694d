package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"hos-trip-service/internal/domain"
	"hos-trip-service/internal/platform/obs"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// fetchDirections retrieves one route leg from the OpenRouteService
// directions endpoint (GeoJSON flavor, so geometry comes back decoded).
func (o *ORSProvider) fetchDirections(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ domain.Route, err error) {
	defer obs.Time(ctx, "ors.fetchDirections")(&err)

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{origin.CoordsToList(), destination.CoordsToList()},
	})
	if err != nil {
		return domain.Route{}, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return domain.Route{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Route{}, fmt.Errorf("decode directions response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Route{}, fmt.Errorf("no route found")
	}

	feature := decoded.Features[0]

	geometry := make([]domain.Coordinates, 0, len(feature.Geometry.Coordinates))
	for _, pair := range feature.Geometry.Coordinates {
		if len(pair) < 2 {
			return domain.Route{}, fmt.Errorf("invalid coordinate pair in geometry")
		}
		geometry = append(geometry, domain.Coordinates{Lon: pair[0], Lat: pair[1]})
	}

	// ORS returns float metrics; round to nearest integer for domain consistency.
	return domain.Route{
		DistanceMeters:  int(math.Round(feature.Properties.Summary.Distance)),
		DurationSeconds: int(math.Round(feature.Properties.Summary.Duration)),
		Geometry:        geometry,
	}, nil
}

type reverseGeocodeResponse struct {
	Features []struct {
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// fetchReverseGeocode resolves a coordinate to the closest address label
// via the OpenRouteService reverse geocoding endpoint.
func (o *ORSProvider) fetchReverseGeocode(
	ctx context.Context,
	position domain.Coordinates,
) (_ string, err error) {
	defer obs.Time(ctx, "ors.fetchReverseGeocode")(&err)

	endpoint := o.baseURL + "/geocode/reverse"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("point.lon", fmt.Sprintf("%f", position.Lon))
		q.Set("point.lat", fmt.Sprintf("%f", position.Lat))
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded reverseGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode reverse geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return "", fmt.Errorf("no address found for %s", position.Key())
	}

	return decoded.Features[0].Properties.Label, nil
}
