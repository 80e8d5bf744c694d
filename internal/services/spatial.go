package services

import (
	"math"

	"hos-trip-service/internal/domain"
)

const (
	metersPerMile = 1609.34
	earthRadiusMi = 3958.8

	// Flat per-mile cost assumptions for the statistics display.
	fuelCostPerMile = 0.15
	tollCostPerMile = 0.05
)

var restStopAmenities = []string{"Fuel", "Food", "Restrooms", "Parking"}

// haversineMiles is the great-circle distance between two coordinates.
func haversineMiles(a, b domain.Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := latB - latA
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMi * math.Asin(math.Sqrt(h))
}

// geometryLengthMiles sums the segment lengths of a coordinate path.
func geometryLengthMiles(geometry []domain.Coordinates) float64 {
	var total float64
	for i := 1; i < len(geometry); i++ {
		total += haversineMiles(geometry[i-1], geometry[i])
	}
	return total
}

// alongGeometry walks the path and returns the point at the given
// distance from its start, interpolating linearly within a segment.
// Distances past the end clamp to the final point.
func alongGeometry(geometry []domain.Coordinates, miles float64) domain.Coordinates {
	if len(geometry) == 0 {
		return domain.Coordinates{}
	}
	if miles <= 0 {
		return geometry[0]
	}

	remaining := miles
	for i := 1; i < len(geometry); i++ {
		seg := haversineMiles(geometry[i-1], geometry[i])
		if seg <= 0 {
			continue
		}
		if remaining <= seg {
			f := remaining / seg
			return domain.Coordinates{
				Lon: geometry[i-1].Lon + (geometry[i].Lon-geometry[i-1].Lon)*f,
				Lat: geometry[i-1].Lat + (geometry[i].Lat-geometry[i-1].Lat)*f,
			}
		}
		remaining -= seg
	}

	return geometry[len(geometry)-1]
}

// Summarize converts a raw route into the miles/hours view the HOS
// scheduler and statistics display consume.
func Summarize(route domain.Route) domain.RouteSummary {
	return domain.RouteSummary{
		TotalDistanceMiles: float64(route.DistanceMeters) / metersPerMile,
		TotalDurationHours: float64(route.DurationSeconds) / 3600,
	}
}

// RouteStatistics derives display metrics from a route summary.
func RouteStatistics(summary domain.RouteSummary) domain.RouteStatistics {
	stats := domain.RouteStatistics{
		TotalDistanceMiles: summary.TotalDistanceMiles,
		TotalDurationHours: summary.TotalDurationHours,
		EstimatedFuelCost:  summary.TotalDistanceMiles * fuelCostPerMile,
		EstimatedTolls:     summary.TotalDistanceMiles * tollCostPerMile,
	}
	if summary.TotalDurationHours > 0 {
		stats.AverageSpeedMPH = summary.TotalDistanceMiles / summary.TotalDurationHours
	}
	return stats
}

// RestStopsAlong places suggested stops on the route geometry at every
// intervalHours of driving, assuming steady progress along the route.
// Amenity data would come from a truck-stop API; a fixed list stands in.
func RestStopsAlong(route domain.Route, intervalHours float64) []domain.RestStop {
	summary := Summarize(route)
	if intervalHours <= 0 || summary.TotalDurationHours <= 0 {
		return []domain.RestStop{}
	}

	n := int(math.Floor(summary.TotalDurationHours / intervalHours))
	stops := make([]domain.RestStop, 0, n)

	for i := 1; i <= n; i++ {
		hoursFromStart := float64(i) * intervalHours
		distance := hoursFromStart / summary.TotalDurationHours * summary.TotalDistanceMiles

		stops = append(stops, domain.RestStop{
			Location:       alongGeometry(route.Geometry, distance),
			DistanceMiles:  distance,
			HoursFromStart: hoursFromStart,
			Amenities:      restStopAmenities,
		})
	}

	return stops
}

// SplitByDrivingTime divides the route into stretches no longer than
// maxDrivingHours each, bounded by interpolated points on the geometry.
// Segment duration is prorated by distance share, mirroring how the trip
// progresses at the route's average speed.
func SplitByDrivingTime(route domain.Route, maxDrivingHours float64) []domain.RouteSegment {
	summary := Summarize(route)
	if maxDrivingHours <= 0 || summary.TotalDurationHours <= 0 {
		return []domain.RouteSegment{}
	}

	n := int(math.Ceil(summary.TotalDurationHours / maxDrivingHours))
	per := summary.TotalDistanceMiles / float64(n)

	segments := make([]domain.RouteSegment, 0, n)
	for i := 0; i < n; i++ {
		startMi := float64(i) * per
		endMi := math.Min(float64(i+1)*per, summary.TotalDistanceMiles)

		start := alongGeometry(route.Geometry, startMi)
		end := alongGeometry(route.Geometry, endMi)

		dist := haversineMiles(start, end)
		var dur float64
		if summary.TotalDistanceMiles > 0 {
			dur = dist / summary.TotalDistanceMiles * summary.TotalDurationHours
		}

		segments = append(segments, domain.RouteSegment{
			Start:         start,
			End:           end,
			DistanceMiles: dist,
			DurationHours: dur,
		})
	}

	return segments
}
