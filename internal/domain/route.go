package domain

// Route is the raw result of a routing service query: total distance,
// travel duration, and the road geometry as an ordered coordinate path.
type Route struct {
	DistanceMeters  int
	DurationSeconds int
	Geometry        []Coordinates
}

// RouteSummary is the distilled view of a route the HOS scheduler and the
// statistics display consume.
type RouteSummary struct {
	TotalDistanceMiles float64 `json:"total_distance_miles"`
	TotalDurationHours float64 `json:"total_duration_hours"`
}

// RestStop is a suggested stopping point interpolated along the route
// geometry at a fixed driving-hours interval.
type RestStop struct {
	Location       Coordinates `json:"location"`
	DistanceMiles  float64     `json:"distance_miles"`
	HoursFromStart float64     `json:"hours_from_start"`
	Amenities      []string    `json:"amenities"`
}

// RouteSegment is a stretch of the route bounded by the daily driving
// limit, used to break long trips into per-day legs.
type RouteSegment struct {
	Start         Coordinates `json:"start"`
	End           Coordinates `json:"end"`
	DistanceMiles float64     `json:"distance_miles"`
	DurationHours float64     `json:"duration_hours"`
}

// RouteStatistics are derived trip metrics shown alongside the plan.
// Fuel and toll figures are flat per-mile estimates, not quotes.
type RouteStatistics struct {
	TotalDistanceMiles float64 `json:"total_distance_miles"`
	TotalDurationHours float64 `json:"total_duration_hours"`
	AverageSpeedMPH    float64 `json:"average_speed_mph"`
	EstimatedFuelCost  float64 `json:"estimated_fuel_cost"`
	EstimatedTolls     float64 `json:"estimated_tolls"`
}
