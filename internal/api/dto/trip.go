package dto

import "hos-trip-service/internal/domain"

// PlanTripRequest mirrors the frontend's trip form payload. Waypoints
// arrive as [lon, lat] pairs from the map widget.
type PlanTripRequest struct {
	CurrentLocation       [2]float64 `json:"current_location"`
	Pickup                [2]float64 `json:"pickup"`
	Dropoff               [2]float64 `json:"dropoff"`
	DriverID              int        `json:"driver_id"`
	CurrentCycleUsedHours float64    `json:"current_cycle_used_hours"`
	StartDate             string     `json:"start_date"`
	StartTime             string     `json:"start_time"`
}

// RouteGeometry is GeoJSON LineString geometry for the map renderer.
type RouteGeometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

type RouteResponse struct {
	DistanceMeters  int           `json:"distance"`
	DurationSeconds int           `json:"duration"`
	Geometry        RouteGeometry `json:"geometry"`
}

type TripPlanResponse struct {
	TripID         string                  `json:"trip_id"`
	Route          RouteResponse           `json:"route"`
	DailyLogs      []domain.DailyLog       `json:"daily_logs"`
	Compliance     domain.ComplianceReport `json:"compliance"`
	RestStops      []domain.RestStop       `json:"rest_stops"`
	Statistics     domain.RouteStatistics  `json:"statistics"`
	TotalDistance  float64                 `json:"total_distance"`
	TotalDuration  float64                 `json:"total_duration"`
	CurrentAddress string                  `json:"current_address,omitempty"`
	PickupAddress  string                  `json:"pickup_address,omitempty"`
	DropoffAddress string                  `json:"dropoff_address,omitempty"`
}
