package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"hos-trip-service/internal/domain"
	"hos-trip-service/internal/hos"
	"hos-trip-service/internal/ports"

	"github.com/google/uuid"
)

// Driving hours between suggested rest stops.
const DefaultRestIntervalHours = 8.0

type PlanTripRequest struct {
	CurrentLocation domain.Coordinates
	Pickup          domain.Coordinates
	Dropoff         domain.Coordinates
	DriverID        int
	StartDate       time.Time
	StartTime       string
}

// TripPlan is the full planning result: the combined route, the
// HOS-compliant schedule covering it, its compliance evaluation, and the
// derived display data.
type TripPlan struct {
	TripID     string
	Route      domain.Route
	Summary    domain.RouteSummary
	DailyLogs  []domain.DailyLog
	Compliance domain.ComplianceReport
	RestStops  []domain.RestStop
	Statistics domain.RouteStatistics

	CurrentAddress string
	PickupAddress  string
	DropoffAddress string
}

// PlanTrip fetches the two route legs (current location to pickup,
// pickup to dropoff), generates a daily schedule covering the combined
// driving duration, evaluates it, and persists the logs under a fresh
// trip id when a driver is given.
//
// Reverse-geocoded addresses are best effort: a geocoder failure leaves
// the address empty rather than failing the plan.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	provider ports.RouteProvider,
	geocoder ports.ReverseGeocoder,
	logRepo ports.LogRepository,
) (*TripPlan, error) {
	toPickup, err := provider.GetRoute(ctx, req.CurrentLocation, req.Pickup)
	if err != nil {
		return nil, fmt.Errorf("plan trip: route to pickup: %w", err)
	}

	toDropoff, err := provider.GetRoute(ctx, req.Pickup, req.Dropoff)
	if err != nil {
		return nil, fmt.Errorf("plan trip: route to dropoff: %w", err)
	}

	route := combineLegs(toPickup, toDropoff)
	summary := Summarize(route)

	schedule := hos.GenerateSchedule(summary.TotalDurationHours, req.StartTime, req.StartDate)
	report := hos.EvaluateCompliance(schedule)

	plan := &TripPlan{
		TripID:     uuid.NewString(),
		Route:      route,
		Summary:    summary,
		DailyLogs:  schedule,
		Compliance: report,
		RestStops:  RestStopsAlong(route, DefaultRestIntervalHours),
		Statistics: RouteStatistics(summary),
	}

	if geocoder != nil {
		plan.CurrentAddress = lookupAddress(ctx, geocoder, req.CurrentLocation)
		plan.PickupAddress = lookupAddress(ctx, geocoder, req.Pickup)
		plan.DropoffAddress = lookupAddress(ctx, geocoder, req.Dropoff)
	}

	if logRepo != nil && req.DriverID > 0 {
		if err := logRepo.SaveTripLogs(ctx, plan.TripID, req.DriverID, schedule); err != nil {
			return nil, fmt.Errorf("plan trip: save logs for driver %d: %w", req.DriverID, err)
		}
	}

	return plan, nil
}

// combineLegs merges consecutive legs into one route, dropping the
// duplicated junction point where one leg ends and the next begins.
func combineLegs(legs ...domain.Route) domain.Route {
	var out domain.Route
	for _, leg := range legs {
		out.DistanceMeters += leg.DistanceMeters
		out.DurationSeconds += leg.DurationSeconds

		geo := leg.Geometry
		if len(out.Geometry) > 0 && len(geo) > 0 && out.Geometry[len(out.Geometry)-1] == geo[0] {
			geo = geo[1:]
		}
		out.Geometry = append(out.Geometry, geo...)
	}
	return out
}

func lookupAddress(ctx context.Context, geocoder ports.ReverseGeocoder, pos domain.Coordinates) string {
	addr, err := geocoder.ReverseGeocode(ctx, pos)
	if err != nil {
		log.Printf("reverse geocode %s failed: %v", pos.Key(), err)
		return ""
	}
	return addr
}
