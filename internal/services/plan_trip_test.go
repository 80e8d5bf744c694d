package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hos-trip-service/internal/adapters/routing"
	"hos-trip-service/internal/domain"
)

type fakeLogRepo struct {
	saveErr  error
	tripID   string
	driverID int
	logs     []domain.DailyLog
	calls    int
}

func (f *fakeLogRepo) SaveTripLogs(ctx context.Context, tripID string, driverID int, logs []domain.DailyLog) error {
	f.calls++
	f.tripID = tripID
	f.driverID = driverID
	f.logs = logs
	return f.saveErr
}

func (f *fakeLogRepo) ListDriverLogs(ctx context.Context, driverID int) ([]domain.DailyLog, error) {
	return nil, nil
}

var (
	chicago = domain.Coordinates{Lon: -87.65, Lat: 41.85}
	stLouis = domain.Coordinates{Lon: -90.19, Lat: 38.63}
	houston = domain.Coordinates{Lon: -95.37, Lat: 29.76}
)

// twoLegProvider serves a 300 mile / 5 hour leg to the pickup and a
// 500 mile / 8 hour leg to the dropoff.
func twoLegProvider() *routing.MockRouteProvider {
	return routing.NewMockRouteProvider([]routing.MockLeg{
		{From: chicago, To: stLouis, Meters: 482802, Seconds: 5 * 3600},
		{From: stLouis, To: houston, Meters: 804670, Seconds: 8 * 3600},
	})
}

func TestPlanTrip(t *testing.T) {
	provider := twoLegProvider()
	geocoder := routing.NewMockGeocoder(map[domain.Coordinates]string{
		chicago: "Chicago, IL",
		stLouis: "St. Louis, MO",
		houston: "Houston, TX",
	})
	repo := &fakeLogRepo{}

	req := PlanTripRequest{
		CurrentLocation: chicago,
		Pickup:          stLouis,
		Dropoff:         houston,
		DriverID:        7,
		StartDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "08:00",
	}

	plan, err := PlanTrip(context.Background(), req, provider, geocoder, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.TripID == "" {
		t.Fatal("expected a trip id")
	}
	if plan.Route.DistanceMeters != 482802+804670 {
		t.Fatalf("distance = %d, want %d", plan.Route.DistanceMeters, 482802+804670)
	}
	if plan.Route.DurationSeconds != 13*3600 {
		t.Fatalf("duration = %d, want %d", plan.Route.DurationSeconds, 13*3600)
	}
	// Each leg's geometry defaults to its endpoints; the shared pickup
	// point appears once in the combined route.
	if len(plan.Route.Geometry) != 3 {
		t.Fatalf("geometry has %d points, want 3", len(plan.Route.Geometry))
	}

	near(t, plan.Summary.TotalDistanceMiles, 800, 0.01, "summary distance")
	near(t, plan.Summary.TotalDurationHours, 13, 1e-9, "summary duration")

	// Thirteen driving hours pack into two days.
	if len(plan.DailyLogs) != 2 {
		t.Fatalf("expected 2 daily logs, got %d", len(plan.DailyLogs))
	}
	if plan.DailyLogs[0].Date != "2026-03-02" {
		t.Fatalf("first log date = %q, want 2026-03-02", plan.DailyLogs[0].Date)
	}
	if !plan.Compliance.IsCompliant {
		t.Fatalf("expected compliant plan, violations: %v", plan.Compliance.Violations)
	}
	if len(plan.Compliance.Warnings) != 1 {
		t.Fatalf("expected 1 high-driving warning, got %v", plan.Compliance.Warnings)
	}

	// One suggested stop: 13 hours with the 8 hour default interval.
	if len(plan.RestStops) != 1 {
		t.Fatalf("expected 1 rest stop, got %d", len(plan.RestStops))
	}
	near(t, plan.RestStops[0].HoursFromStart, 8, 1e-9, "rest stop hours")

	near(t, plan.Statistics.AverageSpeedMPH, 800.0/13, 0.01, "average speed")

	if plan.CurrentAddress != "Chicago, IL" || plan.PickupAddress != "St. Louis, MO" || plan.DropoffAddress != "Houston, TX" {
		t.Fatalf("addresses = %q / %q / %q", plan.CurrentAddress, plan.PickupAddress, plan.DropoffAddress)
	}

	if repo.calls != 1 {
		t.Fatalf("expected 1 save, got %d", repo.calls)
	}
	if repo.tripID != plan.TripID || repo.driverID != 7 {
		t.Fatalf("saved trip_id=%q driver_id=%d, want %q / 7", repo.tripID, repo.driverID, plan.TripID)
	}
	if len(repo.logs) != len(plan.DailyLogs) {
		t.Fatalf("saved %d logs, want %d", len(repo.logs), len(plan.DailyLogs))
	}
}

func TestPlanTripWithoutDriver(t *testing.T) {
	repo := &fakeLogRepo{}
	req := PlanTripRequest{
		CurrentLocation: chicago,
		Pickup:          stLouis,
		Dropoff:         houston,
		StartDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "08:00",
	}

	plan, err := PlanTrip(context.Background(), req, twoLegProvider(), nil, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.calls != 0 {
		t.Fatalf("expected no saves without a driver, got %d", repo.calls)
	}
	if plan.CurrentAddress != "" || plan.PickupAddress != "" || plan.DropoffAddress != "" {
		t.Fatal("expected empty addresses without a geocoder")
	}
}

func TestPlanTripGeocoderFailureIsBestEffort(t *testing.T) {
	// Geocoder with no entries fails every lookup.
	geocoder := routing.NewMockGeocoder(nil)
	req := PlanTripRequest{
		CurrentLocation: chicago,
		Pickup:          stLouis,
		Dropoff:         houston,
		StartDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "08:00",
	}

	plan, err := PlanTrip(context.Background(), req, twoLegProvider(), geocoder, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.CurrentAddress != "" {
		t.Fatalf("expected empty address on geocoder failure, got %q", plan.CurrentAddress)
	}
}

func TestPlanTripMissingLeg(t *testing.T) {
	// Provider only knows the first leg.
	provider := routing.NewMockRouteProvider([]routing.MockLeg{
		{From: chicago, To: stLouis, Meters: 482802, Seconds: 5 * 3600},
	})
	req := PlanTripRequest{
		CurrentLocation: chicago,
		Pickup:          stLouis,
		Dropoff:         houston,
		StartDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "08:00",
	}

	_, err := PlanTrip(context.Background(), req, provider, nil, nil)
	if err == nil {
		t.Fatal("expected an error for the missing dropoff leg")
	}
	if !strings.Contains(err.Error(), "route to dropoff") {
		t.Fatalf("error = %v, want route to dropoff failure", err)
	}
}

func TestPlanTripSaveFailure(t *testing.T) {
	repo := &fakeLogRepo{saveErr: errors.New("disk full")}
	req := PlanTripRequest{
		CurrentLocation: chicago,
		Pickup:          stLouis,
		Dropoff:         houston,
		DriverID:        7,
		StartDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "08:00",
	}

	_, err := PlanTrip(context.Background(), req, twoLegProvider(), nil, repo)
	if err == nil {
		t.Fatal("expected save failure to surface")
	}
	if !strings.Contains(err.Error(), "save logs for driver 7") {
		t.Fatalf("error = %v, want save failure", err)
	}
}

func TestCombineLegsKeepsDistinctJunctions(t *testing.T) {
	a := domain.Route{DistanceMeters: 100, DurationSeconds: 60, Geometry: []domain.Coordinates{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}}}
	b := domain.Route{DistanceMeters: 200, DurationSeconds: 120, Geometry: []domain.Coordinates{{Lon: 2, Lat: 2}, {Lon: 3, Lat: 3}}}

	combined := combineLegs(a, b)
	if combined.DistanceMeters != 300 || combined.DurationSeconds != 180 {
		t.Fatalf("totals = %d m / %d s, want 300 / 180", combined.DistanceMeters, combined.DurationSeconds)
	}
	// No shared junction point, so nothing is dropped.
	if len(combined.Geometry) != 4 {
		t.Fatalf("geometry has %d points, want 4", len(combined.Geometry))
	}
}
