package ports

import (
	"context"

	"hos-trip-service/internal/domain"
)

// Port: a boundary for retrieving Driver entities from a data source.
type DriverRepository interface {
	ListDrivers(ctx context.Context) ([]*domain.Driver, error)
	GetDriver(ctx context.Context, driverID int) (*domain.Driver, error)
}

// Port: persistence for generated daily logs, grouped per trip.
type LogRepository interface {
	// Store the full log set produced for one planned trip.
	SaveTripLogs(ctx context.Context, tripID string, driverID int, logs []domain.DailyLog) error
	// Return all stored logs for a driver, oldest first.
	ListDriverLogs(ctx context.Context, driverID int) ([]domain.DailyLog, error)
}
