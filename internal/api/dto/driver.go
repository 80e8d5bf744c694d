package dto

import (
	"time"

	"hos-trip-service/internal/domain"
)

type DriverResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	HomeTZ    string    `json:"home_tz"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListDriversResponse struct {
	Drivers []DriverResponse `json:"drivers"`
}

type DriverLogsResponse struct {
	DriverID int               `json:"driver_id"`
	Logs     []domain.DailyLog `json:"logs"`
}
