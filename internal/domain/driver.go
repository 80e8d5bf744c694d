package domain

import "time"

// Driver is a registered driver whose generated logs are stored per trip.
type Driver struct {
	DriverID  int
	Name      string
	HomeTZ    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
