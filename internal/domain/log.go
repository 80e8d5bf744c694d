package domain

// LogEntry is one contiguous stretch of a driver's day spent in a single
// duty status. Times are "HH:MM" clock strings on a 24-hour day;
// "24:00" marks end of day. An end at "00:00" means the entry runs to
// midnight.
type LogEntry struct {
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	Status        DutyStatus `json:"status"`
	Location      string     `json:"location,omitempty"`
	DurationHours float64    `json:"duration"`
}

// DailyTotals are the hours a day's timeline spends in each duty
// category. A full day sums to 24.
type DailyTotals struct {
	DrivingHours      float64 `json:"driving_hours"`
	OnDutyHours       float64 `json:"on_duty_hours"`
	OffDutyHours      float64 `json:"off_duty_hours"`
	SleeperBerthHours float64 `json:"sleeper_berth_hours"`
}

// DailyLog is one calendar day of a driver's record of duty status.
type DailyLog struct {
	Date    string      `json:"date"`
	Entries []LogEntry  `json:"entries"`
	Totals  DailyTotals `json:"totals"`
}

// ComplianceReport is the outcome of checking a multi-day log set
// against the hours-of-service limits. Violations are hard failures;
// warnings flag days approaching a limit.
type ComplianceReport struct {
	IsCompliant bool     `json:"is_compliant"`
	Violations  []string `json:"violations"`
	Warnings    []string `json:"warnings"`
}
