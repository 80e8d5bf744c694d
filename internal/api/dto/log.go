package dto

import "hos-trip-service/internal/domain"

// TimelineRequest carries one day's raw entries for quantization.
type TimelineRequest struct {
	Entries []domain.LogEntry `json:"entries"`
}

// TimelineResponse is the rendered form of one day: the 96-slot status
// sequence drawn by the log sheet canvas, its totals, and any advisory
// continuity issues found in the raw entries.
type TimelineResponse struct {
	Timeline []domain.DutyStatus `json:"timeline"`
	Totals   domain.DailyTotals  `json:"totals"`
	Issues   []string            `json:"issues"`
}

// ValidateLogsRequest carries a multi-day log set for evaluation.
type ValidateLogsRequest struct {
	DailyLogs []domain.DailyLog `json:"daily_logs"`
}
