package hos

import (
	"fmt"

	"hos-trip-service/internal/domain"
)

// EvaluateCompliance checks each day's totals against the per-day limits
// and returns a fresh report. Days are evaluated independently; there is
// no cross-day rolling-window check. Regulatory breaches are data for the
// caller to present, not errors; this function cannot fail.
func EvaluateCompliance(logs []domain.DailyLog) domain.ComplianceReport {
	violations := []string{}
	warnings := []string{}

	for i, log := range logs {
		day := i + 1
		t := log.Totals

		if t.DrivingHours > MaxDrivingHours {
			violations = append(violations, fmt.Sprintf(
				"Day %d: Exceeded 11-hour driving limit (%.1f hours)", day, t.DrivingHours,
			))
		}

		if t.OnDutyHours > MaxOnDutyHours {
			violations = append(violations, fmt.Sprintf(
				"Day %d: Exceeded 14-hour on-duty limit (%.1f hours)", day, t.OnDutyHours,
			))
		}

		rest := t.OffDutyHours + t.SleeperBerthHours
		if rest < MinRestHours {
			violations = append(violations, fmt.Sprintf(
				"Day %d: Insufficient rest period (%.1f hours, minimum 10 required)", day, rest,
			))
		}

		// Approaching the driving limit is worth surfacing even when the
		// day is otherwise legal. Fires alongside the 11-hour violation.
		if t.DrivingHours > HighDrivingWarnHours {
			warnings = append(warnings, fmt.Sprintf(
				"Day %d: High driving hours (%.1f hours)", day, t.DrivingHours,
			))
		}
	}

	return domain.ComplianceReport{
		IsCompliant: len(violations) == 0,
		Violations:  violations,
		Warnings:    warnings,
	}
}
