package hos

import (
	"strings"
	"testing"

	"hos-trip-service/internal/domain"
)

func day(totals domain.DailyTotals) domain.DailyLog {
	return domain.DailyLog{Date: "2026-01-01", Totals: totals}
}

func TestEvaluateComplianceDrivingLimit(t *testing.T) {
	report := EvaluateCompliance([]domain.DailyLog{
		day(domain.DailyTotals{DrivingHours: 12, OnDutyHours: 12.5, OffDutyHours: 11.5}),
	})

	if report.IsCompliant {
		t.Error("expected non-compliant report")
	}
	if len(report.Violations) != 1 {
		t.Fatalf("expected 1 violation, got %v", report.Violations)
	}
	if report.Violations[0] != "Day 1: Exceeded 11-hour driving limit (12.0 hours)" {
		t.Errorf("violation = %q", report.Violations[0])
	}
	// The high-driving warning fires off the same threshold family and
	// co-occurs with the violation.
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "High driving hours (12.0 hours)") {
		t.Errorf("warnings = %v", report.Warnings)
	}
}

func TestEvaluateComplianceHighDrivingWarningOnly(t *testing.T) {
	report := EvaluateCompliance([]domain.DailyLog{
		day(domain.DailyTotals{DrivingHours: 10.5, OnDutyHours: 11, OffDutyHours: 13}),
	})

	if !report.IsCompliant {
		t.Errorf("expected compliant report, violations: %v", report.Violations)
	}
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "High driving hours (10.5 hours)") {
		t.Errorf("warnings = %v", report.Warnings)
	}
}

func TestEvaluateComplianceOnDutyLimit(t *testing.T) {
	report := EvaluateCompliance([]domain.DailyLog{
		day(domain.DailyTotals{DrivingHours: 8, OnDutyHours: 15, OffDutyHours: 10}),
	})

	if len(report.Violations) != 1 {
		t.Fatalf("violations = %v", report.Violations)
	}
	if report.Violations[0] != "Day 1: Exceeded 14-hour on-duty limit (15.0 hours)" {
		t.Errorf("violation = %q", report.Violations[0])
	}
}

func TestEvaluateComplianceRestMinimum(t *testing.T) {
	report := EvaluateCompliance([]domain.DailyLog{
		day(domain.DailyTotals{DrivingHours: 9, OnDutyHours: 2, OffDutyHours: 5, SleeperBerthHours: 3.5}),
	})

	if len(report.Violations) != 1 {
		t.Fatalf("violations = %v", report.Violations)
	}
	if report.Violations[0] != "Day 1: Insufficient rest period (8.5 hours, minimum 10 required)" {
		t.Errorf("violation = %q", report.Violations[0])
	}
}

func TestEvaluateComplianceSleeperBerthCountsAsRest(t *testing.T) {
	report := EvaluateCompliance([]domain.DailyLog{
		day(domain.DailyTotals{DrivingHours: 9, OnDutyHours: 2, OffDutyHours: 4, SleeperBerthHours: 9}),
	})

	if !report.IsCompliant {
		t.Errorf("expected compliant, violations: %v", report.Violations)
	}
}

func TestEvaluateComplianceDayIndexing(t *testing.T) {
	report := EvaluateCompliance([]domain.DailyLog{
		day(domain.DailyTotals{DrivingHours: 8, OnDutyHours: 9, OffDutyHours: 15}),
		day(domain.DailyTotals{DrivingHours: 11.5, OnDutyHours: 12, OffDutyHours: 12}),
	})

	if len(report.Violations) != 1 || !strings.HasPrefix(report.Violations[0], "Day 2:") {
		t.Errorf("violations = %v, want one Day 2 violation", report.Violations)
	}
}

func TestEvaluateComplianceEmpty(t *testing.T) {
	report := EvaluateCompliance(nil)
	if !report.IsCompliant || len(report.Violations) != 0 || len(report.Warnings) != 0 {
		t.Errorf("empty log set: %+v", report)
	}
}
