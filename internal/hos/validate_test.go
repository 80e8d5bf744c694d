package hos

import (
	"strings"
	"testing"

	"hos-trip-service/internal/domain"
)

func TestValidateEntriesGap(t *testing.T) {
	issues := ValidateEntries([]domain.LogEntry{
		{StartTime: "08:00", EndTime: "14:00", Status: domain.StatusDriving},
		{StartTime: "15:00", EndTime: "18:00", Status: domain.StatusOnDuty},
	})

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %v", len(issues), issues)
	}
	if !strings.Contains(issues[0], "Gap of 60 minutes") {
		t.Errorf("issue = %q, want gap of 60 minutes", issues[0])
	}
	if !strings.Contains(issues[0], "between 14:00 and 15:00") {
		t.Errorf("issue = %q, want boundary times", issues[0])
	}
}

func TestValidateEntriesOverlap(t *testing.T) {
	issues := ValidateEntries([]domain.LogEntry{
		{StartTime: "08:00", EndTime: "15:00", Status: domain.StatusDriving},
		{StartTime: "14:00", EndTime: "18:00", Status: domain.StatusOnDuty},
	})

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %v", len(issues), issues)
	}
	if !strings.Contains(issues[0], "Overlap of 60 minutes") {
		t.Errorf("issue = %q, want overlap of 60 minutes", issues[0])
	}
}

func TestValidateEntriesContiguous(t *testing.T) {
	issues := ValidateEntries([]domain.LogEntry{
		{StartTime: "00:00", EndTime: "08:00", Status: domain.StatusOffDuty},
		{StartTime: "08:00", EndTime: "14:00", Status: domain.StatusDriving},
		{StartTime: "14:00", EndTime: "24:00", Status: domain.StatusOffDuty},
	})

	if len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestValidateEntriesUnsortedInput(t *testing.T) {
	// Same gap as the sorted case; ordering must not matter.
	issues := ValidateEntries([]domain.LogEntry{
		{StartTime: "15:00", EndTime: "18:00", Status: domain.StatusOnDuty},
		{StartTime: "08:00", EndTime: "14:00", Status: domain.StatusDriving},
	})

	if len(issues) != 1 || !strings.Contains(issues[0], "Gap of 60 minutes") {
		t.Errorf("issues = %v, want one 60-minute gap", issues)
	}
}

func TestValidateEntriesDegenerate(t *testing.T) {
	if issues := ValidateEntries(nil); len(issues) != 0 {
		t.Errorf("nil entries: got %v", issues)
	}
	single := []domain.LogEntry{{StartTime: "08:00", EndTime: "14:00", Status: domain.StatusDriving}}
	if issues := ValidateEntries(single); len(issues) != 0 {
		t.Errorf("single entry: got %v", issues)
	}
}
