package hos

import (
	"testing"

	"hos-trip-service/internal/domain"
)

func TestBuildTimelineContinuous(t *testing.T) {
	entries := []domain.LogEntry{
		{StartTime: "08:00", EndTime: "14:00", Status: domain.StatusDriving, Location: "Route", DurationHours: 6},
		{StartTime: "14:00", EndTime: "24:00", Status: domain.StatusOffDuty, Location: "Rest", DurationHours: 10},
	}

	timeline := BuildTimeline(entries)

	if len(timeline) != SlotsPerDay {
		t.Fatalf("timeline length = %d, want %d", len(timeline), SlotsPerDay)
	}
	if timeline[32] != domain.StatusDriving {
		t.Errorf("slot 32 (08:00) = %q, want driving", timeline[32])
	}
	if timeline[55] != domain.StatusDriving {
		t.Errorf("slot 55 (13:45) = %q, want driving", timeline[55])
	}
	if timeline[56] != domain.StatusOffDuty {
		t.Errorf("slot 56 (14:00) = %q, want off_duty", timeline[56])
	}
	if timeline[95] != domain.StatusOffDuty {
		t.Errorf("slot 95 (23:45) = %q, want off_duty", timeline[95])
	}

	totals := TimelineTotals(timeline)
	want := domain.DailyTotals{DrivingHours: 6, OffDutyHours: 18}
	if totals != want {
		t.Errorf("totals = %+v, want %+v", totals, want)
	}
}

func TestBuildTimelineFillsGapsOffDuty(t *testing.T) {
	entries := []domain.LogEntry{
		{StartTime: "08:00", EndTime: "14:00", Status: domain.StatusDriving},
		{StartTime: "16:00", EndTime: "18:00", Status: domain.StatusOnDuty},
	}

	timeline := BuildTimeline(entries)

	// 14:00-16:00 (slots 56..63) is unaccounted and becomes off duty.
	for slot := 56; slot <= 63; slot++ {
		if timeline[slot] != domain.StatusOffDuty {
			t.Errorf("slot %d = %q, want off_duty", slot, timeline[slot])
		}
	}
	if timeline[64] != domain.StatusOnDuty {
		t.Errorf("slot 64 (16:00) = %q, want on_duty", timeline[64])
	}
}

func TestBuildTimelineUnsortedInput(t *testing.T) {
	entries := []domain.LogEntry{
		{StartTime: "14:00", EndTime: "24:00", Status: domain.StatusSleeperBerth},
		{StartTime: "00:00", EndTime: "08:00", Status: domain.StatusOffDuty},
		{StartTime: "08:00", EndTime: "14:00", Status: domain.StatusDriving},
	}

	timeline := BuildTimeline(entries)

	if timeline[0] != domain.StatusOffDuty || timeline[31] != domain.StatusOffDuty {
		t.Errorf("morning slots wrong: %q %q", timeline[0], timeline[31])
	}
	if timeline[32] != domain.StatusDriving || timeline[55] != domain.StatusDriving {
		t.Errorf("midday slots wrong: %q %q", timeline[32], timeline[55])
	}
	if timeline[56] != domain.StatusSleeperBerth || timeline[95] != domain.StatusSleeperBerth {
		t.Errorf("evening slots wrong: %q %q", timeline[56], timeline[95])
	}
}

func TestBuildTimelineOverlapLaterEntryWins(t *testing.T) {
	entries := []domain.LogEntry{
		{StartTime: "08:00", EndTime: "15:00", Status: domain.StatusDriving},
		{StartTime: "14:00", EndTime: "18:00", Status: domain.StatusOnDuty},
	}

	timeline := BuildTimeline(entries)

	if timeline[55] != domain.StatusDriving {
		t.Errorf("slot 55 (13:45) = %q, want driving", timeline[55])
	}
	// 14:00-15:00 is claimed by both; the later-starting entry wins.
	for slot := 56; slot < 60; slot++ {
		if timeline[slot] != domain.StatusOnDuty {
			t.Errorf("slot %d = %q, want on_duty", slot, timeline[slot])
		}
	}
}

func TestBuildTimelineMidnightCrossover(t *testing.T) {
	entries := []domain.LogEntry{
		// 23:00 to 01:00 next day: only the portion up to midnight lands
		// in this day's timeline.
		{StartTime: "23:00", EndTime: "01:00", Status: domain.StatusDriving},
	}

	timeline := BuildTimeline(entries)

	for slot := 92; slot < 96; slot++ {
		if timeline[slot] != domain.StatusDriving {
			t.Errorf("slot %d = %q, want driving", slot, timeline[slot])
		}
	}
	if timeline[0] != domain.StatusOffDuty {
		t.Errorf("slot 0 = %q, want off_duty", timeline[0])
	}
}

func TestBuildTimelineEndAtMidnightRunsToEndOfDay(t *testing.T) {
	entries := []domain.LogEntry{
		{StartTime: "22:00", EndTime: "00:00", Status: domain.StatusSleeperBerth},
	}

	timeline := BuildTimeline(entries)

	for slot := 88; slot < 96; slot++ {
		if timeline[slot] != domain.StatusSleeperBerth {
			t.Errorf("slot %d = %q, want sleeper_berth", slot, timeline[slot])
		}
	}
}

func TestBuildTimelineEmpty(t *testing.T) {
	timeline := BuildTimeline(nil)

	for i, s := range timeline {
		if s != domain.StatusOffDuty {
			t.Fatalf("slot %d = %q, want off_duty", i, s)
		}
	}

	totals := TimelineTotals(timeline)
	if totals.OffDutyHours != 24 || totals.DrivingHours != 0 || totals.OnDutyHours != 0 || totals.SleeperBerthHours != 0 {
		t.Errorf("empty-day totals = %+v", totals)
	}
}

func TestBuildTimelineFullDaySingleStatus(t *testing.T) {
	timeline := BuildTimeline([]domain.LogEntry{
		{StartTime: "00:00", EndTime: "24:00", Status: domain.StatusDriving},
	})

	for i, s := range timeline {
		if s != domain.StatusDriving {
			t.Fatalf("slot %d = %q, want driving", i, s)
		}
	}
}

func TestTimelineTotalsSumTo24(t *testing.T) {
	entries := []domain.LogEntry{
		{StartTime: "06:30", EndTime: "11:15", Status: domain.StatusDriving},
		{StartTime: "11:15", EndTime: "12:00", Status: domain.StatusOnDuty},
		{StartTime: "17:00", EndTime: "21:45", Status: domain.StatusSleeperBerth},
	}

	totals := TimelineTotals(BuildTimeline(entries))
	sum := totals.DrivingHours + totals.OnDutyHours + totals.OffDutyHours + totals.SleeperBerthHours
	if sum != 24 {
		t.Errorf("totals sum = %v, want 24", sum)
	}
}

func TestTimelineTotalsSkipsUnknownSlots(t *testing.T) {
	timeline := make([]domain.DutyStatus, SlotsPerDay)
	for i := range timeline {
		timeline[i] = domain.StatusOffDuty
	}
	timeline[10] = "lunch" // not a duty category

	totals := TimelineTotals(timeline)
	if totals.OffDutyHours != 23.75 {
		t.Errorf("off duty = %v, want 23.75", totals.OffDutyHours)
	}
}
