package hos

import (
	"sort"

	"hos-trip-service/internal/domain"
)

// BuildTimeline converts one day's unordered entries into a gapless
// 96-slot duty-status sequence. Entries are processed in ascending start
// order; on overlap the later-starting entry wins because its write
// clobbers the earlier one's slots. Slots no entry covers default to
// off duty, the regulatory treatment of unaccounted time.
//
// An entry ending at "00:00" (after a non-midnight start) runs to end of
// day. An entry whose end slot is otherwise <= its start slot is taken to
// cross midnight; the portion past midnight belongs to the next day's
// entry list and is clipped here.
func BuildTimeline(entries []domain.LogEntry) []domain.DutyStatus {
	timeline := make([]domain.DutyStatus, SlotsPerDay)

	sorted := make([]domain.LogEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return TimeToSlotIndex(sorted[i].StartTime) < TimeToSlotIndex(sorted[j].StartTime)
	})

	for _, e := range sorted {
		start := TimeToSlotIndex(e.StartTime)
		end := TimeToSlotIndex(e.EndTime)

		if e.EndTime == "00:00" && e.StartTime != "00:00" {
			end = SlotsPerDay
		} else if end <= start && e.EndTime != "00:00" {
			end += SlotsPerDay
		}

		if end > SlotsPerDay {
			end = SlotsPerDay
		}

		for slot := start; slot < end; slot++ {
			timeline[slot] = e.Status
		}
	}

	for i, s := range timeline {
		if s == "" {
			timeline[i] = domain.StatusOffDuty
		}
	}

	return timeline
}

// TimelineTotals sums a slot sequence into per-category hour totals,
// 0.25h per slot. Slots holding anything other than the four known
// statuses contribute nothing; a timeline from BuildTimeline never
// has such slots, but slices assembled elsewhere might.
func TimelineTotals(timeline []domain.DutyStatus) domain.DailyTotals {
	var totals domain.DailyTotals

	for _, s := range timeline {
		switch s {
		case domain.StatusOffDuty:
			totals.OffDutyHours += SlotHours
		case domain.StatusSleeperBerth:
			totals.SleeperBerthHours += SlotHours
		case domain.StatusDriving:
			totals.DrivingHours += SlotHours
		case domain.StatusOnDuty:
			totals.OnDutyHours += SlotHours
		}
	}

	return totals
}
