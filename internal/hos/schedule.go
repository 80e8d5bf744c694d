package hos

import (
	"fmt"
	"math"
	"time"

	"hos-trip-service/internal/domain"
)

// GenerateSchedule packs a trip's total driving duration into consecutive
// daily logs that each satisfy the per-day limits: at most 11 driving
// hours split into two segments around a fixed 30-minute break, followed
// by at least 10 hours off duty. It is a greedy day packer, not an
// optimizer; it neither minimizes trip days nor balances driving across
// them, and it never emits sleeper-berth time.
//
// startTime is a "HH:MM" clock string; an unparseable value falls back to
// midnight. A zero or negative duration needs no days and returns an
// empty slice.
func GenerateSchedule(totalDurationHours float64, startTime string, startDate time.Time) []domain.DailyLog {
	logs := []domain.DailyLog{}

	current := atClock(startDate, startTime)
	remaining := totalDurationHours
	day := 1

	for remaining > 0 {
		dayStart := current
		entries := []domain.LogEntry{}

		var dayDriving, dayOnDuty float64

		// Morning driving segment.
		morning := math.Min(remaining, MaxDrivingHours)
		if morning > 0 {
			end := current.Add(hours(morning))
			entries = append(entries, domain.LogEntry{
				StartTime:     clock(current),
				EndTime:       clock(end),
				Status:        domain.StatusDriving,
				Location:      fmt.Sprintf("Route Segment %d", day),
				DurationHours: morning,
			})
			dayDriving += morning
			dayOnDuty += morning
			remaining -= morning
			current = end
		}

		// Break plus an afternoon segment, only when driving remains.
		if remaining > 0 {
			breakEnd := current.Add(hours(BreakHours))
			entries = append(entries, domain.LogEntry{
				StartTime:     clock(current),
				EndTime:       clock(breakEnd),
				Status:        domain.StatusOnDuty,
				Location:      "Break Location",
				DurationHours: BreakHours,
			})
			dayOnDuty += BreakHours
			current = breakEnd

			afternoon := math.Min(remaining, MaxDrivingHours-dayDriving)
			if afternoon > 0 {
				end := current.Add(hours(afternoon))
				entries = append(entries, domain.LogEntry{
					StartTime:     clock(current),
					EndTime:       clock(end),
					Status:        domain.StatusDriving,
					Location:      fmt.Sprintf("Route Segment %d (continued)", day),
					DurationHours: afternoon,
				})
				dayDriving += afternoon
				dayOnDuty += afternoon
				remaining -= afternoon
				current = end
			}
		}

		// Rest period: at least the 10-hour minimum, stretched to fill
		// the remainder of a 24-hour day when duty ended early.
		offDuty := math.Max(MinRestHours, 24-dayOnDuty)
		restEnd := current.Add(hours(offDuty))
		entries = append(entries, domain.LogEntry{
			StartTime:     clock(current),
			EndTime:       clock(restEnd),
			Status:        domain.StatusOffDuty,
			Location:      "Rest Area",
			DurationHours: offDuty,
		})

		logs = append(logs, domain.DailyLog{
			Date:    dayStart.Format("2006-01-02"),
			Entries: entries,
			Totals: domain.DailyTotals{
				DrivingHours:      dayDriving,
				OnDutyHours:       dayOnDuty,
				OffDutyHours:      offDuty,
				SleeperBerthHours: 0,
			},
		})

		current = restEnd
		day++
	}

	return logs
}

// atClock anchors a "HH:MM" clock string onto the given date, falling
// back to midnight when the string does not parse.
func atClock(date time.Time, clockStr string) time.Time {
	t, err := time.Parse("15:04", clockStr)
	if err != nil {
		t = time.Time{}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

func clock(t time.Time) string { return t.Format("15:04") }

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
