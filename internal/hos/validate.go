package hos

import (
	"fmt"
	"sort"

	"hos-trip-service/internal/domain"
)

// ValidateEntries checks one day's entries for temporal gaps and overlaps
// between adjacent intervals and returns human-readable issue strings.
// The result is advisory: timeline construction and aggregation proceed
// regardless. Empty and single-entry lists report nothing.
func ValidateEntries(entries []domain.LogEntry) []string {
	issues := []string{}

	sorted := make([]domain.LogEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return TimeToSlotIndex(sorted[i].StartTime) < TimeToSlotIndex(sorted[j].StartTime)
	})

	for i := 0; i < len(sorted)-1; i++ {
		current := sorted[i]
		next := sorted[i+1]

		currentEnd := TimeToSlotIndex(current.EndTime)
		nextStart := TimeToSlotIndex(next.StartTime)

		if currentEnd < nextStart {
			gap := (nextStart - currentEnd) * 15
			issues = append(issues, fmt.Sprintf(
				"Gap of %d minutes between %s and %s",
				gap, current.EndTime, next.StartTime,
			))
		}

		if currentEnd > nextStart {
			overlap := (currentEnd - nextStart) * 15
			issues = append(issues, fmt.Sprintf(
				"Overlap of %d minutes between %s and %s",
				overlap, current.EndTime, next.StartTime,
			))
		}
	}

	return issues
}
