package main

import (
	"hos-trip-service/internal/domain"
	"hos-trip-service/internal/hos"

	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline <entries.json>",
	Short: "Build a 15-minute duty timeline from log entries",
	Long: `Reads a JSON array of log entries and expands them into the 96 quarter-hour
slots of a driver's day. Time not covered by any entry counts as off duty.
Totals per duty status and any gap or overlap issues are included.`,
	Args: cobra.ExactArgs(1),
	RunE: runTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	var entries []domain.LogEntry
	if err := readJSONFile(args[0], &entries); err != nil {
		return err
	}

	timeline := hos.BuildTimeline(entries)

	return printJSON(struct {
		Timeline []domain.DutyStatus `json:"timeline"`
		Totals   domain.DailyTotals  `json:"totals"`
		Issues   []string            `json:"issues,omitempty"`
	}{timeline, hos.TimelineTotals(timeline), hos.ValidateEntries(entries)})
}
