package main

import (
	"fmt"

	"hos-trip-service/internal/domain"
	"hos-trip-service/internal/hos"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <logs.json>",
	Short: "Check daily logs against hours-of-service rules",
	Long: `Reads a JSON array of daily logs and reports violations of the 11-hour
driving limit, the 14-hour on-duty limit, and the 10-hour minimum rest,
plus warnings for days over 10 driving hours. Entry gaps and overlaps
within each day are reported as issues.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

type dayIssues struct {
	Date   string   `json:"date"`
	Issues []string `json:"issues"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	var logs []domain.DailyLog
	if err := readJSONFile(args[0], &logs); err != nil {
		return err
	}
	if len(logs) == 0 {
		return fmt.Errorf("no daily logs found in %s", args[0])
	}

	report := hos.EvaluateCompliance(logs)

	var entryIssues []dayIssues
	for _, lg := range logs {
		if issues := hos.ValidateEntries(lg.Entries); len(issues) > 0 {
			entryIssues = append(entryIssues, dayIssues{Date: lg.Date, Issues: issues})
		}
	}

	return printJSON(struct {
		Compliance  domain.ComplianceReport `json:"compliance"`
		EntryIssues []dayIssues             `json:"entry_issues,omitempty"`
	}{report, entryIssues})
}
