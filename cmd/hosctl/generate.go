package main

import (
	"fmt"
	"time"

	"hos-trip-service/internal/domain"
	"hos-trip-service/internal/hos"

	"github.com/spf13/cobra"
)

var (
	generateDuration  float64
	generateStartTime string
	generateStartDate string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate daily logs for a trip duration",
	Long: `Splits a total driving duration into compliant daily logs. Each day packs
up to 11 driving hours with a 30-minute break, then rests at least 10 hours
before the next day starts.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Float64Var(&generateDuration, "duration", 0, "Total driving time in hours (required)")
	generateCmd.Flags().StringVar(&generateStartTime, "start-time", "", "Clock time the first day starts (default from config, else 08:00)")
	generateCmd.Flags().StringVar(&generateStartDate, "start-date", "", "Date of the first day, YYYY-MM-DD (default today)")
	_ = generateCmd.MarkFlagRequired("duration")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateDuration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", generateDuration)
	}

	startTime := generateStartTime
	if startTime == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		startTime = cfg.GetDefaultStartTime()
	}

	startDate := time.Now()
	if generateStartDate != "" {
		parsed, err := time.Parse("2006-01-02", generateStartDate)
		if err != nil {
			return fmt.Errorf("parsing start date %q: %w", generateStartDate, err)
		}
		startDate = parsed
	}

	logs := hos.GenerateSchedule(generateDuration, startTime, startDate)
	report := hos.EvaluateCompliance(logs)

	return printJSON(struct {
		DailyLogs  []domain.DailyLog       `json:"daily_logs"`
		Compliance domain.ComplianceReport `json:"compliance"`
	}{logs, report})
}
