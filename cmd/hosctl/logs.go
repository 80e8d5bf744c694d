package main

import (
	"database/sql"
	"fmt"
	"strconv"

	"hos-trip-service/internal/adapters/repositories"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

var logsDBPath string

var logsCmd = &cobra.Command{
	Use:   "logs <driver-id>",
	Short: "List a driver's stored daily logs",
	Long:  `Reads the local SQLite database and prints the stored daily logs for a driver.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().StringVar(&logsDBPath, "db", "", "database file (default from config, else data/app.db)")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	driverID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("parsing driver id %q: %w", args[0], err)
	}

	dbPath := logsDBPath
	if dbPath == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dbPath = cfg.GetDBPath()
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	driver, err := repositories.NewSqliteDriverRepository(db).GetDriver(ctx, driverID)
	if err != nil {
		return fmt.Errorf("looking up driver %d: %w", driverID, err)
	}

	logs, err := repositories.NewSqliteLogRepository(db).ListDriverLogs(ctx, driverID)
	if err != nil {
		return fmt.Errorf("listing logs for driver %d: %w", driverID, err)
	}

	fmt.Printf("Daily logs for %s (driver %d):\n", driver.Name, driver.DriverID)
	if len(logs) == 0 {
		fmt.Println("No logs stored.")
		return nil
	}

	return printJSON(logs)
}
