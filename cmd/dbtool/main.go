package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"hos-trip-service/internal/adapters/repositories"
	"hos-trip-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes the shared Postgres schema and seeds the drivers
// table, for deployments that point the server at DATABASE_URL.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "data/seeds/drivers.json"
	}

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding drivers...")
	if err := seedDrivers(pg, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func seedDrivers(pg *sql.DB, seedPath string) error {
	rows, err := repositories.LoadDriverSeeds(seedPath)
	if err != nil {
		return err
	}

	tx, err := pg.Begin()
	if err != nil {
		return fmt.Errorf("seed drivers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO drivers (driver_id, name, home_tz, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (driver_id) DO UPDATE
	SET name = excluded.name,
		home_tz = excluded.home_tz,
		updated_at = excluded.updated_at;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed drivers: prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, d := range rows {
		if _, err := stmt.Exec(d.DriverID, d.Name, d.HomeTZ, now, now); err != nil {
			return fmt.Errorf("seed drivers: insert driver_id=%d: %w", d.DriverID, err)
		}
		log.Printf("seeded driver_id=%d name=%q", d.DriverID, d.Name)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed drivers: commit tx: %w", err)
	}

	return nil
}
