package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"hos-trip-service/internal/adapters/cache"
	"hos-trip-service/internal/adapters/repositories"
	"hos-trip-service/internal/adapters/routing"
	"hos-trip-service/internal/api"
	"hos-trip-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, ORS) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	seedPath := getEnv("SEED_PATH", "data/seeds/drivers.json")
	port := getEnv("PORT", "8080")
	corsOrigin := getEnv("CORS_ORIGIN", "http://localhost:5173")
	startTime := getEnv("DEFAULT_START_TIME", "08:00")

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	sqliteDB, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	// Initialize schema and seed demo drivers on startup for local runs.
	if err := initAndSeed(sqliteDB, seedPath); err != nil {
		log.Fatal(err)
	}

	// Route and geocode caches avoid repeated external API calls. A local
	// SQLite file backs them by default; DATABASE_URL switches the cache
	// layer to a shared Postgres instance.
	var routeCache routing.RouteCache = cache.NewSqliteRouteCache(sqliteDB)
	var addressCache routing.AddressCache = cache.NewSqliteGeocodeCache(sqliteDB)

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		routeCache = cache.NewSQLRouteCache(pg)
		addressCache = cache.NewSQLGeocodeCache(pg)
		log.Println("Using Postgres route/geocode caches")
	}

	provider, err := routing.NewORSProvider(orsKey, routeCache, addressCache)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(api.RouterConfig{
		Provider:         provider,
		Geocoder:         provider,
		Drivers:          repositories.NewSqliteDriverRepository(sqliteDB),
		Logs:             repositories.NewSqliteLogRepository(sqliteDB),
		DefaultStartTime: startTime,
		CORSOrigins:      strings.Split(corsOrigin, ","),
	})

	// Timeouts are tuned for cold-cache trip planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedDriversFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
