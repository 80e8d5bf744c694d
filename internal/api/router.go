package api

import (
	"net/http"

	"hos-trip-service/internal/api/handlers"
	"hos-trip-service/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RouterConfig carries the ports and settings the handlers need.
type RouterConfig struct {
	Provider         ports.RouteProvider
	Geocoder         ports.ReverseGeocoder
	Drivers          ports.DriverRepository
	Logs             ports.LogRepository
	DefaultStartTime string
	CORSOrigins      []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware
// of concrete adapters. CORS is open to the configured frontend origins
// since the log sheet UI runs in the browser.
func NewRouter(cfg RouterConfig) http.Handler {
	tripHandler := &handlers.TripHandler{
		Provider:         cfg.Provider,
		Geocoder:         cfg.Geocoder,
		Logs:             cfg.Logs,
		DefaultStartTime: cfg.DefaultStartTime,
	}
	driverHandler := &handlers.DriverHandler{Repo: cfg.Drivers, Logs: cfg.Logs}
	logHandler := &handlers.LogHandler{}

	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/trips/plan", tripHandler.Plan)
		r.Get("/drivers", driverHandler.List)
		r.Get("/drivers/{driverID}/logs", driverHandler.DriverLogs)
		r.Post("/logs/timeline", logHandler.Timeline)
		r.Post("/logs/validate", logHandler.Validate)
	})

	return r
}
