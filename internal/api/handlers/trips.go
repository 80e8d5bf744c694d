package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"hos-trip-service/internal/api/dto"
	"hos-trip-service/internal/domain"
	"hos-trip-service/internal/ports"
	"hos-trip-service/internal/services"
)

type TripHandler struct {
	Provider ports.RouteProvider
	Geocoder ports.ReverseGeocoder
	Logs     ports.LogRepository

	// Defaults applied when the form leaves start fields blank.
	DefaultStartTime string
}

// Plan computes a route across the three waypoints, generates the
// HOS schedule covering it, and returns both with the compliance
// evaluation and derived display data.
func (h *TripHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanTripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	startDate := time.Now()
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		startDate = parsed
	}

	startTime := req.StartTime
	if startTime == "" {
		startTime = h.DefaultStartTime
	}

	svcReq := services.PlanTripRequest{
		CurrentLocation: coords(req.CurrentLocation),
		Pickup:          coords(req.Pickup),
		Dropoff:         coords(req.Dropoff),
		DriverID:        req.DriverID,
		StartDate:       startDate,
		StartTime:       startTime,
	}

	plan, err := services.PlanTrip(r.Context(), svcReq, h.Provider, h.Geocoder, h.Logs)
	if err != nil {
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toTripPlanResponse(plan))
}

func coords(pair [2]float64) domain.Coordinates {
	return domain.Coordinates{Lon: pair[0], Lat: pair[1]}
}

func toTripPlanResponse(plan *services.TripPlan) dto.TripPlanResponse {
	geometry := make([][]float64, 0, len(plan.Route.Geometry))
	for _, c := range plan.Route.Geometry {
		geometry = append(geometry, c.CoordsToList())
	}

	return dto.TripPlanResponse{
		TripID: plan.TripID,
		Route: dto.RouteResponse{
			DistanceMeters:  plan.Route.DistanceMeters,
			DurationSeconds: plan.Route.DurationSeconds,
			Geometry: dto.RouteGeometry{
				Type:        "LineString",
				Coordinates: geometry,
			},
		},
		DailyLogs:      plan.DailyLogs,
		Compliance:     plan.Compliance,
		RestStops:      plan.RestStops,
		Statistics:     plan.Statistics,
		TotalDistance:  plan.Summary.TotalDistanceMiles,
		TotalDuration:  plan.Summary.TotalDurationHours,
		CurrentAddress: plan.CurrentAddress,
		PickupAddress:  plan.PickupAddress,
		DropoffAddress: plan.DropoffAddress,
	}
}
