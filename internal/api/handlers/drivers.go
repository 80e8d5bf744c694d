package handlers

import (
	"log"
	"net/http"
	"strconv"

	"hos-trip-service/internal/api/dto"
	"hos-trip-service/internal/ports"

	"github.com/go-chi/chi/v5"
)

// DriverHandler exposes read-only driver and log retrieval endpoints.
type DriverHandler struct {
	Repo ports.DriverRepository
	Logs ports.LogRepository
}

func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Repo.ListDrivers(r.Context())
	if err != nil {
		log.Printf("list drivers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListDriversResponse{
		Drivers: make([]dto.DriverResponse, 0, len(drivers)),
	}
	for _, d := range drivers {
		res.Drivers = append(res.Drivers, dto.DriverResponse{
			ID:        d.DriverID,
			Name:      d.Name,
			HomeTZ:    d.HomeTZ,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// DriverLogs returns every stored daily log for one driver.
func (h *DriverHandler) DriverLogs(w http.ResponseWriter, r *http.Request) {
	driverID, err := strconv.Atoi(chi.URLParam(r, "driverID"))
	if err != nil || driverID < 1 {
		writeError(w, r, http.StatusBadRequest, "driver id must be a positive integer")
		return
	}

	if _, err := h.Repo.GetDriver(r.Context(), driverID); err != nil {
		writeError(w, r, http.StatusNotFound, "driver not found")
		return
	}

	logs, err := h.Logs.ListDriverLogs(r.Context(), driverID)
	if err != nil {
		log.Printf("list driver logs failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DriverLogsResponse{
		DriverID: driverID,
		Logs:     logs,
	})
}
