package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"hos-trip-service/internal/api/dto"
	"hos-trip-service/internal/domain"
	"hos-trip-service/internal/hos"
)

// LogHandler exposes the timeline and compliance engine to the
// rendering layer.
type LogHandler struct{}

// Timeline quantizes one day's raw entries into the 96-slot sequence the
// log sheet draws, with per-category totals and advisory continuity
// issues. Unknown duty statuses are rejected here rather than silently
// dropped downstream.
func (h *LogHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	var req dto.TimelineRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if msg, ok := checkEntries(req.Entries); !ok {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	timeline := hos.BuildTimeline(req.Entries)

	writeJSON(w, r, http.StatusOK, dto.TimelineResponse{
		Timeline: timeline,
		Totals:   hos.TimelineTotals(timeline),
		Issues:   hos.ValidateEntries(req.Entries),
	})
}

// Validate evaluates a multi-day log set against the per-day limits.
func (h *LogHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateLogsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	for _, l := range req.DailyLogs {
		if msg, ok := checkEntries(l.Entries); !ok {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("log %s: %s", l.Date, msg))
			return
		}
	}

	writeJSON(w, r, http.StatusOK, hos.EvaluateCompliance(req.DailyLogs))
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func checkEntries(entries []domain.LogEntry) (string, bool) {
	for _, e := range entries {
		if !e.Status.Valid() {
			return fmt.Sprintf("unknown duty status %q", e.Status), false
		}
	}
	return "", true
}
