package api

import (
	"net/http"
	"time"

	"github.com/academicspaces/roomboard/internal/clock"
	"github.com/academicspaces/roomboard/internal/models"
	"github.com/academicspaces/roomboard/internal/service"
)

// StatusHandler serves the derived room statuses
type StatusHandler struct {
	scheduleService *service.ScheduleService
	clock           clock.Clock
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(scheduleService *service.ScheduleService, clk clock.Clock) *StatusHandler {
	return &StatusHandler{
		scheduleService: scheduleService,
		clock:           clk,
	}
}

// StatusReport is the GET /api/status response body. Every status in it is
// derived against the same sampled instant.
type StatusReport struct {
	SampledAt time.Time                    `json:"sampledAt"`
	Statuses  map[string]models.RoomStatus `json:"statuses"`
}

// getStatuses handles GET /api/status
func (h *StatusHandler) getStatuses(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	writeJSON(w, http.StatusOK, StatusReport{
		SampledAt: now,
		Statuses:  h.scheduleService.Statuses(now),
	})
}

// resetSchedule handles POST /api/reset
func (h *StatusHandler) resetSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.ResetToDefaults(r.Context()); err != nil {
		writeError(w, err, "Error resetting schedule data")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Schedule data reset to defaults"})
}
