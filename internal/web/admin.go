package web

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/academicspaces/roomboard/internal/clock"
	"github.com/academicspaces/roomboard/internal/config"
	"github.com/academicspaces/roomboard/internal/models"
	"github.com/academicspaces/roomboard/internal/service"
	"github.com/academicspaces/roomboard/internal/utils"
)

// AdminHandler manages the schedule-management pages.
type AdminHandler struct {
	scheduleService *service.ScheduleService
	clock           clock.Clock
	templates       *template.Template
	auth            *AuthMiddleware
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(scheduleService *service.ScheduleService, clk clock.Clock, adminCfg config.AdminConfig, templatesDir string) (*AdminHandler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"statusClass": statusClass,
		"statusText":  statusText,
		"usageText":   usageText,
	}).ParseGlob(filepath.Join(templatesDir, "admin", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin templates: %w", err)
	}

	return &AdminHandler{
		scheduleService: scheduleService,
		clock:           clk,
		templates:       tmpl,
		auth:            NewAuthMiddleware(adminCfg),
	}, nil
}

// SetupAdminRoutes registers admin routes on the given router with
// authentication.
func (h *AdminHandler) SetupAdminRoutes(router *mux.Router) {
	router.HandleFunc("/admin", h.auth.RequireAuth(h.handleAdminDashboard)).Methods(http.MethodGet)
	router.HandleFunc("/admin/entries", h.auth.RequireAuth(h.handleCreateEntry)).Methods(http.MethodPost)
	router.HandleFunc("/admin/entries/update/{id}", h.auth.RequireAuth(h.handleUpdateEntry)).Methods(http.MethodPost)
	router.HandleFunc("/admin/entries/delete/{id}", h.auth.RequireAuth(h.handleDeleteEntry)).Methods(http.MethodPost)
	router.HandleFunc("/admin/rooms/toggle/{id}", h.auth.RequireAuth(h.handleToggleRoom)).Methods(http.MethodPost)
	router.HandleFunc("/admin/reset", h.auth.RequireAuth(h.handleReset)).Methods(http.MethodPost)
}

// AdminStats holds counters for the admin dashboard.
type AdminStats struct {
	TotalRooms    int
	DisabledRooms int
	TotalEntries  int
	StudyFriendly int
}

// handleAdminDashboard renders the management page with rooms, entries and
// the edit forms.
func (h *AdminHandler) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	rooms := h.scheduleService.Rooms()
	entries := h.scheduleService.Entries()

	stats := AdminStats{
		TotalRooms:   len(rooms),
		TotalEntries: len(entries),
	}
	for _, room := range rooms {
		if !room.IsAvailable {
			stats.DisabledRooms++
		}
	}
	for _, entry := range entries {
		if entry.CanBeUsedForStudy {
			stats.StudyFriendly++
		}
	}

	viewModel := struct {
		Stats       AdminStats
		Rooms       []models.Room
		Entries     []models.ScheduleEntry
		Days        []models.Weekday
		TimeSlots   []models.TimeSlot
		UsageTypes  []models.UsageType
		LastUpdated string
		CurrentYear int
	}{
		Stats:       stats,
		Rooms:       rooms,
		Entries:     entries,
		Days:        models.SchoolDays,
		TimeSlots:   models.TimeSlots,
		UsageTypes:  []models.UsageType{models.UsageClassSession, models.UsageStudyGroup, models.UsageCoworking},
		LastUpdated: h.clock.Now().Format("2006-01-02 15:04:05"),
		CurrentYear: h.clock.Now().Year(),
	}

	if err := h.templates.ExecuteTemplate(w, "dashboard.html", viewModel); err != nil {
		log.Printf("Error rendering admin template: %v", err)
	}
}

// handleCreateEntry creates a schedule entry from the submitted form.
func (h *AdminHandler) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	input, err := entryInputFromForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.scheduleService.AddEntry(r.Context(), input); err != nil {
		writeServiceError(w, err, "Failed to create entry")
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// handleUpdateEntry replaces the editable fields of an entry from the
// submitted form.
func (h *AdminHandler) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID := mux.Vars(r)["id"]

	input, err := entryInputFromForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	update := service.EntryUpdate{
		RoomID:            &input.RoomID,
		Day:               &input.Day,
		StartTime:         &input.StartTime,
		EndTime:           &input.EndTime,
		CourseCode:        &input.CourseCode,
		CourseName:        &input.CourseName,
		UsageType:         &input.UsageType,
		OccupiedSeats:     &input.OccupiedSeats,
		CanBeUsedForStudy: &input.CanBeUsedForStudy,
	}
	if _, err := h.scheduleService.UpdateEntry(r.Context(), entryID, update); err != nil {
		writeServiceError(w, err, "Failed to update entry")
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// handleDeleteEntry removes an entry.
func (h *AdminHandler) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID := mux.Vars(r)["id"]

	if err := h.scheduleService.DeleteEntry(r.Context(), entryID); err != nil {
		log.Printf("Error deleting entry %s: %v", utils.SanitizeLogString(entryID), err)
		writeServiceError(w, err, "Failed to delete entry")
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// handleToggleRoom flips a room's availability flag.
func (h *AdminHandler) handleToggleRoom(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	if _, err := h.scheduleService.ToggleRoomAvailability(r.Context(), roomID); err != nil {
		writeServiceError(w, err, "Failed to toggle room")
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// handleReset overwrites both collections with the seed dataset.
func (h *AdminHandler) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.ResetToDefaults(r.Context()); err != nil {
		log.Printf("Error resetting schedule data: %v", err)
		http.Error(w, "Failed to reset schedule data", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// entryInputFromForm parses the shared add/edit form fields. Time format and
// range rules are enforced by the service; this only shapes the values.
func entryInputFromForm(r *http.Request) (service.EntryInput, error) {
	if err := r.ParseForm(); err != nil {
		return service.EntryInput{}, fmt.Errorf("invalid form data: %w", err)
	}

	occupiedSeats := 0
	if raw := r.PostFormValue("occupiedSeats"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return service.EntryInput{}, fmt.Errorf("invalid occupied seats value %q", raw)
		}
		occupiedSeats = n
	}

	return service.EntryInput{
		RoomID:            r.PostFormValue("roomId"),
		Day:               models.Weekday(r.PostFormValue("day")),
		StartTime:         r.PostFormValue("startTime"),
		EndTime:           r.PostFormValue("endTime"),
		CourseCode:        r.PostFormValue("courseCode"),
		CourseName:        r.PostFormValue("courseName"),
		UsageType:         models.UsageType(r.PostFormValue("usageType")),
		OccupiedSeats:     occupiedSeats,
		CanBeUsedForStudy: r.PostFormValue("canBeUsedForStudy") == "on",
	}, nil
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrRoomNotFound), errors.Is(err, service.ErrEntryNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
