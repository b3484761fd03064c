package web

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"sort"
	"time"

	"github.com/gorilla/mux"

	"github.com/academicspaces/roomboard/internal/clock"
	"github.com/academicspaces/roomboard/internal/models"
	"github.com/academicspaces/roomboard/internal/service"
	"github.com/academicspaces/roomboard/internal/status"
)

// Handler manages web UI requests.
type Handler struct {
	scheduleService *service.ScheduleService
	clock           clock.Clock
	templates       *template.Template
	sseManager      *SSEManager
}

// NewHandler creates a new web UI handler.
func NewHandler(scheduleService *service.ScheduleService, clk clock.Clock, templatesDir string) (*Handler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"formatRemaining": status.FormatRemaining,
		"statusClass":     statusClass,
		"statusText":      statusText,
		"usageText":       usageText,
	}).ParseGlob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		scheduleService: scheduleService,
		clock:           clk,
		templates:       tmpl,
		sseManager:      NewSSEManager(),
	}, nil
}

// SetupRoutes registers web UI routes on the given router.
func (h *Handler) SetupRoutes(router *mux.Router) {
	fileServer := http.FileServer(http.Dir("./internal/web/static"))
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fileServer))

	router.Handle("/events", h.sseManager)
	router.HandleFunc("/partial/rooms", h.HandlePartialRoomGrid).Methods(http.MethodGet)
	router.HandleFunc("/rooms/{id}", h.handleRoomSchedule).Methods(http.MethodGet)
	router.HandleFunc("/", h.handleIndex).Methods(http.MethodGet)
}

// NotifyScheduleUpdate pushes an update event to all SSE clients. Register it
// as the schedule service's update callback.
func (h *Handler) NotifyScheduleUpdate() {
	h.sseManager.NotifyScheduleUpdate()
}

// Shutdown gracefully closes the SSE connections.
func (h *Handler) Shutdown() {
	h.sseManager.Shutdown()
}

// RoomView pairs a room with its derived status for rendering.
type RoomView struct {
	Room   models.Room
	Status models.RoomStatus
}

// StatusCounts summarises the grid for the stats bar.
type StatusCounts struct {
	Available   int
	Occupied    int
	Unavailable int
	Total       int
}

// buildRoomViews samples the clock once, computes every room's status against
// that single instant and returns the views sorted available, occupied,
// unavailable.
func (h *Handler) buildRoomViews(onlyAvailable bool) ([]RoomView, StatusCounts, time.Time) {
	now := h.clock.Now()
	rooms := h.scheduleService.Rooms()
	statuses := h.scheduleService.Statuses(now)

	priority := map[models.RoomStatusType]int{
		models.StatusAvailable:   0,
		models.StatusOccupied:    1,
		models.StatusUnavailable: 2,
	}

	var counts StatusCounts
	views := make([]RoomView, 0, len(rooms))
	for _, room := range rooms {
		st := statuses[room.ID]
		switch st.Status {
		case models.StatusAvailable:
			counts.Available++
		case models.StatusOccupied:
			counts.Occupied++
		default:
			counts.Unavailable++
		}
		counts.Total++

		if onlyAvailable && st.Status != models.StatusAvailable {
			continue
		}
		views = append(views, RoomView{Room: room, Status: st})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return priority[views[i].Status.Status] < priority[views[j].Status.Status]
	})
	return views, counts, now
}

// handleIndex renders the dashboard page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if !h.scheduleService.Loaded() {
		http.Error(w, "Schedule data not loaded yet", http.StatusServiceUnavailable)
		return
	}

	onlyAvailable := r.URL.Query().Get("available") == "true"
	views, counts, now := h.buildRoomViews(onlyAvailable)

	viewModel := struct {
		Rooms         []RoomView
		Counts        StatusCounts
		OnlyAvailable bool
		LastUpdated   string
		CurrentYear   int
	}{
		Rooms:         views,
		Counts:        counts,
		OnlyAvailable: onlyAvailable,
		LastUpdated:   now.Format("2006-01-02 15:04:05"),
		CurrentYear:   now.Year(),
	}

	if err := h.templates.ExecuteTemplate(w, "layout.html", viewModel); err != nil {
		log.Printf("Error rendering template: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// HandlePartialRoomGrid renders just the room grid for htmx updates. The
// dashboard refetches it once per second and on SSE update events.
func (h *Handler) HandlePartialRoomGrid(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("available") == "true"
	views, counts, _ := h.buildRoomViews(onlyAvailable)

	viewModel := struct {
		Rooms  []RoomView
		Counts StatusCounts
	}{
		Rooms:  views,
		Counts: counts,
	}

	if err := h.templates.ExecuteTemplate(w, "room_grid", viewModel); err != nil {
		log.Printf("Error rendering template: %v", err)
		http.Error(w, "Failed to render room grid", http.StatusInternalServerError)
	}
}

// DaySchedule groups one weekday's entries for the schedule page.
type DaySchedule struct {
	Day     models.Weekday
	Entries []models.ScheduleEntry
}

// handleRoomSchedule renders a room's full weekly schedule.
func (h *Handler) handleRoomSchedule(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	room, err := h.scheduleService.Room(roomID)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	entries := h.scheduleService.EntriesForRoom(roomID)
	now := h.clock.Now()

	week := make([]DaySchedule, 0, len(models.SchoolDays))
	for _, day := range models.SchoolDays {
		var daily []models.ScheduleEntry
		for _, entry := range entries {
			if entry.Day == day {
				daily = append(daily, entry)
			}
		}
		sort.SliceStable(daily, func(i, j int) bool {
			return daily[i].StartTime < daily[j].StartTime
		})
		week = append(week, DaySchedule{Day: day, Entries: daily})
	}

	viewModel := struct {
		Room        models.Room
		Status      models.RoomStatus
		Week        []DaySchedule
		LastUpdated string
		CurrentYear int
	}{
		Room:        room,
		Status:      h.scheduleService.Statuses(now)[room.ID],
		Week:        week,
		LastUpdated: now.Format("2006-01-02 15:04:05"),
		CurrentYear: now.Year(),
	}

	if err := h.templates.ExecuteTemplate(w, "room_schedule.html", viewModel); err != nil {
		log.Printf("Error rendering template: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// Template helper functions

// statusClass returns the CSS class for a room status.
func statusClass(st models.RoomStatusType) string {
	switch st {
	case models.StatusAvailable:
		return "status-available"
	case models.StatusOccupied:
		return "status-occupied"
	default:
		return "status-unavailable"
	}
}

// statusText returns the display label for a room status.
func statusText(st models.RoomStatusType) string {
	switch st {
	case models.StatusAvailable:
		return "Disponível"
	case models.StatusOccupied:
		return "Ocupada"
	default:
		return "Indisponível"
	}
}

// usageText returns the display label for a usage type.
func usageText(u models.UsageType) string {
	switch u {
	case models.UsageClassSession:
		return "Aula"
	case models.UsageStudyGroup:
		return "Grupo de Estudo"
	case models.UsageCoworking:
		return "Coworking"
	default:
		return string(u)
	}
}
