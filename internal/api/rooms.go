package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/academicspaces/roomboard/internal/clock"
	"github.com/academicspaces/roomboard/internal/service"
)

// RoomHandler handles HTTP requests for room management
type RoomHandler struct {
	scheduleService *service.ScheduleService
	clock           clock.Clock
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(scheduleService *service.ScheduleService, clk clock.Clock) *RoomHandler {
	return &RoomHandler{
		scheduleService: scheduleService,
		clock:           clk,
	}
}

// listRooms handles GET /api/rooms
func (h *RoomHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.scheduleService.Rooms())
}

// getRoom handles GET /api/rooms/{id}
func (h *RoomHandler) getRoom(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	room, err := h.scheduleService.Room(roomID)
	if err != nil {
		writeError(w, err, "Error retrieving room")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// updateRoom handles PATCH /api/rooms/{id} with a partial room document
func (h *RoomHandler) updateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	var update service.RoomUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	room, err := h.scheduleService.UpdateRoom(r.Context(), roomID, update)
	if err != nil {
		writeError(w, err, "Error updating room")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// toggleRoom handles POST /api/rooms/{id}/toggle
func (h *RoomHandler) toggleRoom(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	room, err := h.scheduleService.ToggleRoomAvailability(r.Context(), roomID)
	if err != nil {
		writeError(w, err, "Error toggling room availability")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// listRoomEntries handles GET /api/rooms/{id}/entries
func (h *RoomHandler) listRoomEntries(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	if _, err := h.scheduleService.Room(roomID); err != nil {
		writeError(w, err, "Error retrieving room")
		return
	}
	writeJSON(w, http.StatusOK, h.scheduleService.EntriesForRoom(roomID))
}

// getRoomStatus handles GET /api/rooms/{id}/status
func (h *RoomHandler) getRoomStatus(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	st, err := h.scheduleService.RoomStatusFor(roomID, h.clock.Now())
	if err != nil {
		writeError(w, err, "Error computing room status")
		return
	}
	writeJSON(w, http.StatusOK, st)
}
