package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/academicspaces/roomboard/internal/service"
)

// EntryHandler handles HTTP requests for schedule entry management
type EntryHandler struct {
	scheduleService *service.ScheduleService
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(scheduleService *service.ScheduleService) *EntryHandler {
	return &EntryHandler{scheduleService: scheduleService}
}

// listEntries handles GET /api/entries
func (h *EntryHandler) listEntries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.scheduleService.Entries())
}

// createEntry handles POST /api/entries
func (h *EntryHandler) createEntry(w http.ResponseWriter, r *http.Request) {
	var input service.EntryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	entry, err := h.scheduleService.AddEntry(r.Context(), input)
	if err != nil {
		writeError(w, err, "Error creating entry")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// updateEntry handles PATCH /api/entries/{id} with a partial entry document
func (h *EntryHandler) updateEntry(w http.ResponseWriter, r *http.Request) {
	entryID := mux.Vars(r)["id"]

	var update service.EntryUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	entry, err := h.scheduleService.UpdateEntry(r.Context(), entryID, update)
	if err != nil {
		writeError(w, err, "Error updating entry")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// deleteEntry handles DELETE /api/entries/{id}
func (h *EntryHandler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID := mux.Vars(r)["id"]

	if err := h.scheduleService.DeleteEntry(r.Context(), entryID); err != nil {
		writeError(w, err, "Error deleting entry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Entry deleted successfully"})
}
