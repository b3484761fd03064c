package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/academicspaces/roomboard/internal/service"
)

// errorResponse is the JSON body returned for failed API requests.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps service errors onto HTTP statuses and writes a JSON body.
func writeError(w http.ResponseWriter, err error, fallback string) {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrRoomNotFound), errors.Is(err, service.ErrEntryNotFound):
		status = http.StatusNotFound
		message = err.Error()
	default:
		log.Printf("API error: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
