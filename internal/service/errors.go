package service

import "errors"

// Typed errors surfaced by the schedule service. Updates and deletes against
// unknown identifiers report not-found instead of silently doing nothing, so
// the HTTP boundary can answer 404.
var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrEntryNotFound = errors.New("schedule entry not found")

	// ErrValidation marks user-correctable input problems; inspect with
	// errors.Is and report the wrapped message to the administrator.
	ErrValidation = errors.New("validation failed")
)
