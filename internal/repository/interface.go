// Package repository defines the key-value persistence contract for the room
// and schedule-entry collections. Each collection is written whole under its
// own fixed key; there is no partial-write or transaction concept.
package repository

import (
	"context"

	"github.com/academicspaces/roomboard/internal/models"
)

// Repository stores the two canonical collections under the fixed keys
// "academic-spaces-rooms" and "academic-spaces-entries". Load methods return a nil
// slice (and no error) when the key has never been written, so callers can
// distinguish "no data yet" from an empty collection.
type Repository interface {
	SaveRooms(ctx context.Context, rooms []models.Room) error
	LoadRooms(ctx context.Context) ([]models.Room, error)

	SaveEntries(ctx context.Context, entries []models.ScheduleEntry) error
	LoadEntries(ctx context.Context) ([]models.ScheduleEntry, error)
}
