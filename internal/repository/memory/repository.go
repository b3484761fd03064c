// Package memory provides an in-memory implementation of the repository
// interface, used in tests and for single-process deployments that do not
// need durability.
package memory

import (
	"context"
	"sync"

	"github.com/academicspaces/roomboard/internal/models"
)

// Repository keeps both collections in process memory. A nil slice marks a
// collection that has never been saved, matching the durable backends.
type Repository struct {
	mu      sync.RWMutex
	rooms   []models.Room
	entries []models.ScheduleEntry
}

// NewRepository creates a new in-memory repository.
func NewRepository() *Repository {
	return &Repository{}
}

// SaveRooms replaces the rooms collection.
func (r *Repository) SaveRooms(ctx context.Context, rooms []models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms = make([]models.Room, len(rooms))
	copy(r.rooms, rooms)
	return nil
}

// LoadRooms returns a copy of the rooms collection, or nil if it was never
// saved.
func (r *Repository) LoadRooms(ctx context.Context) ([]models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.rooms == nil {
		return nil, nil
	}
	rooms := make([]models.Room, len(r.rooms))
	copy(rooms, r.rooms)
	return rooms, nil
}

// SaveEntries replaces the schedule-entries collection.
func (r *Repository) SaveEntries(ctx context.Context, entries []models.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make([]models.ScheduleEntry, len(entries))
	copy(r.entries, entries)
	return nil
}

// LoadEntries returns a copy of the schedule-entries collection, or nil if it
// was never saved.
func (r *Repository) LoadEntries(ctx context.Context) ([]models.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.entries == nil {
		return nil, nil
	}
	entries := make([]models.ScheduleEntry, len(r.entries))
	copy(entries, r.entries)
	return entries, nil
}
