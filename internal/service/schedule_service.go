// Package service owns the canonical room and schedule-entry collections and
// the business rules around editing them. Every mutation is validated,
// applied and synchronously persisted as a full-collection write before the
// operation is considered complete.
package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/academicspaces/roomboard/internal/metrics"
	"github.com/academicspaces/roomboard/internal/models"
	"github.com/academicspaces/roomboard/internal/repository"
	"github.com/academicspaces/roomboard/internal/status"
	"github.com/academicspaces/roomboard/internal/timeutil"
	"github.com/academicspaces/roomboard/internal/utils"
)

// UpdateCallback is invoked after any successful mutation, so listeners such
// as the SSE manager can push a refresh to connected dashboards.
type UpdateCallback func()

// ScheduleService provides business logic for rooms and schedule entries.
type ScheduleService struct {
	repo            repository.Repository
	mu              sync.RWMutex
	rooms           []models.Room
	entries         []models.ScheduleEntry
	loaded          bool
	updateCallbacks []UpdateCallback
}

// NewScheduleService creates a new ScheduleService with the given repository.
func NewScheduleService(repo repository.Repository) *ScheduleService {
	return &ScheduleService{repo: repo}
}

// RegisterUpdateCallback registers a callback invoked after every mutation.
func (s *ScheduleService) RegisterUpdateCallback(callback UpdateCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCallbacks = append(s.updateCallbacks, callback)
}

func (s *ScheduleService) notifyUpdate() {
	s.mu.RLock()
	callbacks := make([]UpdateCallback, len(s.updateCallbacks))
	copy(callbacks, s.updateCallbacks)
	s.mu.RUnlock()

	for _, callback := range callbacks {
		callback()
	}
}

// Initialize loads both collections from storage. On first run, or when the
// persisted data cannot be read or parsed, it falls back to the seed dataset
// and persists it immediately.
func (s *ScheduleService) Initialize(ctx context.Context) error {
	rooms, err := s.repo.LoadRooms(ctx)
	if err != nil {
		log.Printf("Warning: stored rooms unreadable, falling back to defaults: %v", err)
		rooms = nil
	}
	if rooms == nil {
		rooms = models.DefaultRooms()
		if err := s.repo.SaveRooms(ctx, rooms); err != nil {
			return fmt.Errorf("failed to persist seed rooms: %w", err)
		}
	}

	entries, err := s.repo.LoadEntries(ctx)
	if err != nil {
		log.Printf("Warning: stored schedule entries unreadable, falling back to defaults: %v", err)
		entries = nil
	}
	if entries == nil {
		entries = models.DefaultEntries()
		if err := s.repo.SaveEntries(ctx, entries); err != nil {
			return fmt.Errorf("failed to persist seed entries: %w", err)
		}
	}

	s.mu.Lock()
	s.rooms = rooms
	s.entries = entries
	s.loaded = true
	s.mu.Unlock()

	log.Printf("Schedule store initialized with %d rooms and %d entries", len(rooms), len(entries))
	return nil
}

// Loaded reports whether Initialize has completed, so consumers can defer
// rendering until data is ready.
func (s *ScheduleService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Rooms returns a snapshot of the rooms collection.
func (s *ScheduleService) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make([]models.Room, len(s.rooms))
	copy(rooms, s.rooms)
	return rooms
}

// Entries returns a snapshot of the schedule-entries collection.
func (s *ScheduleService) Entries() []models.ScheduleEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]models.ScheduleEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Room returns the room with the given id.
func (s *ScheduleService) Room(id string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, room := range s.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return models.Room{}, ErrRoomNotFound
}

// EntriesForRoom returns the entries owned by the given room, in store order.
func (s *ScheduleService) EntriesForRoom(roomID string) []models.ScheduleEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []models.ScheduleEntry
	for _, entry := range s.entries {
		if entry.RoomID == roomID {
			entries = append(entries, entry)
		}
	}
	return entries
}

// EntryInput carries the fields of a schedule entry to create; the service
// assigns the identifier.
type EntryInput struct {
	RoomID            string           `json:"roomId"`
	Day               models.Weekday   `json:"day"`
	StartTime         string           `json:"startTime"`
	EndTime           string           `json:"endTime"`
	CourseCode        string           `json:"courseCode"`
	CourseName        string           `json:"courseName,omitempty"`
	UsageType         models.UsageType `json:"usageType"`
	OccupiedSeats     int              `json:"occupiedSeats"`
	CanBeUsedForStudy bool             `json:"canBeUsedForStudy"`
}

// AddEntry validates and appends a new schedule entry, persists the
// collection and returns the created record.
func (s *ScheduleService) AddEntry(ctx context.Context, input EntryInput) (models.ScheduleEntry, error) {
	entry := models.ScheduleEntry{
		ID:                "entry_" + uuid.NewString(),
		RoomID:            input.RoomID,
		Day:               input.Day,
		StartTime:         input.StartTime,
		EndTime:           input.EndTime,
		CourseCode:        input.CourseCode,
		CourseName:        input.CourseName,
		UsageType:         input.UsageType,
		OccupiedSeats:     input.OccupiedSeats,
		CanBeUsedForStudy: input.CanBeUsedForStudy,
	}

	s.mu.Lock()
	if err := s.validateEntryLocked(entry); err != nil {
		s.mu.Unlock()
		return models.ScheduleEntry{}, err
	}

	entries := make([]models.ScheduleEntry, len(s.entries), len(s.entries)+1)
	copy(entries, s.entries)
	entries = append(entries, entry)

	if err := s.repo.SaveEntries(ctx, entries); err != nil {
		s.mu.Unlock()
		return models.ScheduleEntry{}, fmt.Errorf("failed to persist entries: %w", err)
	}
	s.entries = entries
	s.mu.Unlock()

	metrics.EntriesCreated.Inc()
	log.Printf("Added schedule entry %s for room %s", entry.ID, utils.SanitizeLogString(entry.RoomID))
	s.notifyUpdate()
	return entry, nil
}

// EntryUpdate carries the fields of a partial entry update; nil fields are
// left unchanged.
type EntryUpdate struct {
	RoomID            *string           `json:"roomId,omitempty"`
	Day               *models.Weekday   `json:"day,omitempty"`
	StartTime         *string           `json:"startTime,omitempty"`
	EndTime           *string           `json:"endTime,omitempty"`
	CourseCode        *string           `json:"courseCode,omitempty"`
	CourseName        *string           `json:"courseName,omitempty"`
	UsageType         *models.UsageType `json:"usageType,omitempty"`
	OccupiedSeats     *int              `json:"occupiedSeats,omitempty"`
	CanBeUsedForStudy *bool             `json:"canBeUsedForStudy,omitempty"`
}

func (u EntryUpdate) apply(entry models.ScheduleEntry) models.ScheduleEntry {
	if u.RoomID != nil {
		entry.RoomID = *u.RoomID
	}
	if u.Day != nil {
		entry.Day = *u.Day
	}
	if u.StartTime != nil {
		entry.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		entry.EndTime = *u.EndTime
	}
	if u.CourseCode != nil {
		entry.CourseCode = *u.CourseCode
	}
	if u.CourseName != nil {
		entry.CourseName = *u.CourseName
	}
	if u.UsageType != nil {
		entry.UsageType = *u.UsageType
	}
	if u.OccupiedSeats != nil {
		entry.OccupiedSeats = *u.OccupiedSeats
	}
	if u.CanBeUsedForStudy != nil {
		entry.CanBeUsedForStudy = *u.CanBeUsedForStudy
	}
	return entry
}

// UpdateEntry merges the update into the entry with the given id, validates
// the result and persists the collection.
func (s *ScheduleService) UpdateEntry(ctx context.Context, id string, update EntryUpdate) (models.ScheduleEntry, error) {
	s.mu.Lock()
	index := -1
	for i := range s.entries {
		if s.entries[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return models.ScheduleEntry{}, ErrEntryNotFound
	}

	merged := update.apply(s.entries[index])
	if err := s.validateEntryLocked(merged); err != nil {
		s.mu.Unlock()
		return models.ScheduleEntry{}, err
	}

	entries := make([]models.ScheduleEntry, len(s.entries))
	copy(entries, s.entries)
	entries[index] = merged

	if err := s.repo.SaveEntries(ctx, entries); err != nil {
		s.mu.Unlock()
		return models.ScheduleEntry{}, fmt.Errorf("failed to persist entries: %w", err)
	}
	s.entries = entries
	s.mu.Unlock()

	metrics.EntriesUpdated.Inc()
	s.notifyUpdate()
	return merged, nil
}

// DeleteEntry removes the entry with the given id and persists the
// collection.
func (s *ScheduleService) DeleteEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	entries := make([]models.ScheduleEntry, 0, len(s.entries))
	found := false
	for _, entry := range s.entries {
		if entry.ID == id {
			found = true
			continue
		}
		entries = append(entries, entry)
	}
	if !found {
		s.mu.Unlock()
		return ErrEntryNotFound
	}

	if err := s.repo.SaveEntries(ctx, entries); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to persist entries: %w", err)
	}
	s.entries = entries
	s.mu.Unlock()

	metrics.EntriesDeleted.Inc()
	s.notifyUpdate()
	return nil
}

// RoomUpdate carries the fields of a partial room update; nil fields are left
// unchanged.
type RoomUpdate struct {
	Name        *string `json:"name,omitempty"`
	Building    *string `json:"building,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// UpdateRoom merges the update into the room with the given id and persists
// the collection. Lowering the capacity does not retroactively invalidate
// existing entries.
func (s *ScheduleService) UpdateRoom(ctx context.Context, id string, update RoomUpdate) (models.Room, error) {
	s.mu.Lock()
	index := -1
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return models.Room{}, ErrRoomNotFound
	}

	merged := s.rooms[index]
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Building != nil {
		merged.Building = *update.Building
	}
	if update.Capacity != nil {
		if *update.Capacity < 0 {
			s.mu.Unlock()
			return models.Room{}, fmt.Errorf("%w: capacity must not be negative", ErrValidation)
		}
		merged.Capacity = *update.Capacity
	}
	if update.IsAvailable != nil {
		merged.IsAvailable = *update.IsAvailable
	}

	rooms := make([]models.Room, len(s.rooms))
	copy(rooms, s.rooms)
	rooms[index] = merged

	if err := s.repo.SaveRooms(ctx, rooms); err != nil {
		s.mu.Unlock()
		return models.Room{}, fmt.Errorf("failed to persist rooms: %w", err)
	}
	s.rooms = rooms
	s.mu.Unlock()

	s.notifyUpdate()
	return merged, nil
}

// ToggleRoomAvailability flips the administrative availability flag of the
// room with the given id.
func (s *ScheduleService) ToggleRoomAvailability(ctx context.Context, id string) (models.Room, error) {
	room, err := s.Room(id)
	if err != nil {
		return models.Room{}, err
	}
	toggled := !room.IsAvailable
	updated, err := s.UpdateRoom(ctx, id, RoomUpdate{IsAvailable: &toggled})
	if err != nil {
		return models.Room{}, err
	}
	metrics.RoomToggles.Inc()
	return updated, nil
}

// ResetToDefaults overwrites both collections with the seed dataset and
// persists them.
func (s *ScheduleService) ResetToDefaults(ctx context.Context) error {
	rooms := models.DefaultRooms()
	entries := models.DefaultEntries()

	s.mu.Lock()
	if err := s.repo.SaveRooms(ctx, rooms); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to persist rooms: %w", err)
	}
	if err := s.repo.SaveEntries(ctx, entries); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to persist entries: %w", err)
	}
	s.rooms = rooms
	s.entries = entries
	s.mu.Unlock()

	metrics.ScheduleResets.Inc()
	log.Printf("Schedule store reset to defaults")
	s.notifyUpdate()
	return nil
}

// Statuses computes the status of every room against one shared instant.
func (s *ScheduleService) Statuses(now time.Time) map[string]models.RoomStatus {
	s.mu.RLock()
	rooms := s.rooms
	entries := s.entries
	s.mu.RUnlock()

	metrics.StatusPasses.Inc()
	return status.ComputeAllStatuses(rooms, entries, now)
}

// RoomStatusFor computes the status of a single room.
func (s *ScheduleService) RoomStatusFor(id string, now time.Time) (models.RoomStatus, error) {
	room, err := s.Room(id)
	if err != nil {
		return models.RoomStatus{}, err
	}
	return status.ComputeStatus(room, s.Entries(), now), nil
}

// validateEntryLocked enforces the edit-boundary rules: the owning room must
// exist, the course code must be non-empty, times must be well-formed with
// start < end, the day and usage type must be known, and the occupied seats
// must fit the room's capacity. Callers hold s.mu.
func (s *ScheduleService) validateEntryLocked(entry models.ScheduleEntry) error {
	var room *models.Room
	for i := range s.rooms {
		if s.rooms[i].ID == entry.RoomID {
			room = &s.rooms[i]
			break
		}
	}
	if room == nil {
		return ErrRoomNotFound
	}

	if entry.CourseCode == "" {
		return fmt.Errorf("%w: course code must not be empty", ErrValidation)
	}
	if !entry.Day.Valid() {
		return fmt.Errorf("%w: unknown weekday %q", ErrValidation, entry.Day)
	}
	if !entry.UsageType.Valid() {
		return fmt.Errorf("%w: unknown usage type %q", ErrValidation, entry.UsageType)
	}

	start, err := timeutil.ParseClock(entry.StartTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	end, err := timeutil.ParseClock(entry.EndTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if start >= end {
		return fmt.Errorf("%w: start time must be before end time", ErrValidation)
	}

	if entry.OccupiedSeats < 0 {
		return fmt.Errorf("%w: occupied seats must not be negative", ErrValidation)
	}
	if entry.OccupiedSeats > room.Capacity {
		return fmt.Errorf("%w: occupied seats (%d) exceed room capacity (%d)", ErrValidation, entry.OccupiedSeats, room.Capacity)
	}
	return nil
}
