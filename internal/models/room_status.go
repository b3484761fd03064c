package models

// RoomStatusType is the derived three-valued classification of a room.
type RoomStatusType string

const (
	StatusAvailable   RoomStatusType = "available"
	StatusOccupied    RoomStatusType = "occupied"
	StatusUnavailable RoomStatusType = "unavailable"
)

// RoomStatus is the current status of a room for display purposes. It is an
// ephemeral projection recomputed from the room, its schedule and the current
// instant; it is never persisted.
type RoomStatus struct {
	Status             RoomStatusType `json:"status"`
	CurrentEntry       *ScheduleEntry `json:"currentEntry,omitempty"`
	NextEntry          *ScheduleEntry `json:"nextEntry,omitempty"`
	TimeUntilNextEntry *int           `json:"timeUntilNextEntry,omitempty"` // minutes
	TimeUntilFree      *int           `json:"timeUntilFree,omitempty"`      // minutes
	OccupiedSeats      int            `json:"occupiedSeats"`
}
