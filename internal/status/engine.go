// Package status derives the current availability of rooms from their weekly
// schedules. All functions are pure projections over the supplied instant; no
// state is kept between calls.
package status

import (
	"fmt"
	"sort"
	"time"

	"github.com/academicspaces/roomboard/internal/models"
	"github.com/academicspaces/roomboard/internal/timeutil"
)

// Operating hours of the building in minutes since midnight. Outside this
// window every room reports unavailable regardless of its schedule.
const (
	OperatingStartMinutes = 450  // 07:30
	OperatingEndMinutes   = 1335 // 22:15
)

// ComputeStatus derives the status of a single room at the given instant.
// Entries for other rooms in allEntries are ignored. The administrative
// availability flag takes absolute precedence, then the operating-hours
// window, then the schedule.
func ComputeStatus(room models.Room, allEntries []models.ScheduleEntry, now time.Time) models.RoomStatus {
	currentMinutes := timeutil.MinutesOfDay(now)
	if !room.IsAvailable || outsideOperatingHours(currentMinutes) {
		return models.RoomStatus{Status: models.StatusUnavailable}
	}
	return derive(room, allEntries, timeutil.DayName(now), currentMinutes)
}

// ComputeAllStatuses derives the status of every room against one shared
// instant, so a render pass never shows rooms evaluated at skewed times. The
// result is identical to calling ComputeStatus once per room.
func ComputeAllStatuses(rooms []models.Room, allEntries []models.ScheduleEntry, now time.Time) map[string]models.RoomStatus {
	today := timeutil.DayName(now)
	currentMinutes := timeutil.MinutesOfDay(now)
	outside := outsideOperatingHours(currentMinutes)

	statuses := make(map[string]models.RoomStatus, len(rooms))
	for _, room := range rooms {
		if !room.IsAvailable || outside {
			statuses[room.ID] = models.RoomStatus{Status: models.StatusUnavailable}
			continue
		}
		statuses[room.ID] = derive(room, allEntries, today, currentMinutes)
	}
	return statuses
}

func outsideOperatingHours(currentMinutes int) bool {
	return currentMinutes < OperatingStartMinutes || currentMinutes > OperatingEndMinutes
}

// derive computes the schedule-driven part of the status: the room is already
// known to be administratively available and inside operating hours.
func derive(room models.Room, allEntries []models.ScheduleEntry, today models.Weekday, currentMinutes int) models.RoomStatus {
	var todays []models.ScheduleEntry
	for _, entry := range allEntries {
		if entry.RoomID == room.ID && entry.Day == today {
			todays = append(todays, entry)
		}
	}
	sort.SliceStable(todays, func(i, j int) bool {
		return startMinutes(todays[i]) < startMinutes(todays[j])
	})

	// First entry covering [start, end) wins; under overlapping data the
	// earliest-starting match is taken. The next entry is the first one
	// starting after the current minute, even while an entry is active.
	var current, next *models.ScheduleEntry
	for i := range todays {
		start := startMinutes(todays[i])
		if current == nil && currentMinutes >= start && currentMinutes < endMinutes(todays[i]) {
			current = &todays[i]
		}
		if next == nil && start > currentMinutes {
			next = &todays[i]
		}
		if current != nil && next != nil {
			break
		}
	}

	result := models.RoomStatus{Status: models.StatusAvailable}
	if current != nil {
		remaining := endMinutes(*current) - currentMinutes
		result.Status = models.StatusOccupied
		result.CurrentEntry = current
		result.TimeUntilFree = &remaining
		result.OccupiedSeats = current.OccupiedSeats
	}
	if next != nil {
		until := startMinutes(*next) - currentMinutes
		result.NextEntry = next
		result.TimeUntilNextEntry = &until
	}
	return result
}

// Entry times are validated at the store boundary, so parse failures cannot
// occur here; a malformed value would sort to midnight rather than panic.
func startMinutes(entry models.ScheduleEntry) int {
	minutes, _ := timeutil.ParseClock(entry.StartTime)
	return minutes
}

func endMinutes(entry models.ScheduleEntry) int {
	minutes, _ := timeutil.ParseClock(entry.EndTime)
	return minutes
}

// FormatRemaining renders a minute count for display: nil is empty, under a
// minute is "Agora", under an hour is whole minutes, otherwise hours with the
// minute remainder omitted when zero. Values are floored, never rounded.
func FormatRemaining(minutes *int) string {
	if minutes == nil {
		return ""
	}
	m := *minutes
	switch {
	case m < 1:
		return "Agora"
	case m < 60:
		return fmt.Sprintf("%d min", m)
	case m%60 > 0:
		return fmt.Sprintf("%dh %dmin", m/60, m%60)
	default:
		return fmt.Sprintf("%dh", m/60)
	}
}
