// Package timeutil converts wall-clock instants and HH:MM strings into the
// minute arithmetic the status engine works with.
package timeutil

import (
	"fmt"
	"time"

	"github.com/academicspaces/roomboard/internal/models"
)

// DayName maps an instant's calendar weekday to its fixed label.
func DayName(t time.Time) models.Weekday {
	return models.Weekdays[int(t.Weekday())]
}

// MinutesOfDay returns the minutes elapsed since midnight for t, in [0, 1439].
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ParseClock parses a fixed-format "HH:MM" time-of-day string into minutes
// since midnight. Input is validated strictly; callers at the edit boundary
// must reject the error before a value reaches the status engine.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
		}
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return hours*60 + minutes, nil
}
