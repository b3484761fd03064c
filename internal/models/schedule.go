package models

// Weekday is a calendar weekday label. Labels are the Portuguese day names
// used throughout the dashboard and in persisted entries; their order matches
// time.Weekday (Sunday = 0).
type Weekday string

const (
	Sunday    Weekday = "Domingo"
	Monday    Weekday = "Segunda"
	Tuesday   Weekday = "Terça"
	Wednesday Weekday = "Quarta"
	Thursday  Weekday = "Quinta"
	Friday    Weekday = "Sexta"
	Saturday  Weekday = "Sábado"
)

// Weekdays lists all seven labels in ordinal order.
var Weekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// SchoolDays lists the weekdays that carry scheduled entries in practice.
// The engine's weekday mapping still spans all seven days.
var SchoolDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid reports whether d is one of the seven known labels.
func (d Weekday) Valid() bool {
	for _, w := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// UsageType classifies what a schedule entry occupies the room for.
type UsageType string

const (
	UsageClassSession UsageType = "class-session"
	UsageStudyGroup   UsageType = "study-group"
	UsageCoworking    UsageType = "coworking"
)

// Valid reports whether u is one of the known usage types.
func (u UsageType) Valid() bool {
	switch u {
	case UsageClassSession, UsageStudyGroup, UsageCoworking:
		return true
	}
	return false
}

// ScheduleEntry is one scheduled occupation of a room on a fixed weekday and
// time range. Times are wall-clock-of-day strings in HH:MM format with
// start < end, validated at the store boundary.
type ScheduleEntry struct {
	ID                string    `json:"id"`
	RoomID            string    `json:"roomId"`
	Day               Weekday   `json:"day"`
	StartTime         string    `json:"startTime"`
	EndTime           string    `json:"endTime"`
	CourseCode        string    `json:"courseCode"`
	CourseName        string    `json:"courseName,omitempty"`
	UsageType         UsageType `json:"usageType"`
	OccupiedSeats     int       `json:"occupiedSeats"`
	CanBeUsedForStudy bool      `json:"canBeUsedForStudy"`
}

// TimeSlot is a canonical lecture period. The slots populate the edit-form
// pickers; the status engine does not require entries to align with them.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimeSlots are the standard lecture periods of the building.
var TimeSlots = []TimeSlot{
	{Start: "07:30", End: "09:10"},
	{Start: "09:20", End: "11:00"},
	{Start: "11:10", End: "12:50"},
	{Start: "14:00", End: "15:40"},
	{Start: "15:50", End: "17:30"},
	{Start: "17:40", End: "19:20"},
	{Start: "19:30", End: "21:10"},
	{Start: "21:15", End: "22:15"},
}
