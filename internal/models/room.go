package models

// Room represents a physical room in the building. The availability flag is
// set manually by an administrator and is independent of the weekly schedule.
type Room struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Building    string `json:"building"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"isAvailable"`
}
