package models

import "fmt"

// TimeSlot is one bookable teaching window. The full set is derived from
// school session conventions rather than authored by hand; SessionType names
// the convention a slot belongs to, and slots are never shared across
// conventions even when their wall-clock times coincide.
type TimeSlot struct {
	ID          string `json:"id" db:"id"`
	DayOfWeek   int    `json:"day_of_week" db:"day_of_week" validate:"min=1,max=5"`
	StartTime   string `json:"start_time" db:"start_time" validate:"required"`
	EndTime     string `json:"end_time" db:"end_time" validate:"required"`
	SessionType string `json:"session_type" db:"session_type" validate:"required"`
}

// Label renders the slot for display, e.g. "Monday 07:00 - 10:00".
func (ts TimeSlot) Label() string {
	return fmt.Sprintf("%s %s - %s", DayName(ts.DayOfWeek), ts.StartTime, ts.EndTime)
}
