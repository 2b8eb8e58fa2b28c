package models

import "time"

// TimetableEntry is one committed placement: a unit taught by its lecturer to
// one student group, in one room, during one time slot. Entries are generated
// as a whole set and replaced as a whole set; they are never patched in place.
type TimetableEntry struct {
	ID             string    `json:"id" db:"id"`
	UnitID         string    `json:"unit_id" db:"unit_id"`
	LecturerID     string    `json:"lecturer_id" db:"lecturer_id"`
	RoomID         string    `json:"room_id" db:"room_id"`
	TimeSlotID     string    `json:"time_slot_id" db:"time_slot_id"`
	StudentGroupID string    `json:"student_group_id" db:"student_group_id"`
	WeekType       WeekType  `json:"week_type" db:"week_type"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// TimetableView is a display-ready join of an entry with the names of the
// entities it references.
type TimetableView struct {
	EntryID     string `json:"entry_id"`
	Course      string `json:"course"`
	UnitCode    string `json:"unit_code"`
	Lecturer    string `json:"lecturer"`
	Department  string `json:"department"`
	Day         string `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Room        string `json:"room"`
	YearLevel   int    `json:"year_level"`
	RequiresLab bool   `json:"requires_lab"`
	WeekType    string `json:"week_type"`
}
