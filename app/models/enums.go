package models

// RoomType defines the possible room categories.
type RoomType string

const (
	RoomNormal RoomType = "normal"
	RoomLab    RoomType = "lab"
)

// EmploymentType defines how a lecturer is engaged by the university.
type EmploymentType string

const (
	FullTime EmploymentType = "full_time"
	PartTime EmploymentType = "part_time"
)

// WeekType tags a timetable entry with the weeks it applies to.
type WeekType string

const (
	WeekAll  WeekType = "all"
	WeekOdd  WeekType = "odd"
	WeekEven WeekType = "even"
)

// Teaching days run Monday (1) through Friday (5).
const (
	Monday = 1
	Friday = 5
)

var dayNames = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
}

// DayName returns the English weekday name for a 1-based teaching day.
func DayName(day int) string {
	if name, ok := dayNames[day]; ok {
		return name
	}
	return "Unknown"
}
