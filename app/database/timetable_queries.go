package database

import (
	"database/sql"
	"time"

	"github.com/TitoKamau053/university-timetable/app/models"
	"github.com/TitoKamau053/university-timetable/app/scheduler"
)

func GetTimeSlots(db *sql.DB) ([]models.TimeSlot, error) {
	rows, err := db.Query(`SELECT id, day_of_week, start_time, end_time, session_type
		FROM time_slots ORDER BY day_of_week, start_time, session_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]models.TimeSlot, 0)
	for rows.Next() {
		var ts models.TimeSlot
		if err := rows.Scan(&ts.ID, &ts.DayOfWeek, &ts.StartTime, &ts.EndTime, &ts.SessionType); err != nil {
			return nil, err
		}
		slots = append(slots, ts)
	}
	return slots, rows.Err()
}

// ReplaceTimeSlots swaps the whole slot catalog in one transaction. Entries
// reference slots, so they are cleared first.
func ReplaceTimeSlots(db *sql.DB, slots []models.TimeSlot) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM timetable_entries`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM time_slots`); err != nil {
		return err
	}
	for _, ts := range slots {
		if _, err := tx.Exec(`INSERT INTO time_slots (id, day_of_week, start_time, end_time, session_type)
			VALUES ($1, $2, $3, $4, $5)`,
			ts.ID, ts.DayOfWeek, ts.StartTime, ts.EndTime, ts.SessionType); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func GetEntries(db *sql.DB) ([]models.TimetableEntry, error) {
	rows, err := db.Query(`SELECT id, unit_id, lecturer_id, room_id, time_slot_id, student_group_id, week_type, created_at
		FROM timetable_entries ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.TimetableEntry, 0)
	for rows.Next() {
		var e models.TimetableEntry
		if err := rows.Scan(&e.ID, &e.UnitID, &e.LecturerID, &e.RoomID,
			&e.TimeSlotID, &e.StudentGroupID, &e.WeekType, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ReplaceEntries discards the prior entry set and writes the new one in a
// single transaction, so readers see either the old complete set or the new
// complete set and never a partial write.
func ReplaceEntries(db *sql.DB, entries []models.TimetableEntry) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM timetable_entries`); err != nil {
		return err
	}

	now := time.Now()
	for _, e := range entries {
		if _, err := tx.Exec(`INSERT INTO timetable_entries
			(id, unit_id, lecturer_id, room_id, time_slot_id, student_group_id, week_type, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			e.ID, e.UnitID, e.LecturerID, e.RoomID, e.TimeSlotID,
			e.StudentGroupID, e.WeekType, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadDataset takes the reference-data snapshot one generation or validation
// run works over.
func LoadDataset(db *sql.DB) (*scheduler.Dataset, error) {
	schools, err := GetSchools(db)
	if err != nil {
		return nil, err
	}
	departments, err := GetDepartments(db)
	if err != nil {
		return nil, err
	}
	lecturers, err := GetLecturers(db)
	if err != nil {
		return nil, err
	}
	units, err := GetUnits(db)
	if err != nil {
		return nil, err
	}
	rooms, err := GetRooms(db)
	if err != nil {
		return nil, err
	}
	groups, err := GetStudentGroups(db)
	if err != nil {
		return nil, err
	}
	slots, err := GetTimeSlots(db)
	if err != nil {
		return nil, err
	}

	return &scheduler.Dataset{
		Schools:     schools,
		Departments: departments,
		Lecturers:   lecturers,
		Units:       units,
		Rooms:       rooms,
		Groups:      groups,
		Slots:       slots,
		Conventions: scheduler.ConventionsForSchools(schools),
	}, nil
}

const timetableViewQuery = `
	SELECT te.id, u.name, u.code, l.name, d.name, ts.day_of_week,
		   ts.start_time, ts.end_time, r.name, u.year_level, u.requires_lab, te.week_type
	FROM timetable_entries te
	JOIN units u ON te.unit_id = u.id
	JOIN lecturers l ON te.lecturer_id = l.id
	JOIN rooms r ON te.room_id = r.id
	JOIN time_slots ts ON te.time_slot_id = ts.id
	JOIN departments d ON u.department_id = d.id`

func scanTimetableViews(rows *sql.Rows) ([]models.TimetableView, error) {
	defer rows.Close()

	views := make([]models.TimetableView, 0)
	for rows.Next() {
		var v models.TimetableView
		var day int
		if err := rows.Scan(&v.EntryID, &v.Course, &v.UnitCode, &v.Lecturer, &v.Department,
			&day, &v.StartTime, &v.EndTime, &v.Room, &v.YearLevel, &v.RequiresLab, &v.WeekType); err != nil {
			return nil, err
		}
		v.Day = models.DayName(day)
		views = append(views, v)
	}
	return views, rows.Err()
}

func GetTimetableViews(db *sql.DB) ([]models.TimetableView, error) {
	rows, err := db.Query(timetableViewQuery + ` ORDER BY ts.day_of_week, ts.start_time, r.name`)
	if err != nil {
		return nil, err
	}
	return scanTimetableViews(rows)
}

func GetTimetableViewsByDepartment(db *sql.DB, departmentCode string) ([]models.TimetableView, error) {
	rows, err := db.Query(timetableViewQuery+` WHERE d.code = $1 ORDER BY ts.day_of_week, ts.start_time, r.name`,
		departmentCode)
	if err != nil {
		return nil, err
	}
	return scanTimetableViews(rows)
}

func GetTimetableViewsByLecturer(db *sql.DB, lecturerID string) ([]models.TimetableView, error) {
	rows, err := db.Query(timetableViewQuery+` WHERE te.lecturer_id = $1 ORDER BY ts.day_of_week, ts.start_time, r.name`,
		lecturerID)
	if err != nil {
		return nil, err
	}
	return scanTimetableViews(rows)
}

// Statistics returns the entity counts shown on the statistics endpoint.
func Statistics(db *sql.DB) (map[string]int, error) {
	counts := map[string]string{
		"total_schools":           `SELECT COUNT(*) FROM schools`,
		"total_departments":       `SELECT COUNT(*) FROM departments`,
		"total_lecturers":         `SELECT COUNT(*) FROM lecturers`,
		"total_units":             `SELECT COUNT(*) FROM units`,
		"total_rooms":             `SELECT COUNT(*) FROM rooms`,
		"total_student_groups":    `SELECT COUNT(*) FROM student_groups`,
		"total_time_slots":        `SELECT COUNT(*) FROM time_slots`,
		"total_timetable_entries": `SELECT COUNT(*) FROM timetable_entries`,
		"lab_rooms":               `SELECT COUNT(*) FROM rooms WHERE room_type = 'lab'`,
		"normal_rooms":            `SELECT COUNT(*) FROM rooms WHERE room_type = 'normal'`,
		"full_time_lecturers":     `SELECT COUNT(*) FROM lecturers WHERE employment_type = 'full_time'`,
		"part_time_lecturers":     `SELECT COUNT(*) FROM lecturers WHERE employment_type = 'part_time'`,
		"units_requiring_lab":     `SELECT COUNT(*) FROM units WHERE requires_lab = true`,
	}

	stats := make(map[string]int, len(counts))
	for key, query := range counts {
		var n int
		if err := db.QueryRow(query).Scan(&n); err != nil {
			return nil, err
		}
		stats[key] = n
	}
	return stats, nil
}
