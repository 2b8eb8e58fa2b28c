package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Statements are
// idempotent so the application can run them on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS schools (
			id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			code VARCHAR(10) UNIQUE NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS departments (
			id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			code VARCHAR(10) UNIQUE NOT NULL,
			school_id UUID NOT NULL REFERENCES schools(id),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS rooms (
			id UUID PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			capacity INTEGER NOT NULL CHECK (capacity > 0),
			room_type VARCHAR(20) NOT NULL CHECK (room_type IN ('normal', 'lab')),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS lecturers (
			id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			employee_id VARCHAR(20) UNIQUE NOT NULL,
			employment_type VARCHAR(20) NOT NULL CHECK (employment_type IN ('full_time', 'part_time')),
			max_units INTEGER NOT NULL CHECK (max_units > 0),
			phone VARCHAR(15),
			email VARCHAR(100),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS units (
			id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			code VARCHAR(20) UNIQUE NOT NULL,
			department_id UUID NOT NULL REFERENCES departments(id),
			year_level INTEGER NOT NULL CHECK (year_level BETWEEN 1 AND 4),
			semester INTEGER NOT NULL CHECK (semester BETWEEN 1 AND 2),
			requires_lab BOOLEAN NOT NULL DEFAULT false,
			lecturer_id UUID NOT NULL REFERENCES lecturers(id),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS student_groups (
			id UUID PRIMARY KEY,
			department_id UUID NOT NULL REFERENCES departments(id),
			year_level INTEGER NOT NULL CHECK (year_level BETWEEN 1 AND 4),
			group_size INTEGER NOT NULL CHECK (group_size > 0),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS time_slots (
			id VARCHAR(40) PRIMARY KEY,
			day_of_week INTEGER NOT NULL CHECK (day_of_week BETWEEN 1 AND 5),
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL,
			session_type VARCHAR(20) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS timetable_entries (
			id UUID PRIMARY KEY,
			unit_id UUID NOT NULL REFERENCES units(id),
			lecturer_id UUID NOT NULL REFERENCES lecturers(id),
			room_id UUID NOT NULL REFERENCES rooms(id),
			time_slot_id VARCHAR(40) NOT NULL REFERENCES time_slots(id),
			student_group_id UUID NOT NULL REFERENCES student_groups(id),
			week_type VARCHAR(20) NOT NULL DEFAULT 'all' CHECK (week_type IN ('all', 'odd', 'even')),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		// The engine's occupancy checks guarantee these; the database
		// enforces them independently against out-of-band edits.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_entries_room_slot
			ON timetable_entries (room_id, time_slot_id, week_type)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_entries_lecturer_slot
			ON timetable_entries (lecturer_id, time_slot_id, week_type)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_entries_group_slot
			ON timetable_entries (student_group_id, time_slot_id, week_type)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
