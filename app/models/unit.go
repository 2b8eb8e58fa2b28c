package models

import "time"

// Unit is a course offering taught by one lecturer within a department.
// Its session duration follows its department's school convention.
type Unit struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" validate:"required"`
	Code         string    `json:"code" db:"code" validate:"required,max=20"`
	DepartmentID string    `json:"department_id" db:"department_id" validate:"required"`
	YearLevel    int       `json:"year_level" db:"year_level" validate:"min=1,max=4"`
	Semester     int       `json:"semester" db:"semester" validate:"min=1,max=2"`
	RequiresLab  bool      `json:"requires_lab" db:"requires_lab"`
	LecturerID   string    `json:"lecturer_id" db:"lecturer_id" validate:"required"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// StudentGroup is a cohort of students taking every unit that shares its
// department and year level.
type StudentGroup struct {
	ID           string    `json:"id" db:"id"`
	DepartmentID string    `json:"department_id" db:"department_id" validate:"required"`
	YearLevel    int       `json:"year_level" db:"year_level" validate:"min=1,max=4"`
	GroupSize    int       `json:"group_size" db:"group_size" validate:"required,gt=0"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
