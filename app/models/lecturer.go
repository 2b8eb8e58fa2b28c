package models

import "time"

// Lecturer teaches units. MaxUnits caps how many weekly sessions the
// assignment engine may commit against them.
type Lecturer struct {
	ID             string         `json:"id" db:"id"`
	Name           string         `json:"name" db:"name" validate:"required"`
	EmployeeID     string         `json:"employee_id" db:"employee_id" validate:"required,max=20"`
	EmploymentType EmploymentType `json:"employment_type" db:"employment_type" validate:"required,oneof=full_time part_time"`
	MaxUnits       int            `json:"max_units" db:"max_units" validate:"required,gt=0"`
	Phone          string         `json:"phone,omitempty" db:"phone"`
	Email          string         `json:"email,omitempty" db:"email" validate:"omitempty,email"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}
