package models

import "time"

// School is the top-level academic division. Its code selects the session
// convention used when generating time slots for its units.
type School struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required"`
	Code      string    `json:"code" db:"code" validate:"required,max=10"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Department belongs to exactly one school.
type Department struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required"`
	Code      string    `json:"code" db:"code" validate:"required,max=10"`
	SchoolID  string    `json:"school_id" db:"school_id" validate:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
