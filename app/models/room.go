package models

import "time"

// Room is a physical teaching space. Lab-requiring units may only be placed
// in rooms of type lab.
type Room struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required"`
	Capacity  int       `json:"capacity" db:"capacity" validate:"required,gt=0"`
	RoomType  RoomType  `json:"room_type" db:"room_type" validate:"required,oneof=normal lab"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
