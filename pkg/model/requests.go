package model

import "time"

// BookRoomRequest is the transport-level shape of a booking attempt.
type BookRoomRequest struct {
	RoomID    string    `json:"room_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

type CreateRoomRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}
