package model

import "time"

// Booking is an immutable record of one reservation. It references its owning
// room by id only; the Room holds the booking itself.
type Booking struct {
	ID        string    `json:"id" bson:"id"`
	RoomID    string    `json:"room_id" bson:"room_id"`
	StartTime time.Time `json:"start_time" bson:"start_time"`
	EndTime   time.Time `json:"end_time" bson:"end_time"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func NewBooking(id, roomID string, startTime, endTime, createdAt time.Time) *Booking {
	return &Booking{
		ID:        id,
		RoomID:    roomID,
		StartTime: startTime,
		EndTime:   endTime,
		CreatedAt: createdAt,
	}
}

// Overlaps reports whether the booking's half-open interval [StartTime, EndTime)
// intersects [start, end).
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}
