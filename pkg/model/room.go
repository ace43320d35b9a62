package model

import (
	"fmt"
	"time"
)

// Room owns the set of bookings for one physical resource. Bookings never
// live outside a room's custody; the map below is the single source of truth
// for what is booked.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	bookings map[string]*Booking
}

func NewRoom(id, name string) *Room {
	return &Room{
		ID:       id,
		Name:     name,
		bookings: make(map[string]*Booking),
	}
}

// IsAvailable reports whether no held booking overlaps [start, end).
func (r *Room) IsAvailable(start, end time.Time) bool {
	for _, b := range r.bookings {
		if b.Overlaps(start, end) {
			return false
		}
	}
	return true
}

// AddBooking attaches a booking to the room. The caller is expected to have
// verified availability already; only duplicate ids are rejected here.
func (r *Room) AddBooking(b *Booking) error {
	if r.bookings == nil {
		r.bookings = make(map[string]*Booking)
	}
	if _, exists := r.bookings[b.ID]; exists {
		return fmt.Errorf("booking %s already held by room %s", b.ID, r.ID)
	}
	r.bookings[b.ID] = b
	return nil
}

// RemoveBooking detaches the booking with the given id, reporting whether it
// was held.
func (r *Room) RemoveBooking(bookingID string) bool {
	if _, exists := r.bookings[bookingID]; !exists {
		return false
	}
	delete(r.bookings, bookingID)
	return true
}

func (r *Room) HasBooking(bookingID string) bool {
	_, exists := r.bookings[bookingID]
	return exists
}

// GetBooking returns the held booking with the given id, or nil. Callers in
// this repository always check HasBooking first.
func (r *Room) GetBooking(bookingID string) *Booking {
	return r.bookings[bookingID]
}

// Bookings returns the held bookings. The slice is a copy; mutating it does
// not affect the room.
func (r *Room) Bookings() []*Booking {
	out := make([]*Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out
}

func (r *Room) BookingCount() int {
	return len(r.bookings)
}
