package model

import (
	"testing"
	"time"
)

func mustAdd(t *testing.T, room *Room, b *Booking) {
	t.Helper()
	if err := room.AddBooking(b); err != nil {
		t.Fatalf("unexpected error adding booking %s: %v", b.ID, err)
	}
}

func TestIsAvailable_EmptyRoom(t *testing.T) {
	room := NewRoom("room1", "Conference Room 1")

	start := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	if !room.IsAvailable(start, end) {
		t.Error("expected empty room to be available")
	}
}

func TestIsAvailable_OverlapCases(t *testing.T) {
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	room := NewRoom("room1", "Conference Room 1")
	mustAdd(t, room, NewBooking("b1", "room1", base, base.Add(time.Hour), base))

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		available bool
	}{
		{"identical range", base, base.Add(time.Hour), false},
		{"query inside existing", base.Add(15 * time.Minute), base.Add(45 * time.Minute), false},
		{"existing inside query", base.Add(-time.Hour), base.Add(2 * time.Hour), false},
		{"overlap at start", base.Add(-30 * time.Minute), base.Add(30 * time.Minute), false},
		{"overlap at end", base.Add(30 * time.Minute), base.Add(90 * time.Minute), false},
		{"adjacent before", base.Add(-time.Hour), base, true},
		{"adjacent after", base.Add(time.Hour), base.Add(2 * time.Hour), true},
		{"fully before", base.Add(-3 * time.Hour), base.Add(-2 * time.Hour), true},
		{"fully after", base.Add(3 * time.Hour), base.Add(4 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := room.IsAvailable(tt.start, tt.end); got != tt.available {
				t.Errorf("IsAvailable(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.available)
			}
		})
	}
}

func TestAddBooking_RejectsDuplicateID(t *testing.T) {
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	room := NewRoom("room1", "Conference Room 1")

	mustAdd(t, room, NewBooking("b1", "room1", base, base.Add(time.Hour), base))

	err := room.AddBooking(NewBooking("b1", "room1", base.Add(2*time.Hour), base.Add(3*time.Hour), base))
	if err == nil {
		t.Fatal("expected duplicate booking id to be rejected")
	}
	if room.BookingCount() != 1 {
		t.Errorf("expected 1 booking after rejected add, got %d", room.BookingCount())
	}
}

func TestRemoveBooking(t *testing.T) {
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	room := NewRoom("room1", "Conference Room 1")
	mustAdd(t, room, NewBooking("b1", "room1", base, base.Add(time.Hour), base))

	if !room.RemoveBooking("b1") {
		t.Error("expected RemoveBooking to report true for a held booking")
	}
	if room.HasBooking("b1") {
		t.Error("expected booking to be gone after removal")
	}
	if room.RemoveBooking("b1") {
		t.Error("expected RemoveBooking to report false for a missing booking")
	}

	// Room is available again for the freed slot.
	if !room.IsAvailable(base, base.Add(time.Hour)) {
		t.Error("expected room to be available after cancellation")
	}
}

func TestHasAndGetBooking(t *testing.T) {
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	room := NewRoom("room1", "Conference Room 1")
	booking := NewBooking("b1", "room1", base, base.Add(time.Hour), base)
	mustAdd(t, room, booking)

	if !room.HasBooking("b1") {
		t.Error("expected HasBooking to find b1")
	}
	if room.HasBooking("b2") {
		t.Error("did not expect HasBooking to find b2")
	}
	if got := room.GetBooking("b1"); got != booking {
		t.Errorf("expected GetBooking to return the held booking, got %v", got)
	}
}

func TestBookingsReturnsCopy(t *testing.T) {
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	room := NewRoom("room1", "Conference Room 1")
	mustAdd(t, room, NewBooking("b1", "room1", base, base.Add(time.Hour), base))
	mustAdd(t, room, NewBooking("b2", "room1", base.Add(2*time.Hour), base.Add(3*time.Hour), base))

	got := room.Bookings()
	if len(got) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(got))
	}
	got[0] = nil
	if room.BookingCount() != 2 {
		t.Error("mutating the returned slice must not affect the room")
	}
}
