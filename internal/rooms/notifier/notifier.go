package notifier

import (
	"context"

	"roomly/pkg/model"
)

// Event types published on the notifications topic.
const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

// Notifier delivers best-effort confirmation messages. The booking service
// treats every error from these methods as non-fatal.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, booking *model.Booking) error
	SendCancellationConfirmation(ctx context.Context, booking *model.Booking) error
}

// BookingEvent is the payload published for both confirmation kinds.
type BookingEvent struct {
	BookingID string `json:"booking_id"`
	RoomID    string `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// NoopNotifier is used when no broker is configured.
type NoopNotifier struct{}

func (NoopNotifier) SendBookingConfirmation(context.Context, *model.Booking) error {
	return nil
}

func (NoopNotifier) SendCancellationConfirmation(context.Context, *model.Booking) error {
	return nil
}
