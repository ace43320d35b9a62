package notifier

import (
	"context"
	"time"

	"roomly/pkg/kafka"
	"roomly/pkg/model"
)

const sourceService = "rooms"

// KafkaNotifier publishes booking lifecycle events to the notifications
// topic. Delivery downstream (email, chat, whatever) is a consumer concern.
type KafkaNotifier struct {
	producer *kafka.Producer
}

func NewKafkaNotifier(producer *kafka.Producer) *KafkaNotifier {
	return &KafkaNotifier{producer: producer}
}

func (n *KafkaNotifier) SendBookingConfirmation(ctx context.Context, booking *model.Booking) error {
	return n.publish(ctx, EventBookingConfirmed, booking)
}

func (n *KafkaNotifier) SendCancellationConfirmation(ctx context.Context, booking *model.Booking) error {
	return n.publish(ctx, EventBookingCancelled, booking)
}

func (n *KafkaNotifier) publish(ctx context.Context, eventType string, booking *model.Booking) error {
	msg := kafka.NewMessage().
		WithKey(booking.RoomID).
		WithEventType(eventType).
		WithSource(sourceService).
		WithValue(BookingEvent{
			BookingID: booking.ID,
			RoomID:    booking.RoomID,
			StartTime: booking.StartTime.Format(time.RFC3339),
			EndTime:   booking.EndTime.Format(time.RFC3339),
		}).
		Build()

	return n.producer.Publish(ctx, msg)
}

// Close flushes any buffered events.
func (n *KafkaNotifier) Close() error {
	return n.producer.Close()
}
