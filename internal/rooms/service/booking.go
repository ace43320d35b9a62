package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/internal/rooms/notifier"
	"roomly/internal/rooms/repository"
	"roomly/pkg/clock"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
)

// BookingService validates booking requests against time constraints and
// room state, delegates persistence and notification to its collaborators,
// and enforces cancellation rules based on elapsed time.
type BookingService interface {
	BookRoom(ctx context.Context, roomID string, startTime, endTime time.Time) (bool, error)
	GetAvailableRooms(ctx context.Context, startTime, endTime time.Time) ([]*model.Room, error)
	CancelBooking(ctx context.Context, bookingID string) (bool, error)
	CreateRoom(ctx context.Context, name string) (*model.Room, error)
	GetRoom(ctx context.Context, id string) (*model.Room, error)
	ListRooms(ctx context.Context) ([]*model.Room, error)
}

type bookingService struct {
	store    repository.RoomStore
	notifier notifier.Notifier
	clock    clock.Clock
	cfg      *config.Config
}

func NewBookingService(
	store repository.RoomStore,
	notif notifier.Notifier,
	clk clock.Clock,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		store:    store,
		notifier: notif,
		clock:    clk,
		cfg:      cfg,
	}
}

// BookRoom books the room for [startTime, endTime). It returns false without
// error when the room exists but is not available for the range. Validation
// short-circuits: no collaborator is called once a step has failed.
func (s *bookingService) BookRoom(ctx context.Context, roomID string, startTime, endTime time.Time) (bool, error) {
	if roomID == "" || startTime.IsZero() || endTime.IsZero() {
		return false, apperrors.InvalidInput("a booking requires a room id and valid start and end times")
	}

	if !endTime.After(startTime) {
		return false, apperrors.InvalidInput("end time must be after start time")
	}

	if startTime.Before(s.clock.Now()) {
		return false, apperrors.InvalidInput("cannot book a time in the past")
	}

	room, err := s.store.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return false, apperrors.NotFoundWithID("Room", roomID)
		}
		return false, apperrors.Internal("Failed to look up room", err)
	}

	if !room.IsAvailable(startTime, endTime) {
		s.cfg.Log.Info("Room unavailable for requested range",
			"room_id", roomID,
			"start_time", startTime,
			"end_time", endTime,
		)
		return false, nil
	}

	booking := model.NewBooking(uuid.New().String(), roomID, startTime, endTime, s.clock.Now())
	if err := room.AddBooking(booking); err != nil {
		return false, apperrors.Internal("Failed to attach booking to room", err)
	}

	if err := s.store.Save(ctx, room); err != nil {
		return false, apperrors.Internal("Failed to save room", err)
	}

	// Best effort: a failed confirmation never affects the booking outcome.
	if err := s.notifier.SendBookingConfirmation(ctx, booking); err != nil {
		s.cfg.Log.Warn("Failed to send booking confirmation",
			"booking_id", booking.ID,
			"room_id", roomID,
			"error", err,
		)
	}

	s.cfg.Log.Info("Room booked successfully",
		"booking_id", booking.ID,
		"room_id", roomID,
		"start_time", startTime,
		"end_time", endTime,
	)
	return true, nil
}

// GetAvailableRooms returns every room whose booking set leaves
// [startTime, endTime) free.
func (s *bookingService) GetAvailableRooms(ctx context.Context, startTime, endTime time.Time) ([]*model.Room, error) {
	if startTime.IsZero() || endTime.IsZero() {
		return nil, apperrors.InvalidInput("both start and end times are required")
	}

	if !endTime.After(startTime) {
		return nil, apperrors.InvalidInput("end time must be after start time")
	}

	rooms, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list rooms", err)
	}

	available := make([]*model.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.IsAvailable(startTime, endTime) {
			available = append(available, room)
		}
	}

	return available, nil
}

// CancelBooking removes a future booking from its room. Unknown booking ids
// yield false without error; cancelling a booking that has already started
// (or finished) is a conflict and mutates nothing.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (bool, error) {
	if bookingID == "" {
		return false, apperrors.InvalidInput("booking id cannot be empty")
	}

	rooms, err := s.store.FindAll(ctx)
	if err != nil {
		return false, apperrors.Internal("Failed to list rooms", err)
	}

	// Booking ids are globally unique, so the first holding room is the only one.
	var owner *model.Room
	for _, room := range rooms {
		if room.HasBooking(bookingID) {
			owner = room
			break
		}
	}
	if owner == nil {
		return false, nil
	}

	booking := owner.GetBooking(bookingID)
	if !s.clock.Now().Before(booking.StartTime) {
		return false, apperrors.Conflict("cannot cancel a booking that has already started or finished")
	}

	owner.RemoveBooking(bookingID)

	if err := s.store.Save(ctx, owner); err != nil {
		return false, apperrors.Internal("Failed to save room", err)
	}

	if err := s.notifier.SendCancellationConfirmation(ctx, booking); err != nil {
		s.cfg.Log.Warn("Failed to send cancellation confirmation",
			"booking_id", bookingID,
			"room_id", owner.ID,
			"error", err,
		)
	}

	s.cfg.Log.Info("Booking cancelled successfully",
		"booking_id", bookingID,
		"room_id", owner.ID,
	)
	return true, nil
}
