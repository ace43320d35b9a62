package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	roomserrors "roomly/internal/rooms/errors"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"
)

// Room administration. Rooms are provisioned through the store; the booking
// operations above only ever read and mutate existing rooms.

func (s *bookingService) CreateRoom(ctx context.Context, name string) (*model.Room, error) {
	name = sanitizer.NormalizeRoomName(name)
	if name == "" {
		return nil, apperrors.InvalidInput("room name cannot be empty")
	}

	room := model.NewRoom(uuid.New().String(), name)
	if err := s.store.Create(ctx, room); err != nil {
		if errors.Is(err, roomserrors.ErrAlreadyExists) {
			return nil, apperrors.Conflict("a room with this id already exists")
		}
		return nil, apperrors.Internal("Failed to create room", err)
	}

	s.cfg.Log.Info("Room created successfully", "room_id", room.ID, "name", room.Name)
	return room, nil
}

func (s *bookingService) GetRoom(ctx context.Context, id string) (*model.Room, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("room id cannot be empty")
	}

	room, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Room", id)
		}
		return nil, apperrors.Internal("Failed to look up room", err)
	}

	return room, nil
}

func (s *bookingService) ListRooms(ctx context.Context) ([]*model.Room, error) {
	rooms, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list rooms", err)
	}
	return rooms, nil
}
