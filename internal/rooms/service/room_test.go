package service

import (
	"context"
	"testing"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/pkg/clock"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
)

func TestCreateRoom_NormalizesName(t *testing.T) {
	store := &mockRoomStore{}
	svc := newTestService(store, &mockNotifier{}, clock.Fixed{Instant: testNow})

	room, err := svc.CreateRoom(context.Background(), "  Board \t Room  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Name != "Board Room" {
		t.Errorf("expected normalized name 'Board Room', got %q", room.Name)
	}
	if room.ID == "" {
		t.Error("expected a generated room id")
	}
	if store.createCalls != 1 {
		t.Errorf("expected one Create, got %d", store.createCalls)
	}
}

func TestCreateRoom_RejectsEmptyName(t *testing.T) {
	store := &mockRoomStore{}
	svc := newTestService(store, &mockNotifier{}, clock.Fixed{Instant: testNow})

	_, err := svc.CreateRoom(context.Background(), "   ")
	assertCode(t, err, apperrors.CodeInvalidInput)
	if store.createCalls != 0 {
		t.Errorf("expected the store to be untouched, got %d Create calls", store.createCalls)
	}
}

func TestCreateRoom_ConflictOnDuplicate(t *testing.T) {
	store := &mockRoomStore{
		createFunc: func(_ context.Context, _ *model.Room) error {
			return roomserrors.ErrAlreadyExists
		},
	}
	svc := newTestService(store, &mockNotifier{}, clock.Fixed{Instant: testNow})

	_, err := svc.CreateRoom(context.Background(), "Board Room")
	assertCode(t, err, apperrors.CodeConflict)
}

func TestGetRoom(t *testing.T) {
	room := model.NewRoom("room1", "Conference Room 1")
	store := &mockRoomStore{
		findByIDFunc: func(_ context.Context, id string) (*model.Room, error) {
			if id == "room1" {
				return room, nil
			}
			return nil, roomserrors.ErrNotFound
		},
	}
	svc := newTestService(store, &mockNotifier{}, clock.Fixed{Instant: testNow})

	got, err := svc.GetRoom(context.Background(), "room1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != room {
		t.Error("expected the stored room back")
	}

	_, err = svc.GetRoom(context.Background(), "missing")
	assertCode(t, err, apperrors.CodeNotFound)

	_, err = svc.GetRoom(context.Background(), "")
	assertCode(t, err, apperrors.CodeInvalidInput)
}

func TestListRooms(t *testing.T) {
	store := &mockRoomStore{
		findAllFunc: func(_ context.Context) ([]*model.Room, error) {
			return []*model.Room{
				model.NewRoom("r1", "Alpha"),
				model.NewRoom("r2", "Bravo"),
			}, nil
		},
	}
	svc := newTestService(store, &mockNotifier{}, clock.Fixed{Instant: testNow})

	rooms, err := svc.ListRooms(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 2 {
		t.Errorf("expected 2 rooms, got %d", len(rooms))
	}
}
