package repository

import (
	"context"
	"errors"
	"testing"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/pkg/model"
)

func TestMemoryStore_CreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRoomStore()

	room := model.NewRoom("room1", "Conference Room 1")
	if err := store.Create(ctx, room); err != nil {
		t.Fatalf("unexpected error creating room: %v", err)
	}

	got, err := store.FindByID(ctx, "room1")
	if err != nil {
		t.Fatalf("unexpected error finding room: %v", err)
	}
	if got.Name != "Conference Room 1" {
		t.Errorf("expected name 'Conference Room 1', got %s", got.Name)
	}
}

func TestMemoryStore_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRoomStore()

	if err := store.Create(ctx, model.NewRoom("room1", "A")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := store.Create(ctx, model.NewRoom("room1", "B"))
	if !errors.Is(err, roomserrors.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestMemoryStore_FindByIDMissing(t *testing.T) {
	store := NewMemoryRoomStore()

	_, err := store.FindByID(context.Background(), "nope")
	if !errors.Is(err, roomserrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_FindAllSortedByName(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRoomStore()

	for _, r := range []*model.Room{
		model.NewRoom("r2", "Zulu"),
		model.NewRoom("r1", "Alpha"),
		model.NewRoom("r3", "Mike"),
	} {
		if err := store.Create(ctx, r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	rooms, err := store.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 3 {
		t.Fatalf("expected 3 rooms, got %d", len(rooms))
	}
	want := []string{"Alpha", "Mike", "Zulu"}
	for i, name := range want {
		if rooms[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, rooms[i].Name)
		}
	}
}

func TestMemoryStore_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRoomStore()

	// Save without prior Create behaves as an upsert.
	if err := store.Save(ctx, model.NewRoom("room1", "A")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.FindByID(ctx, "room1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "A" {
		t.Errorf("expected name A, got %s", got.Name)
	}
}
