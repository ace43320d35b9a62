package repository

import (
	"context"
	"sort"
	"sync"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/pkg/model"
)

// memoryRoomStore is the in-memory RoomStore variant, used by tests and
// broker-less local runs. Mutations are serialized per store, which also
// covers the per-room serialization the service assumes.
type memoryRoomStore struct {
	mu    sync.RWMutex
	rooms map[string]*model.Room
}

func NewMemoryRoomStore() RoomStore {
	return &memoryRoomStore{
		rooms: make(map[string]*model.Room),
	}
}

func (s *memoryRoomStore) Create(_ context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rooms[room.ID]; exists {
		return roomserrors.ErrAlreadyExists
	}
	s.rooms[room.ID] = room
	return nil
}

func (s *memoryRoomStore) FindByID(_ context.Context, id string) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, exists := s.rooms[id]
	if !exists {
		return nil, roomserrors.ErrNotFound
	}
	return room, nil
}

func (s *memoryRoomStore) FindAll(_ context.Context) ([]*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]*model.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Name < rooms[j].Name })
	return rooms, nil
}

func (s *memoryRoomStore) Save(_ context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rooms[room.ID] = room
	return nil
}
