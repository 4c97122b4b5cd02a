package store

import (
	"context"
	"sync"
)

// MemoryRoomStore is an in-process RoomStore backed by a mutex-guarded map.
// It is the reference implementation used by tests and the CLI; a deployment
// that needs rooms to survive restarts supplies its own RoomStore.
type MemoryRoomStore struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewMemoryRoomStore creates an empty in-memory room store.
func NewMemoryRoomStore() *MemoryRoomStore {
	return &MemoryRoomStore{rooms: make(map[string]*Room)}
}

// Save implements RoomStore.
func (s *MemoryRoomStore) Save(_ context.Context, room *Room) error {
	if room == nil || room.Code == "" || room.Template == nil {
		return ErrRoomInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rooms[room.Code]; exists {
		return ErrRoomCodeTaken
	}
	s.rooms[room.Code] = room
	return nil
}

// Get implements RoomStore.
func (s *MemoryRoomStore) Get(_ context.Context, code string) (*Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[code]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// Delete implements RoomStore.
func (s *MemoryRoomStore) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[code]; !ok {
		return ErrRoomNotFound
	}
	delete(s.rooms, code)
	return nil
}
