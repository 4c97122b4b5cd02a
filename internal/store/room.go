// Package store defines persistence interfaces for quiz rooms and an
// in-memory implementation. The generation engine itself never touches a
// store; callers pass one in explicitly.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/sabdakosh/quizgen/internal/domain"
)

// Room-store errors.
var (
	// ErrRoomNotFound is returned when no room exists for a code.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomCodeTaken is returned when saving a room under a code that is
	// already in use.
	ErrRoomCodeTaken = errors.New("room code already in use")

	// ErrRoomInvalid is returned when a room is missing its code or template.
	ErrRoomInvalid = errors.New("room must have a code and a template")
)

// Room binds a shareable room code to a quiz template. Students joining the
// room derive their own instance from the template.
type Room struct {
	Code      string               `json:"code"`
	Template  *domain.QuizTemplate `json:"template"`
	CreatedAt time.Time            `json:"created_at"`
}

// RoomStore defines the interface for room persistence.
//
// Implementations must be safe for concurrent use: rooms are written once at
// creation and read by every joining student. Templates are immutable after
// creation, so implementations may hand out the stored pointer directly.
type RoomStore interface {
	// Save stores a room under its code.
	// Returns ErrRoomCodeTaken if the code is already in use and
	// ErrRoomInvalid if the room has no code or template.
	Save(ctx context.Context, room *Room) error

	// Get retrieves a room by its code.
	// Returns ErrRoomNotFound if no room exists for the code.
	Get(ctx context.Context, code string) (*Room, error)

	// Delete removes a room by its code.
	// Returns ErrRoomNotFound if no room exists for the code.
	Delete(ctx context.Context, code string) error
}
