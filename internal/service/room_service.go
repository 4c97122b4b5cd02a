// Package service orchestrates the quiz engine with room storage. It is the
// composition layer between the pure generators and whatever surface calls
// them.
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sabdakosh/quizgen/internal/domain"
	"github.com/sabdakosh/quizgen/internal/quizgen"
	"github.com/sabdakosh/quizgen/internal/store"
)

// ErrRoomCodeExhausted is returned when no unused room code could be
// allocated after the maximum number of attempts.
var ErrRoomCodeExhausted = errors.New("could not allocate an unused room code")

const (
	roomCodeLength  = 6
	maxCodeAttempts = 5
)

// roomCodeAlphabet omits characters that read ambiguously on a projector
// (0/O, 1/I).
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RoomService creates quiz rooms from vocabulary pools and hands out
// per-student quiz instances. It holds no state of its own; all state lives
// in the injected RoomStore.
type RoomService struct {
	rooms     store.RoomStore
	generator *quizgen.TemplateGenerator
	logger    *slog.Logger
}

// NewRoomService creates a RoomService with the given store and generator.
func NewRoomService(
	rooms store.RoomStore,
	generator *quizgen.TemplateGenerator,
	logger *slog.Logger,
) *RoomService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoomService{rooms: rooms, generator: generator, logger: logger}
}

// CreateRoom generates a quiz template from the pool and saves it under a
// freshly allocated room code. Code collisions are retried a bounded number
// of times; ErrRoomCodeExhausted is returned when every attempt collided.
func (s *RoomService) CreateRoom(
	ctx context.Context,
	pool []domain.VocabEntry,
	cfg domain.QuizConfig,
	name, createdBy string,
) (*store.Room, error) {
	template, err := s.generator.Generate(pool, cfg, name, createdBy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate quiz template: %w", err)
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateRoomCode(roomCodeLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate room code: %w", err)
		}

		room := &store.Room{
			Code:      code,
			Template:  template,
			CreatedAt: time.Now().UTC(),
		}
		err = s.rooms.Save(ctx, room)
		if errors.Is(err, store.ErrRoomCodeTaken) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to save room: %w", err)
		}

		s.logger.Info("room created",
			"code", code,
			"template_id", template.ID,
			"questions", len(template.Questions))
		return room, nil
	}
	return nil, ErrRoomCodeExhausted
}

// JoinRoom derives the quiz instance for a student in a room. Joining is
// stateless: the same student joining twice receives an identical instance,
// and concurrent joins share only the immutable template.
func (s *RoomService) JoinRoom(
	ctx context.Context,
	code, studentID string,
) (*domain.QuizInstance, error) {
	room, err := s.rooms.Get(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up room %q: %w", code, err)
	}

	instance, err := quizgen.Instantiate(room.Template, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate quiz for student: %w", err)
	}
	return instance, nil
}

// generateRoomCode returns a random code of n characters from the room-code
// alphabet.
func generateRoomCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = roomCodeAlphabet[int(b)%len(roomCodeAlphabet)]
	}
	return string(buf), nil
}
