package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuestionTypeID names one question format, e.g. "np1→jp_kanji". The set of
// valid identifiers is fixed by the quizgen registry; quiz configurations
// reference types by these identifiers.
type QuestionTypeID string

// LessonRange is an inclusive range of lesson numbers used to filter a
// vocabulary pool.
type LessonRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether the lesson number falls inside the range.
func (r LessonRange) Contains(lesson int) bool {
	return lesson >= r.Start && lesson <= r.End
}

// QuestionFormat is a user-facing question specification: up to two prompt
// field categories and one output category. It is resolved to a
// QuestionTypeID by the quizgen format resolver; resolution never fails, so
// strict callers must separately check compatibility against the pool.
type QuestionFormat struct {
	Input1 FieldName `json:"input1"`
	Input2 FieldName `json:"input2,omitempty"`
	Output FieldName `json:"output"`
}

// QuizConfig captures everything a caller chose about a quiz: the vocabulary
// book, the lesson window, how many questions, and which question types may
// be used. Format, when set, is an alternative way of selecting a single
// question type.
type QuizConfig struct {
	BookID        string           `json:"book_id"`
	LessonRange   LessonRange      `json:"lesson_range"`
	QuestionCount int              `json:"question_count"`
	EnabledTypes  []QuestionTypeID `json:"enabled_types"`
	Format        *QuestionFormat  `json:"format,omitempty"`
}

// Validate checks if the QuizConfig has valid data.
// Returns an error if any field fails validation.
func (c QuizConfig) Validate() error {
	if c.QuestionCount <= 0 {
		return ErrQuestionCountInvalid
	}
	if c.LessonRange.Start <= 0 || c.LessonRange.End < c.LessonRange.Start {
		return ErrLessonRangeInvalid
	}
	if len(c.EnabledTypes) == 0 {
		return ErrNoEnabledTypes
	}
	return nil
}

// GeneratedQuestion is one fully rendered multiple-choice question. The
// correct answer appears in Options exactly once.
type GeneratedQuestion struct {
	ID            string         `json:"id"`
	Type          QuestionTypeID `json:"type"`
	Question      string         `json:"question"`
	CorrectAnswer string         `json:"correct_answer"`
	Options       []string       `json:"options"`
}

// Quiz is a one-shot randomized quiz. It is produced fresh on every call and
// never persisted by the engine.
type Quiz struct {
	ID        uuid.UUID           `json:"id"`
	Config    QuizConfig          `json:"config"`
	Questions []GeneratedQuestion `json:"questions"`
	CreatedAt time.Time           `json:"created_at"`
}

// NewQuiz creates a Quiz from a config snapshot and the produced questions.
// The snapshot's QuestionCount is corrected to the number of questions that
// were actually generated, which may be lower than requested.
func NewQuiz(cfg QuizConfig, questions []GeneratedQuestion) *Quiz {
	cfg.QuestionCount = len(questions)
	return &Quiz{
		ID:        uuid.New(),
		Config:    cfg,
		Questions: questions,
		CreatedAt: time.Now().UTC(),
	}
}
