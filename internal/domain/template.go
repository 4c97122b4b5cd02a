package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TemplateQuestion is one question of a quiz template. Unlike a
// GeneratedQuestion it keeps every possible wrong-answer candidate from the
// pool; the pruning to a final option set happens per student when the
// template is instantiated.
type TemplateQuestion struct {
	ID                 string         `json:"id"`
	Type               QuestionTypeID `json:"type"`
	Question           string         `json:"question"`
	CorrectAnswer      string         `json:"correct_answer"`
	VocabID            int            `json:"vocab_id"`
	AllPossibleOptions []string       `json:"all_possible_options"`
}

// QuizTemplate is a fixed, pool-wide quiz definition. Templates are immutable
// once created and are consumed many times to derive per-student instances.
type QuizTemplate struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	CreatedBy string             `json:"created_by"`
	Config    QuizConfig         `json:"config"`
	Questions []TemplateQuestion `json:"questions"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewQuizTemplate creates a QuizTemplate with the given name, creator and
// questions. The config snapshot's QuestionCount is corrected to the actual
// question count. Returns an error if validation fails.
func NewQuizTemplate(
	name, createdBy string,
	cfg QuizConfig,
	questions []TemplateQuestion,
) (*QuizTemplate, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrTemplateNameEmpty
	}
	if len(questions) == 0 {
		return nil, ErrTemplateNoQuestions
	}

	cfg.QuestionCount = len(questions)
	return &QuizTemplate{
		ID:        uuid.New(),
		Name:      name,
		CreatedBy: createdBy,
		Config:    cfg,
		Questions: questions,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// QuizInstance is one student's realization of a quiz template. Instances are
// derived deterministically: the same template and student ID always yield
// the same questions, option subsets and option order.
type QuizInstance struct {
	TemplateID uuid.UUID           `json:"template_id"`
	StudentID  string              `json:"student_id"`
	Questions  []GeneratedQuestion `json:"questions"`
}
