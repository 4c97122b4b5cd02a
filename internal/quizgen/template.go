package quizgen

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sabdakosh/quizgen/internal/domain"
)

// instanceSeedOffset separates the distractor-selection shuffle from the
// final option shuffle of the same question.
const instanceSeedOffset = 1000

// TemplateGenerator builds reproducible quiz templates. Unlike the ad-hoc
// generator it uses no randomness at all: entry order, type assignment and
// candidate options are fully determined by the pool and config.
type TemplateGenerator struct {
	logger *slog.Logger
}

// NewTemplateGenerator creates a template generator.
func NewTemplateGenerator(logger *slog.Logger) *TemplateGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplateGenerator{logger: logger}
}

// Generate builds a quiz template from the pool.
//
// Entries in the lesson range are sorted by lesson number then entry ID, and
// the first QuestionCount are selected. Each selected entry at index i gets
// type compatible[i mod len(compatible)] from its compatible enabled types,
// a deterministic round-robin; entries with no compatible enabled type are
// skipped with a warning (no last-resort fallback in template mode). Each
// template question keeps every distinct candidate option from the whole
// pool; pruning to a final option set happens per student in Instantiate.
//
// Returns ErrEmptyRange when the lesson filter matches nothing and
// ErrNoQuestionsGenerated when every selected entry was skipped.
func (g *TemplateGenerator) Generate(
	pool []domain.VocabEntry,
	cfg domain.QuizConfig,
	name, createdBy string,
) (*domain.QuizTemplate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	selected := filterByLessonRange(pool, cfg.LessonRange)
	if len(selected) == 0 {
		return nil, ErrEmptyRange
	}

	sort.Slice(selected, func(i, j int) bool {
		if selected[i].LessonNumber != selected[j].LessonNumber {
			return selected[i].LessonNumber < selected[j].LessonNumber
		}
		return selected[i].ID < selected[j].ID
	})
	if len(selected) > cfg.QuestionCount {
		selected = selected[:cfg.QuestionCount]
	}

	var questions []domain.TemplateQuestion
	for i, entry := range selected {
		compatible := compatibleTypesForEntry(entry, cfg.EnabledTypes)
		if len(compatible) == 0 {
			g.logger.Warn("excluding entry from template: no compatible question type",
				"vocab_id", entry.ID,
				"lesson", entry.LessonNumber)
			continue
		}

		qt := compatible[i%len(compatible)]
		answer := resolveField(entry, qt.AnswerField)
		questions = append(questions, domain.TemplateQuestion{
			ID:                 uuid.NewString(),
			Type:               qt.ID,
			Question:           renderPrompt(entry, qt),
			CorrectAnswer:      answer,
			VocabID:            entry.ID,
			AllPossibleOptions: allPossibleOptions(pool, qt.OptionsField, answer),
		})
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestionsGenerated
	}
	return domain.NewQuizTemplate(name, createdBy, cfg, questions)
}

// allPossibleOptions collects every distinct, non-empty resolved value of
// the options field across the whole pool, excluding the correct answer.
// Pool order is kept so the template is deterministic for a given pool.
func allPossibleOptions(pool []domain.VocabEntry, field domain.FieldName, correct string) []string {
	seen := map[string]bool{correct: true}
	var options []string
	for _, e := range pool {
		v := resolveField(e, field)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		options = append(options, v)
	}
	return options
}

// Instantiate derives one student's quiz from a template.
//
// The student seed is the sum of the student ID's code points. For the
// question at index i, the candidate options are shuffled with seed seed+i
// and the first three become distractors; the correct answer is prepended
// and the combined set is shuffled with seed seed+i+1000. Both shuffles use
// the fixed LCG, so the same template and student always produce an
// identical instance, including option order.
func Instantiate(tpl *domain.QuizTemplate, studentID string) (*domain.QuizInstance, error) {
	if tpl == nil {
		return nil, ErrNilTemplate
	}
	if strings.TrimSpace(studentID) == "" {
		return nil, domain.ErrStudentIDEmpty
	}

	seed := studentSeed(studentID)
	questions := make([]domain.GeneratedQuestion, 0, len(tpl.Questions))
	for i, tq := range tpl.Questions {
		shuffled := seededShuffle(tq.AllPossibleOptions, seed+i)
		n := OptionCount - 1
		if len(shuffled) < n {
			n = len(shuffled)
		}

		options := append([]string{tq.CorrectAnswer}, shuffled[:n]...)
		options = seededShuffle(options, seed+i+instanceSeedOffset)

		questions = append(questions, domain.GeneratedQuestion{
			ID:            tq.ID,
			Type:          tq.Type,
			Question:      tq.Question,
			CorrectAnswer: tq.CorrectAnswer,
			Options:       options,
		})
	}

	return &domain.QuizInstance{
		TemplateID: tpl.ID,
		StudentID:  studentID,
		Questions:  questions,
	}, nil
}
