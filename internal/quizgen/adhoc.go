package quizgen

import (
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sabdakosh/quizgen/internal/domain"
)

// AdHocGenerator builds one randomized quiz per invocation. Results are not
// reproducible; study mode uses this, rooms use TemplateGenerator instead.
type AdHocGenerator struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// NewAdHocGenerator creates an ad-hoc quiz generator with its own
// randomness source.
func NewAdHocGenerator(logger *slog.Logger) *AdHocGenerator {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return NewAdHocGeneratorWithRand(rng, logger)
}

// NewAdHocGeneratorWithRand creates an ad-hoc quiz generator using the given
// randomness source. Tests use this to make selection observable.
func NewAdHocGeneratorWithRand(rng *rand.Rand, logger *slog.Logger) *AdHocGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdHocGenerator{rng: rng, logger: logger}
}

// Generate builds a randomized quiz from the pool.
//
// Entries are filtered to the config's lesson range and up to QuestionCount
// of them are drawn uniformly. Each entry gets one of its own compatible
// enabled types picked at random; an entry compatible with none falls back
// to translation → phonetic-reading when both fields are present, and is
// otherwise skipped with a warning.
//
// Returns ErrEmptyRange when the lesson filter matches nothing and
// ErrNoQuestionsGenerated when every selected entry had to be skipped. The
// returned quiz's QuestionCount reflects the questions actually produced.
func (g *AdHocGenerator) Generate(
	pool []domain.VocabEntry,
	cfg domain.QuizConfig,
) (*domain.Quiz, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	selected := filterByLessonRange(pool, cfg.LessonRange)
	if len(selected) == 0 {
		return nil, ErrEmptyRange
	}

	g.rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	if len(selected) > cfg.QuestionCount {
		selected = selected[:cfg.QuestionCount]
	}

	var questions []domain.GeneratedQuestion
	for _, entry := range selected {
		compatible := compatibleTypesForEntry(entry, cfg.EnabledTypes)
		if len(compatible) == 0 {
			fallback, _ := LookupType(TypeTranslationToRubi)
			if !entrySupports(entry, fallback) {
				g.logger.Warn("skipping entry: no compatible question type",
					"vocab_id", entry.ID,
					"lesson", entry.LessonNumber)
				continue
			}
			compatible = []QuestionType{fallback}
		}

		qt := compatible[g.rng.IntN(len(compatible))]
		answer := resolveField(entry, qt.AnswerField)
		questions = append(questions, domain.GeneratedQuestion{
			ID:            uuid.NewString(),
			Type:          qt.ID,
			Question:      renderPrompt(entry, qt),
			CorrectAnswer: answer,
			Options:       BuildOptions(answer, pool, qt.OptionsField, OptionCount, g.rng),
		})
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestionsGenerated
	}
	return domain.NewQuiz(cfg, questions), nil
}
