package quizgen

import (
	"testing"

	"github.com/sabdakosh/quizgen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adhocConfig(types ...domain.QuestionTypeID) domain.QuizConfig {
	return domain.QuizConfig{
		BookID:        "minna-no-nihongo-1",
		LessonRange:   domain.LessonRange{Start: 1, End: 1},
		QuestionCount: 2,
		EnabledTypes:  types,
	}
}

func newTestAdHocGenerator() *AdHocGenerator {
	return NewAdHocGeneratorWithRand(testRand(), testLogger())
}

func TestAdHocGenerateScenario(t *testing.T) {
	t.Parallel()

	pool := []domain.VocabEntry{
		{ID: 1, LessonNumber: 1, Translation: "पानी", Kanji: "水", Rubi: "みず"},
		{ID: 2, LessonNumber: 1, Translation: "आगो", Kanji: "火", Rubi: "ひ"},
	}

	quiz, err := newTestAdHocGenerator().Generate(pool, adhocConfig(TypeTranslationToKanji))
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, 2, quiz.Config.QuestionCount)

	for _, q := range quiz.Questions {
		assert.Equal(t, TypeTranslationToKanji, q.Type)
		assert.LessOrEqual(t, len(q.Options), OptionCount)
		assert.Equal(t, 1, countOf(q.Options, q.CorrectAnswer),
			"correct answer must appear exactly once in %v", q.Options)
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Question)
	}
}

func TestAdHocGenerateEmptyRange(t *testing.T) {
	t.Parallel()

	t.Run("empty pool", func(t *testing.T) {
		t.Parallel()
		_, err := newTestAdHocGenerator().Generate(nil, adhocConfig(TypeTranslationToKanji))
		assert.ErrorIs(t, err, ErrEmptyRange)
	})

	t.Run("no entry in range", func(t *testing.T) {
		t.Parallel()
		pool := []domain.VocabEntry{
			{ID: 1, LessonNumber: 9, Translation: "पानी", Kanji: "水"},
		}
		_, err := newTestAdHocGenerator().Generate(pool, adhocConfig(TypeTranslationToKanji))
		assert.ErrorIs(t, err, ErrEmptyRange)
	})
}

func TestAdHocGenerateNoQuestions(t *testing.T) {
	t.Parallel()

	// Entries without translations support neither the enabled type nor the
	// last-resort translation→reading fallback.
	pool := []domain.VocabEntry{
		{ID: 1, LessonNumber: 1, Kanji: "水"},
		{ID: 2, LessonNumber: 1, Kanji: "火"},
	}
	_, err := newTestAdHocGenerator().Generate(pool, adhocConfig(TypeTranslationToKanji))
	assert.ErrorIs(t, err, ErrNoQuestionsGenerated)
}

func TestAdHocGenerateInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := adhocConfig(TypeTranslationToKanji)
	cfg.QuestionCount = 0
	_, err := newTestAdHocGenerator().Generate(fullPool(3), cfg)
	assert.ErrorIs(t, err, domain.ErrQuestionCountInvalid)
}

func TestAdHocGenerateFewerEntriesThanRequested(t *testing.T) {
	t.Parallel()

	cfg := adhocConfig(TypeTranslationToKanji)
	cfg.QuestionCount = 10

	quiz, err := newTestAdHocGenerator().Generate(fullPool(3), cfg)
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 3)
	assert.Equal(t, 3, quiz.Config.QuestionCount, "count corrected to actual")
}

func TestAdHocGenerateAnswerFallback(t *testing.T) {
	t.Parallel()

	// Kanji is empty but the reading is present: the entry still supports a
	// kanji-answer type, resolving to the reading.
	pool := []domain.VocabEntry{
		{ID: 1, LessonNumber: 1, Translation: "पानी", Rubi: "みず"},
		{ID: 2, LessonNumber: 1, Translation: "आगो", Kanji: "火"},
	}
	cfg := adhocConfig(TypeTranslationToKanji)

	quiz, err := newTestAdHocGenerator().Generate(pool, cfg)
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 2)

	for _, q := range quiz.Questions {
		assert.NotEmpty(t, q.CorrectAnswer)
		if q.Question == "पानी" {
			assert.Equal(t, "みず", q.CorrectAnswer,
				"empty kanji must resolve to the reading, not an empty string")
		}
		assert.Equal(t, 1, countOf(q.Options, q.CorrectAnswer))
	}
}

func TestAdHocGenerateLastResortFallback(t *testing.T) {
	t.Parallel()

	// The only enabled type needs a context sentence the entries lack, but
	// translation and reading are present, so the generator falls back to
	// translation→reading instead of skipping.
	pool := []domain.VocabEntry{
		{ID: 1, LessonNumber: 1, Translation: "पानी", Rubi: "みず"},
		{ID: 2, LessonNumber: 1, Translation: "आगो", Rubi: "ひ"},
	}
	quiz, err := newTestAdHocGenerator().Generate(pool, adhocConfig(TypeContextToKanji))
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 2)

	for _, q := range quiz.Questions {
		assert.Equal(t, TypeTranslationToRubi, q.Type)
	}
}

func TestAdHocGenerateSkipsIncompatibleEntries(t *testing.T) {
	t.Parallel()

	// One entry has no reading and no translation prompt value for the
	// enabled type; it is skipped while the rest still produce questions.
	pool := []domain.VocabEntry{
		{ID: 1, LessonNumber: 1, Translation: "पानी", Rubi: "みず"},
		{ID: 2, LessonNumber: 1, Kanji: "火"},
		{ID: 3, LessonNumber: 1, Translation: "रूख", Rubi: "き"},
	}
	cfg := adhocConfig(TypeTranslationToRubi)
	cfg.QuestionCount = 3

	quiz, err := newTestAdHocGenerator().Generate(pool, cfg)
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 2)
	assert.Equal(t, 2, quiz.Config.QuestionCount)
}

func TestAdHocGenerateCompoundPrompts(t *testing.T) {
	t.Parallel()

	pool := []domain.VocabEntry{
		{
			ID: 1, LessonNumber: 1,
			Translation: "पानी", Kanji: "水", Rubi: "みず",
			Context: "＿＿を ください。",
		},
		{
			ID: 2, LessonNumber: 1,
			Translation: "आगो", Kanji: "火", Rubi: "ひ",
			Context: "＿＿に きをつけて。",
		},
	}

	t.Run("context plus translation renders sentence first with 意味 line", func(t *testing.T) {
		t.Parallel()
		cfg := adhocConfig(TypeContextToKanji)
		quiz, err := newTestAdHocGenerator().Generate(pool, cfg)
		require.NoError(t, err)

		for _, q := range quiz.Questions {
			if q.CorrectAnswer == "水" {
				assert.Equal(t, "＿＿を ください。\n\n意味：पानी", q.Question)
			}
		}
	})

	t.Run("other compounds join with slash in descriptor order", func(t *testing.T) {
		t.Parallel()
		cfg := adhocConfig(TypeCompoundToTranslation)
		quiz, err := newTestAdHocGenerator().Generate(pool, cfg)
		require.NoError(t, err)

		for _, q := range quiz.Questions {
			if q.CorrectAnswer == "पानी" {
				assert.Equal(t, "水 / みず", q.Question)
			}
		}
	})
}
