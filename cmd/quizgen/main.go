// Command quizgen generates a randomized vocabulary quiz from a vocabulary
// book JSON file and prints it as JSON. It is developer tooling for
// inspecting generator output; there is no serving surface here.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/sabdakosh/quizgen/internal/config"
	"github.com/sabdakosh/quizgen/internal/domain"
	"github.com/sabdakosh/quizgen/internal/platform/logger"
	"github.com/sabdakosh/quizgen/internal/quizgen"
)

func main() {
	if err := run(); err != nil {
		slog.Error("quizgen failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Log)
	log.Info("configuration loaded",
		"book_id", cfg.Quiz.BookID,
		"vocab_file", cfg.Quiz.VocabFile,
		"question_count", cfg.Quiz.QuestionCount)

	entries, err := loadVocabulary(cfg.Quiz.VocabFile)
	if err != nil {
		return err
	}

	report := quizgen.Analyze(entries)
	log.Info("vocabulary analyzed",
		"entries", report.EntryCount,
		"field_counts", report.FieldCounts)
	for typeID, missing := range report.MissingFields {
		log.Debug("question type unavailable for this book",
			"type", typeID,
			"missing_fields", missing)
	}

	compatible := quizgen.CompatibleTypes(quizgen.AvailableFields(entries))
	enabled := make([]domain.QuestionTypeID, 0, len(compatible))
	for _, t := range compatible {
		enabled = append(enabled, t.ID)
	}

	quiz, err := quizgen.NewAdHocGenerator(log).Generate(entries, domain.QuizConfig{
		BookID: cfg.Quiz.BookID,
		LessonRange: domain.LessonRange{
			Start: cfg.Quiz.LessonStart,
			End:   cfg.Quiz.LessonEnd,
		},
		QuestionCount: cfg.Quiz.QuestionCount,
		EnabledTypes:  enabled,
	})
	if err != nil {
		return fmt.Errorf("failed to generate quiz: %w", err)
	}

	out, err := json.MarshalIndent(quiz, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode quiz: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// loadVocabulary reads a vocabulary book: a JSON array of entries.
func loadVocabulary(path string) ([]domain.VocabEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var entries []domain.VocabEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %q: %w", path, err)
	}
	return entries, nil
}
