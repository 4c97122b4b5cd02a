package quizgen

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sabdakosh/quizgen/internal/domain"
)

// testLogger returns a logger that swallows output; generation warnings are
// noise in test runs.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fullPool builds n entries in lesson 1 with all fields populated and
// distinct values per field.
func fullPool(n int) []domain.VocabEntry {
	entries := make([]domain.VocabEntry, 0, n)
	for i := 1; i <= n; i++ {
		entries = append(entries, domain.VocabEntry{
			ID:           i,
			LessonNumber: 1,
			Translation:  fmt.Sprintf("N%d", i),
			Kanji:        fmt.Sprintf("K%d", i),
			Rubi:         fmt.Sprintf("R%d", i),
			Context:      fmt.Sprintf("＿＿ C%d", i),
		})
	}
	return entries
}

// countOf returns how many times value appears in options.
func countOf(options []string, value string) int {
	n := 0
	for _, o := range options {
		if o == value {
			n++
		}
	}
	return n
}
