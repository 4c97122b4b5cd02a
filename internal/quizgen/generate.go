package quizgen

import (
	"fmt"
	"strings"

	"github.com/sabdakosh/quizgen/internal/domain"
)

// filterByLessonRange returns the entries whose lesson number falls inside
// the range, in pool order. The pool itself is never modified.
func filterByLessonRange(pool []domain.VocabEntry, r domain.LessonRange) []domain.VocabEntry {
	var filtered []domain.VocabEntry
	for _, e := range pool {
		if r.Contains(e.LessonNumber) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// entrySupports reports whether this entry alone can pose and answer a
// question of the given type: every prompt field is populated and the answer
// field resolves to a non-empty value (fallback substitution included).
func entrySupports(e domain.VocabEntry, t QuestionType) bool {
	for _, f := range t.PromptFields {
		if !e.HasField(f) {
			return false
		}
	}
	return resolveField(e, t.AnswerField) != ""
}

// compatibleTypesForEntry returns the enabled question types this entry
// supports, preserving registry order.
func compatibleTypesForEntry(
	e domain.VocabEntry,
	enabled []domain.QuestionTypeID,
) []QuestionType {
	enabledSet := make(map[domain.QuestionTypeID]bool, len(enabled))
	for _, id := range enabled {
		enabledSet[id] = true
	}

	var compatible []QuestionType
	for _, t := range registry {
		if enabledSet[t.ID] && entrySupports(e, t) {
			compatible = append(compatible, t)
		}
	}
	return compatible
}

// renderPrompt builds the question text for an entry and type. A single
// prompt field is rendered verbatim. A context-sentence + translation pair
// renders sentence first with the translation on a 意味 line; any other
// two-field prompt joins in descriptor order with " / ".
func renderPrompt(e domain.VocabEntry, t QuestionType) string {
	if len(t.PromptFields) == 1 {
		return strings.TrimSpace(e.Field(t.PromptFields[0]))
	}

	f1, f2 := t.PromptFields[0], t.PromptFields[1]
	v1 := strings.TrimSpace(e.Field(f1))
	v2 := strings.TrimSpace(e.Field(f2))

	if f1 == domain.FieldContext && f2 == domain.FieldTranslation {
		return fmt.Sprintf("%s\n\n意味：%s", v1, v2)
	}
	if f1 == domain.FieldTranslation && f2 == domain.FieldContext {
		return fmt.Sprintf("%s\n\n意味：%s", v2, v1)
	}
	return v1 + " / " + v2
}
