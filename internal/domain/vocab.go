package domain

import "strings"

// FieldName identifies one of the parallel-language fields on a VocabEntry.
// The values double as the JSON keys used by vocabulary books and quiz
// configurations, so they are part of the wire format and must not change.
type FieldName string

const (
	// FieldTranslation is the Nepali translation of the word.
	FieldTranslation FieldName = "np1"

	// FieldKanji is the word in its primary Japanese script.
	FieldKanji FieldName = "jp_kanji"

	// FieldRubi is the phonetic reading of the word.
	FieldRubi FieldName = "jp_rubi"

	// FieldContext is an example sentence with the word blanked out.
	FieldContext FieldName = "jp_context"
)

// FieldNames lists every VocabEntry field in canonical order.
var FieldNames = []FieldName{FieldTranslation, FieldKanji, FieldRubi, FieldContext}

// VocabEntry is a single lexical item from a vocabulary book. Any field may
// be empty; the generators decide what can be asked from what is present.
// Entries are treated as immutable once loaded.
type VocabEntry struct {
	ID           int    `json:"id"`
	LessonNumber int    `json:"ka"`
	Translation  string `json:"np1"`
	Kanji        string `json:"jp_kanji"`
	Rubi         string `json:"jp_rubi"`
	Context      string `json:"jp_context"`
}

// Field returns the raw value of the named field.
// Unknown field names return the empty string.
func (e VocabEntry) Field(name FieldName) string {
	switch name {
	case FieldTranslation:
		return e.Translation
	case FieldKanji:
		return e.Kanji
	case FieldRubi:
		return e.Rubi
	case FieldContext:
		return e.Context
	}
	return ""
}

// HasField reports whether the named field holds a non-whitespace value.
func (e VocabEntry) HasField(name FieldName) bool {
	return strings.TrimSpace(e.Field(name)) != ""
}
