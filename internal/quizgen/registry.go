package quizgen

import "github.com/sabdakosh/quizgen/internal/domain"

// QuestionType describes one question format: which field(s) form the
// prompt, which field holds the correct answer, and which field sources the
// wrong-answer options.
type QuestionType struct {
	ID           domain.QuestionTypeID
	PromptFields []domain.FieldName
	AnswerField  domain.FieldName
	OptionsField domain.FieldName
}

// Question type identifiers. The arrow notation reads "prompt → answer";
// compound prompts join their fields with "+".
const (
	TypeTranslationToKanji    domain.QuestionTypeID = "np1→jp_kanji"
	TypeTranslationToRubi     domain.QuestionTypeID = "np1→jp_rubi"
	TypeKanjiToTranslation    domain.QuestionTypeID = "jp_kanji→np1"
	TypeRubiToTranslation     domain.QuestionTypeID = "jp_rubi→np1"
	TypeKanjiToRubi           domain.QuestionTypeID = "jp_kanji→jp_rubi"
	TypeRubiToKanji           domain.QuestionTypeID = "jp_rubi→jp_kanji"
	TypeCompoundToTranslation domain.QuestionTypeID = "jp_kanji+jp_rubi→np1"
	TypeContextToKanji        domain.QuestionTypeID = "jp_context+np1→jp_kanji"
	TypeContextToRubi         domain.QuestionTypeID = "jp_context+np1→jp_rubi"
)

// DefaultType is the terminal fallback of format resolution: translation
// prompt, primary-script answer.
const DefaultType = TypeTranslationToKanji

// registry lists every question type in canonical order. Compatibility
// filtering preserves this order, and the default type is the first row.
var registry = []QuestionType{
	{
		ID:           TypeTranslationToKanji,
		PromptFields: []domain.FieldName{domain.FieldTranslation},
		AnswerField:  domain.FieldKanji,
		OptionsField: domain.FieldKanji,
	},
	{
		ID:           TypeTranslationToRubi,
		PromptFields: []domain.FieldName{domain.FieldTranslation},
		AnswerField:  domain.FieldRubi,
		OptionsField: domain.FieldRubi,
	},
	{
		ID:           TypeKanjiToTranslation,
		PromptFields: []domain.FieldName{domain.FieldKanji},
		AnswerField:  domain.FieldTranslation,
		OptionsField: domain.FieldTranslation,
	},
	{
		ID:           TypeRubiToTranslation,
		PromptFields: []domain.FieldName{domain.FieldRubi},
		AnswerField:  domain.FieldTranslation,
		OptionsField: domain.FieldTranslation,
	},
	{
		ID:           TypeKanjiToRubi,
		PromptFields: []domain.FieldName{domain.FieldKanji},
		AnswerField:  domain.FieldRubi,
		OptionsField: domain.FieldRubi,
	},
	{
		ID:           TypeRubiToKanji,
		PromptFields: []domain.FieldName{domain.FieldRubi},
		AnswerField:  domain.FieldKanji,
		OptionsField: domain.FieldKanji,
	},
	{
		ID:           TypeCompoundToTranslation,
		PromptFields: []domain.FieldName{domain.FieldKanji, domain.FieldRubi},
		AnswerField:  domain.FieldTranslation,
		OptionsField: domain.FieldTranslation,
	},
	{
		ID:           TypeContextToKanji,
		PromptFields: []domain.FieldName{domain.FieldContext, domain.FieldTranslation},
		AnswerField:  domain.FieldKanji,
		OptionsField: domain.FieldKanji,
	},
	{
		ID:           TypeContextToRubi,
		PromptFields: []domain.FieldName{domain.FieldContext, domain.FieldTranslation},
		AnswerField:  domain.FieldRubi,
		OptionsField: domain.FieldRubi,
	},
}

// Registry returns a copy of the question-type table in canonical order.
func Registry() []QuestionType {
	out := make([]QuestionType, len(registry))
	copy(out, registry)
	return out
}

// LookupType returns the descriptor for the given identifier.
func LookupType(id domain.QuestionTypeID) (QuestionType, bool) {
	for _, t := range registry {
		if t.ID == id {
			return t, true
		}
	}
	return QuestionType{}, false
}

// ResolveFormat maps a user-facing question format to a question type.
// Rules are applied in priority order:
//
//  1. Two distinct inputs, one of them the contextual-sentence field:
//     the fill-in-blank compound type for the given output.
//  2. Two distinct non-contextual inputs: the matching compound type.
//  3. One input: the single-field type for (input → output).
//  4. Otherwise the default type (translation → primary script).
//
// Resolution never fails; rule 4 is a deliberate terminal fallback. Callers
// that need the resolved type to actually be answerable must additionally
// check it against CompatibleTypes for their pool.
func ResolveFormat(f domain.QuestionFormat) domain.QuestionTypeID {
	in1, in2 := f.Input1, f.Input2

	if in1 != "" && in2 != "" && in1 != in2 {
		// Rules 1 and 2 share the same registry lookup: fill-in-blank
		// types are simply the compound types whose prompt includes the
		// contextual-sentence field.
		if t, ok := findCompoundType(in1, in2, f.Output); ok {
			return t.ID
		}
		return DefaultType
	}

	single := in1
	if single == "" {
		single = in2
	}
	if single != "" {
		if t, ok := findSingleType(single, f.Output); ok {
			return t.ID
		}
	}
	return DefaultType
}

// findSingleType finds the registry type with exactly the given prompt field
// and answer field.
func findSingleType(prompt, answer domain.FieldName) (QuestionType, bool) {
	for _, t := range registry {
		if len(t.PromptFields) == 1 && t.PromptFields[0] == prompt && t.AnswerField == answer {
			return t, true
		}
	}
	return QuestionType{}, false
}

// findCompoundType finds the registry type whose two prompt fields equal the
// given pair in either order, with the given answer field.
func findCompoundType(in1, in2, answer domain.FieldName) (QuestionType, bool) {
	for _, t := range registry {
		if len(t.PromptFields) != 2 || t.AnswerField != answer {
			continue
		}
		a, b := t.PromptFields[0], t.PromptFields[1]
		if (a == in1 && b == in2) || (a == in2 && b == in1) {
			return t, true
		}
	}
	return QuestionType{}, false
}

// requiredFields returns every distinct field the type reads: prompts,
// answer and options source.
func (t QuestionType) requiredFields() []domain.FieldName {
	fields := make([]domain.FieldName, 0, len(t.PromptFields)+2)
	seen := make(map[domain.FieldName]bool)
	for _, f := range append(append([]domain.FieldName{}, t.PromptFields...), t.AnswerField, t.OptionsField) {
		if !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}
	return fields
}
