package quizgen

import "github.com/sabdakosh/quizgen/internal/domain"

// FieldSet is the set of vocabulary fields considered available in a pool.
type FieldSet map[domain.FieldName]bool

// AvailableFields reports which fields are available across the pool. A
// field is available if at least one entry holds a non-empty, non-whitespace
// value for it. An empty pool yields an empty set.
func AvailableFields(entries []domain.VocabEntry) FieldSet {
	available := make(FieldSet)
	for _, e := range entries {
		for _, f := range domain.FieldNames {
			if e.HasField(f) {
				available[f] = true
			}
		}
	}
	return available
}

// CompatibleTypes returns the registry subset whose prompt, answer and
// options fields are all available, preserving registry order.
func CompatibleTypes(available FieldSet) []QuestionType {
	var compatible []QuestionType
	for _, t := range registry {
		if typeAvailable(t, available) {
			compatible = append(compatible, t)
		}
	}
	return compatible
}

func typeAvailable(t QuestionType, available FieldSet) bool {
	for _, f := range t.requiredFields() {
		if !available[f] {
			return false
		}
	}
	return true
}

// AvailabilityReport describes how well a vocabulary pool covers the
// question-type registry. It is informational: generation never consults it,
// callers use it for user-facing warnings.
type AvailabilityReport struct {
	// EntryCount is the size of the analyzed pool.
	EntryCount int `json:"entry_count"`

	// FieldCounts holds, per field, how many entries populate it.
	FieldCounts map[domain.FieldName]int `json:"field_counts"`

	// MissingFields lists, for each incompatible question type, the fields
	// it needs that no entry provides. Compatible types do not appear.
	MissingFields map[domain.QuestionTypeID][]domain.FieldName `json:"missing_fields"`
}

// Analyze builds an AvailabilityReport for the pool.
func Analyze(entries []domain.VocabEntry) *AvailabilityReport {
	report := &AvailabilityReport{
		EntryCount:    len(entries),
		FieldCounts:   make(map[domain.FieldName]int),
		MissingFields: make(map[domain.QuestionTypeID][]domain.FieldName),
	}

	for _, f := range domain.FieldNames {
		report.FieldCounts[f] = 0
	}
	for _, e := range entries {
		for _, f := range domain.FieldNames {
			if e.HasField(f) {
				report.FieldCounts[f]++
			}
		}
	}

	available := AvailableFields(entries)
	for _, t := range registry {
		var missing []domain.FieldName
		for _, f := range t.requiredFields() {
			if !available[f] {
				missing = append(missing, f)
			}
		}
		if len(missing) > 0 {
			report.MissingFields[t.ID] = missing
		}
	}
	return report
}
