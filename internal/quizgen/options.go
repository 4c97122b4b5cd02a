package quizgen

import (
	"math/rand/v2"
	"strings"

	"github.com/sabdakosh/quizgen/internal/domain"
)

// OptionCount is the number of choices in a generated question.
const OptionCount = 4

// resolveField returns the entry's value for the field, applying fallback
// substitution: when the primary-script field is empty but the phonetic
// reading is not, the reading stands in for the script. The result is
// whitespace-trimmed; an unanswerable field resolves to "".
func resolveField(e domain.VocabEntry, field domain.FieldName) string {
	v := strings.TrimSpace(e.Field(field))
	if v == "" && field == domain.FieldKanji {
		v = strings.TrimSpace(e.Field(domain.FieldRubi))
	}
	return v
}

// BuildOptions assembles a multiple-choice option set for the given correct
// answer. Distractors are drawn from the pool's values of the options field
// (with fallback substitution), de-duplicated first-occurrence-wins, and
// never equal to the correct answer or empty.
//
// If the pool holds fewer than count-1 distinct distractors the returned set
// is smaller than count; it always contains the correct answer exactly once.
// A short set is never an error at this layer.
func BuildOptions(
	correct string,
	pool []domain.VocabEntry,
	field domain.FieldName,
	count int,
	rng *rand.Rand,
) []string {
	seen := map[string]bool{correct: true}
	var candidates []string
	for _, e := range pool {
		v := resolveField(e, field)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		candidates = append(candidates, v)
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > count-1 {
		candidates = candidates[:count-1]
	}

	options := append([]string{correct}, candidates...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
