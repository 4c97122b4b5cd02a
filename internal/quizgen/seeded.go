package quizgen

// lcg is the fixed linear congruential generator that drives per-student
// quiz derivation. The recurrence state = state*1664525 + 1013904223
// (mod 2^32) is shared with client implementations in other languages;
// changing any constant breaks reproducibility of already-issued templates.
type lcg struct {
	state uint32
}

func newLCG(seed int) *lcg {
	return &lcg{state: uint32(seed)}
}

// next advances the generator and returns a value in [0, 1).
func (g *lcg) next() float64 {
	g.state = g.state*1664525 + 1013904223
	return float64(g.state) / float64(1<<32)
}

// seededShuffle returns a copy of items permuted by a Fisher-Yates shuffle
// driven by the seeded generator. The input slice is not modified.
func seededShuffle(items []string, seed int) []string {
	out := make([]string, len(items))
	copy(out, items)
	g := newLCG(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := int(g.next() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// studentSeed derives the deterministic seed for a student identifier by
// summing its code points.
func studentSeed(studentID string) int {
	seed := 0
	for _, r := range studentID {
		seed += int(r)
	}
	return seed
}
