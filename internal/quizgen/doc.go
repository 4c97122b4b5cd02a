// Package quizgen implements the quiz-generation engine: it analyzes which
// vocabulary fields are populated, decides which question types are legal,
// builds multiple-choice option sets, and produces either a one-shot
// randomized quiz or a reproducible template from which per-student quiz
// instances are derived deterministically.
//
// All functions in this package are pure and synchronous. Generators hold no
// shared mutable state, so concurrent invocations never interfere.
package quizgen
