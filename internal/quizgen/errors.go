package quizgen

import "errors"

// Common errors returned by the quiz generators.
var (
	// ErrEmptyRange is returned when the lesson-range filter matches no
	// vocabulary entries.
	ErrEmptyRange = errors.New("no vocabulary entries in the requested lesson range")

	// ErrNoQuestionsGenerated is returned when every selected entry was
	// incompatible with all enabled question types.
	ErrNoQuestionsGenerated = errors.New("no questions could be generated from the selected entries")

	// ErrNilTemplate is returned when a quiz instance is requested from a
	// nil template.
	ErrNilTemplate = errors.New("quiz template cannot be nil")
)
