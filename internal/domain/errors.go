// Package domain defines the core entities of the quiz engine and their
// validation rules.
package domain

import "errors"

// Common domain validation errors.
var (
	// ErrLessonRangeInvalid is returned when a lesson range has a start
	// greater than its end or a non-positive bound.
	ErrLessonRangeInvalid = errors.New("lesson range is invalid")

	// ErrQuestionCountInvalid is returned when the requested question count
	// is zero or negative.
	ErrQuestionCountInvalid = errors.New("question count must be positive")

	// ErrNoEnabledTypes is returned when a quiz config enables no question
	// types at all.
	ErrNoEnabledTypes = errors.New("at least one question type must be enabled")

	// ErrTemplateNameEmpty is returned when a quiz template is created
	// without a name.
	ErrTemplateNameEmpty = errors.New("template name cannot be empty")

	// ErrTemplateNoQuestions is returned when a quiz template is created
	// with an empty question list.
	ErrTemplateNoQuestions = errors.New("template must contain at least one question")

	// ErrStudentIDEmpty is returned when a quiz instance is requested for an
	// empty student identifier.
	ErrStudentIDEmpty = errors.New("student ID cannot be empty")
)
