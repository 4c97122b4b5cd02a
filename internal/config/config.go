package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log  LogConfig       `mapstructure:"log"  validate:"required"`
	Quiz GeneratorConfig `mapstructure:"quiz" validate:"required"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// GeneratorConfig contains the defaults the CLI feeds into quiz generation.
type GeneratorConfig struct {
	BookID        string `mapstructure:"book_id"        validate:"required"`
	QuestionCount int    `mapstructure:"question_count" validate:"required,gt=0,lte=100"`
	LessonStart   int    `mapstructure:"lesson_start"   validate:"required,gt=0"`
	LessonEnd     int    `mapstructure:"lesson_end"     validate:"required,gtefield=LessonStart"`
	VocabFile     string `mapstructure:"vocab_file"     validate:"required"`
}
