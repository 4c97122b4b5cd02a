// Package config loads and validates application configuration from
// environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by Load, e.g.
// QUIZGEN_LOG_LEVEL overrides log.level.
const envPrefix = "QUIZGEN"

// Load reads configuration from an optional quizgen.yaml in the working
// directory and from QUIZGEN_-prefixed environment variables. Environment
// variables take precedence over file values, which take precedence over
// defaults. Returns a validated Config or an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("quiz.book_id", "minna-no-nihongo-1")
	v.SetDefault("quiz.question_count", 10)
	v.SetDefault("quiz.lesson_start", 1)
	v.SetDefault("quiz.lesson_end", 25)
	v.SetDefault("quiz.vocab_file", "vocab.json")

	v.SetConfigName("quizgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env cover it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
