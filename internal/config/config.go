// Package config loads clozeiz settings from defaults, an optional YAML
// file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/clozeiz/internal/history"
	"github.com/abhisek/clozeiz/internal/quizgen"
)

// Environment variables consulted by ApplyEnv and DefaultPath.
const (
	EnvConfig     = "CLOZEIZ_CONFIG"
	EnvLogLevel   = "CLOZEIZ_LOG_LEVEL"
	EnvLogFile    = "CLOZEIZ_LOG_FILE"
	EnvHistoryCap = "CLOZEIZ_HISTORY_CAP"
)

// DefaultMaxContentChars is the longest content the UI and the generate
// command accept.
const DefaultMaxContentChars = 2500

// Config is the full application configuration.
type Config struct {
	Engine  quizgen.Config `yaml:"engine"`
	History HistoryConfig  `yaml:"history"`
	App     AppConfig      `yaml:"app"`
	Log     LogConfig      `yaml:"log"`
}

// HistoryConfig sizes the fingerprint tracker.
type HistoryConfig struct {
	Capacity int `yaml:"capacity"`
}

// AppConfig holds presentation limits.
type AppConfig struct {
	MaxContentChars int `yaml:"max_content_chars"`
}

// LogConfig selects the log level and an optional log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine:  quizgen.DefaultConfig(),
		History: HistoryConfig{Capacity: history.DefaultCapacity},
		App:     AppConfig{MaxContentChars: DefaultMaxContentChars},
		Log:     LogConfig{Level: "warn"},
	}
}

// DefaultPath returns the config path named by CLOZEIZ_CONFIG, if any.
func DefaultPath() string {
	return os.Getenv(EnvConfig)
}

// Load builds a Config from defaults, the YAML file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		defer f.Close()
		if err := Decode(f, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := ApplyEnv(&cfg, os.Getenv); err != nil {
		return Config{}, err
	}
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode overlays YAML from r onto cfg. Unknown keys are rejected and an
// empty document leaves cfg untouched.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides cfg with values from getenv. Unset or empty
// variables are ignored.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(getenv(EnvLogFile)); v != "" {
		cfg.Log.File = v
	}
	if v := strings.TrimSpace(getenv(EnvHistoryCap)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", EnvHistoryCap, v)
		}
		cfg.History.Capacity = n
	}
	return nil
}

// Validate reports every out-of-range field in a single joined error.
func Validate(cfg *Config) error {
	var errs []error
	positive := func(field string, v int) {
		if v < 1 {
			errs = append(errs, fmt.Errorf("%s: must be positive, got %d", field, v))
		}
	}

	e := cfg.Engine
	positive("engine.min_sentence_length", e.MinSentenceLength)
	positive("engine.min_sentences", e.MinSentences)
	positive("engine.max_sentences", e.MaxSentences)
	positive("engine.attempts_per_sentence", e.AttemptsPerSentence)
	positive("engine.min_tokens_per_sentence", e.MinTokensPerSentence)
	positive("engine.max_questions", e.MaxQuestions)
	positive("history.capacity", cfg.History.Capacity)
	positive("app.max_content_chars", cfg.App.MaxContentChars)

	if e.MaxSentences < e.MinSentences {
		errs = append(errs, fmt.Errorf("engine.max_sentences: %d is below min_sentences %d", e.MaxSentences, e.MinSentences))
	}
	if e.OptionCount < 2 {
		errs = append(errs, fmt.Errorf("engine.option_count: need at least 2 options, got %d", e.OptionCount))
	}
	if e.MaxLengthDelta < 0 {
		errs = append(errs, fmt.Errorf("engine.max_length_delta: must not be negative, got %d", e.MaxLengthDelta))
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "error", "off":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", cfg.Log.Level))
	}

	return errors.Join(errs...)
}

// ErrEmptyContent is returned by CheckContent for blank input.
var ErrEmptyContent = errors.New("content is empty")

// ContentTooLongError is returned by CheckContent when the input exceeds
// MaxContentChars.
type ContentTooLongError struct {
	Length int
	Limit  int
}

func (e *ContentTooLongError) Error() string {
	return fmt.Sprintf("content is %d characters, the limit is %d", e.Length, e.Limit)
}

// CheckContent applies the presentation limits to quiz input. The engine
// itself accepts any text.
func (a AppConfig) CheckContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if n := utf8.RuneCountInString(content); a.MaxContentChars > 0 && n > a.MaxContentChars {
		return &ContentTooLongError{Length: n, Limit: a.MaxContentChars}
	}
	return nil
}
