package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clozeiz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(&cfg))
	assert.Equal(t, 10, cfg.History.Capacity)
	assert.Equal(t, 2500, cfg.App.MaxContentChars)
	assert.Equal(t, 5, cfg.Engine.MaxQuestions)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvHistoryCap, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvHistoryCap, "")
	path := writeConfig(t, `
engine:
  max_questions: 3
history:
  capacity: 4
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Engine.MaxQuestions)
	assert.Equal(t, 5, cfg.Engine.OptionCount, "unset fields keep defaults")
	assert.Equal(t, 4, cfg.History.Capacity)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Setenv(EnvHistoryCap, "")
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default().Engine, cfg.Engine)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "engine:\n  max_question: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_question")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvHistoryCap, "7")
	path := writeConfig(t, "log:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 7, cfg.History.Capacity)
}

func TestApplyEnv_BadHistoryCap(t *testing.T) {
	cfg := Default()
	env := map[string]string{EnvHistoryCap: "ten"}
	err := ApplyEnv(&cfg, func(k string) string { return env[k] })
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvHistoryCap)
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.Engine.MaxQuestions = 0
	cfg.Engine.OptionCount = 1
	cfg.History.Capacity = -1
	cfg.Log.Level = "loud"

	err := Validate(&cfg)
	require.Error(t, err)
	msg := err.Error()
	for _, field := range []string{"engine.max_questions", "engine.option_count", "history.capacity", "log.level"} {
		assert.True(t, strings.Contains(msg, field), "missing %s in %q", field, msg)
	}
}

func TestValidate_SentenceBounds(t *testing.T) {
	cfg := Default()
	cfg.Engine.MaxSentences = 2
	err := Validate(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine.max_sentences")
}

func TestCheckContent(t *testing.T) {
	app := AppConfig{MaxContentChars: 10}

	assert.ErrorIs(t, app.CheckContent(""), ErrEmptyContent)
	assert.ErrorIs(t, app.CheckContent(" \n\t "), ErrEmptyContent)
	assert.NoError(t, app.CheckContent("ünïcödé ok"), "10 runes is within the limit")

	err := app.CheckContent("eleven char")
	var tooLong *ContentTooLongError
	require.True(t, errors.As(err, &tooLong))
	assert.Equal(t, 11, tooLong.Length)
	assert.Equal(t, 10, tooLong.Limit)
}
