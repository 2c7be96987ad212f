package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_Off(t *testing.T) {
	l, err := New("off", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Info("discarded")
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", ""); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clozeiz.log")
	l, err := New("debug", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.With("fingerprint", "42").Debug("quiz generated", "published", 5)
	l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"quiz generated", "fingerprint", "published"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clozeiz.log")
	l, err := New("error", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Info("hidden")
	l.Error("shown")
	l.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info message should be filtered at error level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("error message should be written")
	}
}
