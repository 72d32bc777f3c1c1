package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"", false, true},
		{"debug", true, true},
		{"INFO", false, true},
		{"warn", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tc.level)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			logger.Debug("debug line")
			logger.Info("info line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tc.debugSeen {
				t.Errorf("debug logged = %v, expected %v", got, tc.debugSeen)
			}
			if got := strings.Contains(out, "info line"); got != tc.infoSeen {
				t.Errorf("info logged = %v, expected %v", got, tc.infoSeen)
			}
		})
	}
}

func TestNewPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("game started", "seed", 42)

	out := buf.String()
	if !strings.Contains(out, "riverraid") || !strings.Contains(out, "seed=42") {
		t.Errorf("log line = %q, expected prefix and key/value pairs", out)
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("New() with unknown level should fail")
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "game.log")

	logger, closer, err := Open(path, "info")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	logger.Info("hello file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file = %q, expected the message", data)
	}
}

func TestOpenEmptyPathDisablesLogging(t *testing.T) {
	logger, closer, err := Open("", "debug")
	if err != nil {
		t.Fatalf("Open(\"\") error = %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"/tmp/x.log", "/tmp/x.log"},
		{"~/.riverraid/riverraid.log", filepath.Join(home, ".riverraid", "riverraid.log")},
	}
	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) error = %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
