package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestDurations(t *testing.T) {
	cfg := Default()
	if cfg.Tick() != 100*time.Millisecond {
		t.Errorf("Tick() = %v, expected 100ms", cfg.Tick())
	}
	if cfg.PollTimeout() != 10*time.Millisecond {
		t.Errorf("PollTimeout() = %v, expected 10ms", cfg.PollTimeout())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		data    string
		check   func(t *testing.T, cfg Config)
		wantErr string
	}{
		{
			name:   "yaml overrides keep other defaults",
			format: FormatYAML,
			data:   "tick_ms: 60\ntheme: neon\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.TickMs != 60 || cfg.Theme != "neon" {
					t.Errorf("got tick_ms=%d theme=%q", cfg.TickMs, cfg.Theme)
				}
				if cfg.PollMs != 10 || cfg.Log.Level != "info" {
					t.Errorf("defaults lost: %+v", cfg)
				}
			},
		},
		{
			name:   "empty yaml",
			format: FormatYAML,
			data:   "",
			check: func(t *testing.T, cfg Config) {
				if !reflect.DeepEqual(cfg, Default()) {
					t.Errorf("got %+v, expected defaults", cfg)
				}
			},
		},
		{
			name:   "toml",
			format: FormatTOML,
			data:   "tick_ms = 80\nsound = true\n\n[glyphs]\nplayer = \"A\"\n\n[log]\nlevel = \"debug\"\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.TickMs != 80 || !cfg.Sound || cfg.Log.Level != "debug" {
					t.Errorf("got %+v", cfg)
				}
				if cfg.Glyphs["player"] != "A" {
					t.Errorf("glyphs = %v, expected player=A", cfg.Glyphs)
				}
			},
		},
		{"unknown yaml key", FormatYAML, "speed: 3\n", nil, "speed"},
		{"unknown toml key", FormatTOML, "speed = 3\n", nil, "unknown keys: speed"},
		{"zero tick", FormatYAML, "tick_ms: 0\n", nil, "tick_ms must be positive"},
		{"poll longer than tick", FormatYAML, "tick_ms: 10\npoll_ms: 20\n", nil, "poll_ms"},
		{"long glyph", FormatYAML, "glyphs:\n  bank: \"##\"\n", nil, "single character"},
		{"broken yaml", FormatYAML, "tick_ms: [\n", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.data), tc.format)
			if tc.check == nil {
				if err == nil {
					t.Fatal("Parse() expected an error")
				}
				if !strings.Contains(err.Error(), tc.wantErr) {
					t.Errorf("Parse() error = %v, expected it to mention %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestGlyphRunes(t *testing.T) {
	cfg := Default()
	cfg.Glyphs = map[string]string{"bank": "█", "player": "A", "enemy": "xx"}

	got := cfg.GlyphRunes()
	expected := map[string]rune{"bank": '█', "player": 'A'}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("GlyphRunes() = %v, expected %v", got, expected)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"/etc/riverraid.TOML", FormatTOML},
		{"noext", FormatYAML},
	}
	for _, tc := range tests {
		if got := FormatForPath(tc.path); got != tc.expected {
			t.Errorf("FormatForPath(%q) = %v, expected %v", tc.path, got, tc.expected)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("TOML"); err != nil || f != FormatTOML {
		t.Errorf("ParseFormat(TOML) = (%v, %v), expected toml", f, err)
	}
	if _, err := ParseFormat("json"); err == nil {
		t.Error("ParseFormat(json) should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	t.Run("embedded default", func(t *testing.T) {
		isolate(t)
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Source != "" || cfg.TickMs != 100 {
			t.Errorf("Load() = %+v, expected the embedded default", cfg)
		}
	})

	t.Run("local configs directory", func(t *testing.T) {
		_, work := isolate(t)
		writeFile(t, filepath.Join(work, "configs", "riverraid.yaml"), "tick_ms: 70\n")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.TickMs != 70 {
			t.Errorf("TickMs = %d, expected 70 from ./configs", cfg.TickMs)
		}
	})

	t.Run("user config wins over local", func(t *testing.T) {
		home, work := isolate(t)
		writeFile(t, filepath.Join(work, "configs", "riverraid.yaml"), "tick_ms: 70\n")
		writeFile(t, filepath.Join(home, ".riverraid", "config.yaml"), "tick_ms: 50\n")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.TickMs != 50 {
			t.Errorf("TickMs = %d, expected 50 from the user config", cfg.TickMs)
		}
	})

	t.Run("broken user config is skipped", func(t *testing.T) {
		home, _ := isolate(t)
		writeFile(t, filepath.Join(home, ".riverraid", "config.yaml"), "tick_ms: -1\n")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.TickMs != 100 {
			t.Errorf("TickMs = %d, expected the default", cfg.TickMs)
		}
	})

	t.Run("custom path wins", func(t *testing.T) {
		home, work := isolate(t)
		writeFile(t, filepath.Join(home, ".riverraid", "config.yaml"), "tick_ms: 50\n")
		custom := filepath.Join(work, "mine.toml")
		writeFile(t, custom, "tick_ms = 40\n")

		cfg, err := Load(custom)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.TickMs != 40 || cfg.Source != custom {
			t.Errorf("Load() = %+v, expected tick_ms 40 from %s", cfg, custom)
		}
	})
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load("missing.yaml"); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	writeFile(t, "bad.yaml", "tick_ms: nope\n")
	if _, err := Load("bad.yaml"); err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("Load() error = %v, expected it to name the file", err)
	}
}

func TestEncodeTOMLIsLoadable(t *testing.T) {
	cfg := Default()
	cfg.TickMs = 90
	cfg.Glyphs = map[string]string{"fuel": "⛽"}

	var buf bytes.Buffer
	if err := Encode(&buf, cfg, FormatTOML); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Parse(buf.Bytes(), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("Parse(Encode()) = %+v, expected %+v", got, cfg)
	}
}
