// Package config loads the game configuration from YAML or TOML.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Config is the user-tunable part of a run.
// Gameplay rules are fixed and not part of it.
type Config struct {
	TickMs int               `yaml:"tick_ms" toml:"tick_ms"`
	PollMs int               `yaml:"poll_ms" toml:"poll_ms"`
	Theme  string            `yaml:"theme" toml:"theme"`
	Glyphs map[string]string `yaml:"glyphs" toml:"glyphs"`
	Sound  bool              `yaml:"sound" toml:"sound"`
	Log    LogConfig         `yaml:"log" toml:"log"`

	// Source is where the config was read from; empty for the built-in default.
	Source string `yaml:"-" toml:"-"`
}

// LogConfig selects the log file and level.
type LogConfig struct {
	File  string `yaml:"file" toml:"file"`
	Level string `yaml:"level" toml:"level"`
}

// Tick returns the tick period.
func (c Config) Tick() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// PollTimeout returns the per-tick input wait.
func (c Config) PollTimeout() time.Duration {
	return time.Duration(c.PollMs) * time.Millisecond
}

// Validate checks value ranges and glyph overrides.
func (c Config) Validate() error {
	if c.TickMs <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.TickMs)
	}
	if c.PollMs < 0 || c.PollMs > c.TickMs {
		return fmt.Errorf("config: poll_ms must be between 0 and tick_ms (%d), got %d", c.TickMs, c.PollMs)
	}
	for name, g := range c.Glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: glyph %q must be a single character, got %q", name, g)
		}
	}
	return nil
}

// GlyphRunes returns the glyph overrides as runes.
// Call Validate first; entries that are not a single character are skipped.
func (c Config) GlyphRunes() map[string]rune {
	out := make(map[string]rune, len(c.Glyphs))
	for name, g := range c.Glyphs {
		r, size := utf8.DecodeRuneInString(g)
		if r == utf8.RuneError || size != len(g) {
			continue
		}
		out[name] = r
	}
	return out
}
