package config

import (
	_ "embed"
)

//go:embed defaults/riverraid.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickMs: 100,
		PollMs: 10,
		Theme:  "classic",
		Glyphs: map[string]string{},
		Log: LogConfig{
			File:  "~/.riverraid/riverraid.log",
			Level: "info",
		},
	}
}
