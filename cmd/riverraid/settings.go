package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-riverraid/internal/config"
	"github.com/vovakirdan/tui-riverraid/internal/core"
	"github.com/vovakirdan/tui-riverraid/internal/games/riverraid"
	"github.com/vovakirdan/tui-riverraid/internal/registry"
)

// settings is the config file merged with the command line.
type settings struct {
	cfg   config.Config
	theme riverraid.Theme
	seed  int64
}

// loadSettings reads the config and applies the flags the user set.
func loadSettings(cmd *cobra.Command) (settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = flagTheme
	}
	if flags.Changed("sound") {
		cfg.Sound = flagSound
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	th, err := registry.Get(cfg.Theme)
	if err != nil {
		return settings{}, fmt.Errorf("%w (run 'riverraid themes' to list them)", err)
	}
	th, err = th.WithGlyphs(cfg.GlyphRunes())
	if err != nil {
		return settings{}, err
	}

	return settings{cfg: cfg, theme: th, seed: resolveSeed(flagSeed)}, nil
}

// resolveSeed turns the 0 seed into a time based one.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// runtimeConfig builds the world parameters for a screen.
func (s settings) runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:     width,
		ScreenH:     height,
		Tick:        s.cfg.Tick(),
		PollTimeout: s.cfg.PollTimeout(),
		Seed:        s.seed,
		God:         flagGod,
	}
}
