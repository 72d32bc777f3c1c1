package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-riverraid/internal/audio"
	"github.com/vovakirdan/tui-riverraid/internal/games/riverraid"
	"github.com/vovakirdan/tui-riverraid/internal/logging"
	"github.com/vovakirdan/tui-riverraid/internal/platform/runner"
	"github.com/vovakirdan/tui-riverraid/internal/platform/terminal"
	"github.com/vovakirdan/tui-riverraid/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of River Raid in the current terminal.

Controls:
  Up/W, Down/S      - Fly up / down
  Left/A, Right/D   - Steer
  Space             - Fire
  P                 - Pause
  Q/Ctrl+C          - Quit

Examples:
  riverraid play
  riverraid play --seed 42
  riverraid play --theme unicode --sound
  riverraid play --config ./my-riverraid.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	s, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.Open(s.cfg.Log.File, s.cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		// Continue without a log file - game still works
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}
	logger.Debug("config loaded", "source", s.cfg.Source, "theme", s.theme.Name)

	// Get terminal size early for the welcome screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	ok, err := tui.RunWelcome(width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// User pressed Ctrl+C
	if !ok {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, runErr := play(ctx, s, logger)
	// Interrupted by a signal
	if errors.Is(runErr, context.Canceled) {
		logger.Info("game interrupted", "score", res.Score, "ticks", res.Ticks)
		return
	}
	if runErr != nil {
		logger.Error("game aborted", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if err := tui.RunGoodbye(width, height, res.Status, res.Score); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play owns the terminal for the duration of one run.
func play(ctx context.Context, s settings, logger *log.Logger) (runner.Result, error) {
	t, err := terminal.Open()
	if err != nil {
		return runner.Result{}, err
	}
	defer t.Close()

	width, height := t.Size()
	cfg := s.runtimeConfig(width, height)
	world, err := riverraid.NewWorld(cfg)
	if err != nil {
		return runner.Result{}, err
	}

	opts := []runner.Option{runner.WithLogger(logger)}
	if s.cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sm.Cleanup()
			opts = append(opts, runner.WithSounds(sm))
		}
	}

	return runner.New(t, world, s.theme, cfg, opts...).Run(ctx)
}
