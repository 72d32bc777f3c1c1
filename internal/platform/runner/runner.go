// Package runner drives a River Raid world at a fixed cadence over a
// terminal: poll input, step the simulation, paint the changed cells, sleep.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-riverraid/internal/core"
	"github.com/vovakirdan/tui-riverraid/internal/games/riverraid"
)

// Terminal is what the loop needs from the terminal backend.
type Terminal interface {
	core.CellWriter

	// PollKey waits up to timeout for a key event.
	// ok is false when no event arrived in time.
	PollKey(timeout time.Duration) (key core.Key, ok bool, err error)

	// Flush makes the written cells visible.
	Flush() error

	// Size returns the terminal dimensions.
	Size() (width, height int)
}

// Sounds plays a cue for a step event.
type Sounds interface {
	Play(kind riverraid.EventKind)
}

type nopSounds struct{}

func (nopSounds) Play(riverraid.EventKind) {}

// Result summarises a finished run.
type Result struct {
	Status riverraid.PlayerStatus
	Score  uint16
	Ticks  uint64
}

// Runner owns the game loop for a single run.
type Runner struct {
	term   Terminal
	world  *riverraid.World
	theme  riverraid.Theme
	cfg    core.RuntimeConfig
	canvas *core.Canvas
	log    *log.Logger
	sounds Sounds
	sleep  func(time.Duration)
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Logs are discarded by default.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithSounds routes step events to s.
func WithSounds(s Sounds) Option {
	return func(r *Runner) {
		if s != nil {
			r.sounds = s
		}
	}
}

// WithSleep replaces time.Sleep between ticks. Used by tests.
func WithSleep(f func(time.Duration)) Option {
	return func(r *Runner) {
		if f != nil {
			r.sleep = f
		}
	}
}

// New creates a runner for world.
// cfg supplies the tick period and the input poll timeout.
func New(term Terminal, world *riverraid.World, theme riverraid.Theme, cfg core.RuntimeConfig, opts ...Option) *Runner {
	r := &Runner{
		term:   term,
		world:  world,
		theme:  theme,
		cfg:    cfg,
		canvas: core.NewCanvas(world.MaxC, world.MaxL),
		log:    log.New(io.Discard),
		sounds: nopSounds{},
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run plays until the player dies or quits.
// A failed terminal write or flush aborts the tick and is returned.
// Cancelling ctx stops the loop between ticks.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	w, h := r.term.Size()
	if w < r.world.MaxC || h < r.world.MaxL {
		r.log.Warn("terminal smaller than world", "terminal", fmt.Sprintf("%dx%d", w, h),
			"world", fmt.Sprintf("%dx%d", r.world.MaxC, r.world.MaxL))
	}
	r.log.Info("game started", "width", r.world.MaxC, "height", r.world.MaxL,
		"seed", r.cfg.Seed, "god", r.world.God)

	for {
		if err := ctx.Err(); err != nil {
			return r.result(), err
		}

		if err := r.tick(); err != nil {
			r.log.Error("tick failed", "tick", r.world.Ticks, "err", err)
			return r.result(), err
		}

		if r.world.Player.Status.IsTerminal() {
			break
		}
		r.sleep(r.cfg.Tick)
	}

	res := r.result()
	r.log.Info("game over", "status", res.Status, "score", res.Score, "ticks", res.Ticks)
	return res, nil
}

// tick runs one input, physics and render pass.
func (r *Runner) tick() error {
	if err := r.handleInput(); err != nil {
		return err
	}

	r.report(r.world.Step())

	return r.render()
}

// handleInput waits briefly for a key, then drains anything else pending so
// only the most recent key is applied. A quit anywhere in the burst wins.
func (r *Runner) handleInput() error {
	key, ok, err := r.term.PollKey(r.cfg.PollTimeout)
	if err != nil {
		return fmt.Errorf("poll input: %w", err)
	}
	if !ok {
		return nil
	}

	quit := core.ActionForKey(key) == core.ActionQuit
	for {
		next, more, err := r.term.PollKey(0)
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}
		if !more {
			break
		}
		key = next
		quit = quit || core.ActionForKey(next) == core.ActionQuit
	}

	if quit {
		r.world.Apply(core.ActionQuit)
		return nil
	}

	action := core.ActionForKey(key)
	if r.world.Apply(action) && action == core.ActionPause {
		r.log.Debug("pause toggled", "paused", r.world.Paused, "tick", r.world.Ticks)
	}
	return nil
}

// report forwards step events to the sound cues and the log.
func (r *Runner) report(res riverraid.StepResult) {
	for _, e := range res.Events {
		r.sounds.Play(e.Kind)
		r.log.Debug("event", "kind", e.Kind, "c", e.At.C, "l", e.At.L, "tick", r.world.Ticks)
	}
}

// render draws the world, or the pause box over the frozen frame, and paints
// the difference.
func (r *Runner) render() error {
	if r.world.Paused {
		r.world.DrawPause(r.canvas, r.theme)
	} else {
		r.world.Draw(r.canvas, r.theme)
	}

	if _, err := r.canvas.Paint(r.term); err != nil {
		return fmt.Errorf("paint frame: %w", err)
	}
	if err := r.term.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

func (r *Runner) result() Result {
	return Result{
		Status: r.world.Player.Status,
		Score:  r.world.Player.Score,
		Ticks:  r.world.Ticks,
	}
}
