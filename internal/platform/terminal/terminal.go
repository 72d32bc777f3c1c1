// Package terminal is the tcell backend of the game loop.
// It owns raw mode and the cursor, decodes key events and writes cells at
// absolute positions.
package terminal

import (
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// Terminal wraps a tcell screen.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

// Open takes over the controlling terminal.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return New(screen)
}

// New initialises screen and starts reading its events.
// Callers must Close the terminal to restore the tty.
func New(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until the screen is finalised.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// PollKey waits up to timeout for a key press. A zero timeout only looks at
// events already queued. Resize events repaint the screen and are skipped.
func (t *Terminal) PollKey(timeout time.Duration) (core.Key, bool, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	for {
		var ev tcell.Event
		if expired == nil {
			select {
			case ev = <-t.events:
			default:
				return core.KeyNone, false, nil
			}
		} else {
			select {
			case ev = <-t.events:
			case <-expired:
				return core.KeyNone, false, nil
			}
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			return DecodeKey(ev), true, nil
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventError:
			return core.KeyNone, false, ev
		}
	}
}

// DecodeKey maps a tcell key event onto the keys the game understands.
// Ctrl+C is reported as q since raw mode swallows the interrupt.
func DecodeKey(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyUp
	case tcell.KeyDown:
		return core.KeyDown
	case tcell.KeyLeft:
		return core.KeyLeft
	case tcell.KeyRight:
		return core.KeyRight
	case tcell.KeyCtrlC:
		return core.KeyQ
	case tcell.KeyRune:
		return decodeRune(ev.Rune())
	}
	return core.KeyOther
}

func decodeRune(r rune) core.Key {
	switch unicode.ToLower(r) {
	case 'w':
		return core.KeyW
	case 'a':
		return core.KeyA
	case 's':
		return core.KeyS
	case 'd':
		return core.KeyD
	case ' ':
		return core.KeySpace
	case 'p':
		return core.KeyP
	case 'q':
		return core.KeyQ
	}
	return core.KeyOther
}

// WriteCell places one cell. Cells outside the screen are clipped by tcell.
func (t *Terminal) WriteCell(x, y int, c core.Cell) error {
	t.screen.SetContent(x, y, c.Glyph(), nil, Style(c.Color))
	return nil
}

// Flush shows everything written since the last flush.
func (t *Terminal) Flush() error {
	t.screen.Show()
	return nil
}

// Size returns the screen width and height.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Close restores the terminal. Safe to call once.
func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}
