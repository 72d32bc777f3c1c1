package riverraid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// Theme is the set of glyphs and colors used to draw the world.
type Theme struct {
	Name       string
	Bank       core.Cell
	Player     core.Cell
	Enemy      core.Cell
	EnemyWreck core.Cell
	Fuel       core.Cell
	FuelWreck  core.Cell
	Bullet     core.Cell
	BulletTip  core.Cell
	HUD        core.Color
	Pause      core.Color
}

// ClassicTheme returns the plain ASCII look: no colors, one letter per object.
func ClassicTheme() Theme {
	return Theme{
		Name:       "classic",
		Bank:       core.Cell{Rune: '+'},
		Player:     core.Cell{Rune: 'P'},
		Enemy:      core.Cell{Rune: 'E'},
		EnemyWreck: core.Cell{Rune: 'X'},
		Fuel:       core.Cell{Rune: 'F'},
		FuelWreck:  core.Cell{Rune: '$'},
		Bullet:     core.Cell{Rune: '|'},
		BulletTip:  core.Cell{Rune: '^'},
	}
}

// glyphSlots names the theme cells that can be overridden from config.
var glyphSlots = map[string]func(*Theme) *core.Cell{
	"bank":        func(t *Theme) *core.Cell { return &t.Bank },
	"player":      func(t *Theme) *core.Cell { return &t.Player },
	"enemy":       func(t *Theme) *core.Cell { return &t.Enemy },
	"enemy_wreck": func(t *Theme) *core.Cell { return &t.EnemyWreck },
	"fuel":        func(t *Theme) *core.Cell { return &t.Fuel },
	"fuel_wreck":  func(t *Theme) *core.Cell { return &t.FuelWreck },
	"bullet":      func(t *Theme) *core.Cell { return &t.Bullet },
	"bullet_tip":  func(t *Theme) *core.Cell { return &t.BulletTip },
}

// GlyphSlots returns the overridable glyph names, sorted.
func GlyphSlots() []string {
	names := make([]string, 0, len(glyphSlots))
	for name := range glyphSlots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithGlyphs returns a copy of the theme with some glyphs replaced.
// Colors are kept.
func (t Theme) WithGlyphs(glyphs map[string]rune) (Theme, error) {
	for name, r := range glyphs {
		slot, ok := glyphSlots[name]
		if !ok {
			return t, fmt.Errorf("riverraid: unknown glyph %q (known: %s)", name, strings.Join(GlyphSlots(), ", "))
		}
		slot(&t).Rune = r
	}
	return t, nil
}

// HUD placement
const (
	hudX     = 2
	hudScore = 2
	hudFuel  = 3
	hudCount = 4
)

var pauseBox = [3]string{
	"╔═══════════╗",
	"║Game Paused║",
	"╚═══════════╝",
}

// Draw renders the world into the current frame of dst.
// The frame is cleared first; the canvas works out what actually changed.
func (w *World) Draw(dst *core.Canvas, th Theme) {
	dst.Clear()

	for l, bank := range w.Corridor.rows {
		dst.DrawHLine(0, l, bank.Left, th.Bank)
		dst.DrawHLine(bank.Right, l, w.MaxC-bank.Right, th.Bank)
	}

	dst.DrawText(hudX, hudScore, fmt.Sprintf(" Score: %d ", w.Player.Score), th.HUD)
	dst.DrawText(hudX, hudFuel, fmt.Sprintf(" Fuel: %d ", w.Player.Gas/100), th.HUD)
	dst.DrawText(hudX, hudCount, fmt.Sprintf(" Enemies: %d ", len(w.Enemies)), th.HUD)

	for _, f := range w.Fuels {
		drawEntity(dst, f.Location, f.Status(), th.Fuel, th.FuelWreck)
	}
	for _, e := range w.Enemies {
		drawEntity(dst, e.Location, e.Status(), th.Enemy, th.EnemyWreck)
	}
	for _, b := range w.Bullets {
		dst.SetCell(b.Location.C, b.Location.L, th.Bullet)
		dst.SetCell(b.Location.C, b.Location.L-1, th.BulletTip)
	}

	dst.SetCell(w.Player.Location.C, w.Player.Location.L, th.Player)
}

// drawEntity draws an enemy or fuel tank according to its lifecycle.
func drawEntity(dst *core.Canvas, loc core.Location, status EntityStatus, alive, wreck core.Cell) {
	switch status {
	case Alive:
		dst.SetCell(loc.C, loc.L, alive)
	case DeadBody:
		dst.SetCell(loc.C, loc.L, wreck)
	}
}

// DrawPause overlays the pause box on whatever the frame already holds.
func (w *World) DrawPause(dst *core.Canvas, th Theme) {
	x := w.MaxC/2 - 6
	y := w.MaxL/2 - 1
	for i, line := range pauseBox {
		dst.DrawText(x, y+i, line, th.Pause)
	}
}
