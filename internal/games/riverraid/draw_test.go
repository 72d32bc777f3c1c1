package riverraid

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

type countingWriter struct {
	n int
}

func (c *countingWriter) WriteCell(x, y int, cell core.Cell) error {
	c.n++
	return nil
}

func TestDraw(t *testing.T) {
	w := newTestWorld(t, 40, 20)
	w.Enemies = append(w.Enemies, NewEnemy(18, 6))
	wreck := NewEnemy(19, 7)
	wreck.Destroy()
	w.Enemies = append(w.Enemies, wreck)
	w.Fuels = append(w.Fuels, NewFuel(21, 8))
	w.Bullets = append(w.Bullets, NewBullet(20, 12, 5))

	dst := core.NewCanvas(w.MaxC, w.MaxL)
	w.Draw(dst, ClassicTheme())

	tests := []struct {
		name     string
		x, y     int
		expected rune
	}{
		{"left bank edge", 14, 0, '+'},
		{"first water column", 15, 0, ' '},
		{"last water column", 24, 0, ' '},
		{"right bank", 25, 0, '+'},
		{"screen edge", 39, 19, '+'},
		{"player", 20, 19, 'P'},
		{"enemy", 18, 6, 'E'},
		{"enemy wreck", 19, 7, 'X'},
		{"fuel", 21, 8, 'F'},
		{"bullet", 20, 12, '|'},
		{"bullet tip", 20, 11, '^'},
	}

	for _, tc := range tests {
		if got := dst.Get(tc.x, tc.y).Glyph(); got != tc.expected {
			t.Errorf("%s: Get(%d, %d) = %q, expected %q", tc.name, tc.x, tc.y, got, tc.expected)
		}
	}

	hud := []struct {
		line int
		text string
	}{
		{2, " Score: 0 "},
		{3, " Fuel: 17 "},
		{4, " Enemies: 2 "},
	}
	for _, h := range hud {
		if row := dst.Row(h.line); !strings.HasPrefix(row[hudX:], h.text) {
			t.Errorf("Row(%d) = %q, expected %q at column %d", h.line, row, h.text, hudX)
		}
	}
}

func TestDrawSkipsDeadEntities(t *testing.T) {
	w := newTestWorld(t, 40, 20)
	e := NewEnemy(18, 6)
	e.Destroy()
	e.Expire()
	w.Enemies = append(w.Enemies, e)

	dst := core.NewCanvas(w.MaxC, w.MaxL)
	w.Draw(dst, ClassicTheme())
	if got := dst.Get(18, 6).Glyph(); got != ' ' {
		t.Errorf("Get(18, 6) = %q, expected blank for a dead enemy", got)
	}
}

func TestDrawPause(t *testing.T) {
	w := newTestWorld(t, 40, 20)
	dst := core.NewCanvas(w.MaxC, w.MaxL)
	w.Draw(dst, ClassicTheme())
	w.DrawPause(dst, ClassicTheme())

	for i, line := range pauseBox {
		if row := []rune(dst.Row(9 + i)); string(row[14:14+len([]rune(line))]) != line {
			t.Errorf("Row(%d) = %q, expected %q at column 14", 9+i, string(row), line)
		}
	}
}

func TestRedrawOnlyPaintsChanges(t *testing.T) {
	w := newTestWorld(t, 40, 20)
	dst := core.NewCanvas(w.MaxC, w.MaxL)
	out := &countingWriter{}

	w.Draw(dst, ClassicTheme())
	if _, err := dst.Paint(out); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if out.n == 0 {
		t.Fatal("first paint wrote nothing")
	}

	out.n = 0
	w.Draw(dst, ClassicTheme())
	if n, _ := dst.Paint(out); n != 0 || out.n != 0 {
		t.Errorf("repaint of an unchanged world wrote %d cells, expected 0", out.n)
	}

	w.Apply(core.ActionLeft)
	w.Draw(dst, ClassicTheme())
	if n, _ := dst.Paint(out); n != 2 {
		t.Errorf("moving the player wrote %d cells, expected 2", n)
	}
}

func TestRenderASCII(t *testing.T) {
	w := newTestWorld(t, 40, 20)
	out := RenderASCII(w, ClassicTheme())

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 22 {
		t.Fatalf("RenderASCII() has %d lines, expected 22", len(lines))
	}
	expected := "Tick: 0 | Status: alive | Score: 0 | Gas: 1700 | Enemies: 0 | Fuel: 0"
	if lines[0] != expected {
		t.Errorf("header = %q, expected %q", lines[0], expected)
	}
	if lines[1] != strings.Repeat("-", 40) {
		t.Errorf("separator = %q", lines[1])
	}
	if !strings.Contains(lines[21], "P") {
		t.Errorf("last line = %q, expected the player", lines[21])
	}
}

func TestThemeWithGlyphs(t *testing.T) {
	base := ClassicTheme()
	base.Bank.Color = core.ColorGreen

	th, err := base.WithGlyphs(map[string]rune{"bank": '#', "bullet_tip": '*'})
	if err != nil {
		t.Fatalf("WithGlyphs() error = %v", err)
	}
	if th.Bank != (core.Cell{Rune: '#', Color: core.ColorGreen}) {
		t.Errorf("Bank = %+v, expected '#' keeping its color", th.Bank)
	}
	if th.BulletTip.Rune != '*' {
		t.Errorf("BulletTip = %q, expected '*'", th.BulletTip.Rune)
	}
	if base.Bank.Rune != '+' {
		t.Error("WithGlyphs() modified the receiver")
	}

	if _, err := base.WithGlyphs(map[string]rune{"boat": 'B'}); err == nil {
		t.Error("WithGlyphs() with an unknown slot should fail")
	}
}
