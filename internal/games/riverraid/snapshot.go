package riverraid

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// Snapshot captures the game state for determinism testing and the sim command.
type Snapshot struct {
	Tick      uint64
	Status    string
	Score     uint16
	Gas       uint16
	PlayerC   int
	PlayerL   int
	Enemies   int
	Fuels     int
	Bullets   int
	TopLeft   int
	TopRight  int
	NextLeft  int
	NextRight int
	Paused    bool
}

// Snapshot returns the current game snapshot.
func (w *World) Snapshot() Snapshot {
	top := w.Corridor.Top()
	nl, nr := w.Corridor.Targets()
	return Snapshot{
		Tick:      w.Ticks,
		Status:    w.Player.Status.String(),
		Score:     w.Player.Score,
		Gas:       w.Player.Gas,
		PlayerC:   w.Player.Location.C,
		PlayerL:   w.Player.Location.L,
		Enemies:   len(w.Enemies),
		Fuels:     len(w.Fuels),
		Bullets:   len(w.Bullets),
		TopLeft:   top.Left,
		TopRight:  top.Right,
		NextLeft:  nl,
		NextRight: nr,
		Paused:    w.Paused,
	}
}

// RenderASCII draws the world with the given theme and returns it as text,
// preceded by a one-line header. Used for debugging and the sim command.
func RenderASCII(w *World, th Theme) string {
	dst := core.NewCanvas(w.MaxC, w.MaxL)
	w.Draw(dst, th)

	var sb strings.Builder
	s := w.Snapshot()
	fmt.Fprintf(&sb, "Tick: %d | Status: %s | Score: %d | Gas: %d | Enemies: %d | Fuel: %d\n",
		s.Tick, s.Status, s.Score, s.Gas, s.Enemies, s.Fuels)
	sb.WriteString(strings.Repeat("-", w.MaxC) + "\n")
	sb.WriteString(dst.String())
	sb.WriteString("\n")
	return sb.String()
}
