package riverraid

import (
	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// Apply turns a player intent into a state change.
// Movement and firing are ignored while paused or once the player is no longer
// alive. Returns true if the world changed.
func (w *World) Apply(a core.Action) bool {
	switch a {
	case core.ActionQuit:
		w.Player.Quit()
		return true
	case core.ActionPause:
		if w.Player.Status.IsTerminal() {
			return false
		}
		w.Paused = !w.Paused
		return true
	}

	if w.Paused || !w.Player.Status.IsAlive() {
		return false
	}

	p := &w.Player.Location
	switch a {
	case core.ActionUp:
		return step(&p.L, -1, w.MaxL)
	case core.ActionDown:
		return step(&p.L, 1, w.MaxL)
	case core.ActionLeft:
		return step(&p.C, -1, w.MaxC)
	case core.ActionRight:
		return step(&p.C, 1, w.MaxC)
	case core.ActionFire:
		return w.fire()
	}
	return false
}

// step moves a coordinate by delta if it stays within [0, limit).
func step(v *int, delta, limit int) bool {
	next := *v + delta
	if next < 0 || next >= limit {
		return false
	}
	*v = next
	return true
}

// fire launches a bullet just above the player.
// Only one bullet may be in flight.
func (w *World) fire() bool {
	p := w.Player.Location
	if len(w.Bullets) > 0 || p.L < 1 {
		return false
	}
	w.Bullets = append(w.Bullets, NewBullet(p.C, p.L-1, w.BulletEnergy()))
	return true
}
