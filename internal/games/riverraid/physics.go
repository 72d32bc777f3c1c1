package riverraid

import (
	"slices"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	EventEnemyShot     EventKind = iota // A bullet destroyed an enemy
	EventFuelShot                       // A bullet destroyed a fuel tank
	EventFuelCollected                  // The player flew over a fuel tank
	EventPlayerDied                     // The player died this step
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventEnemyShot:
		return "enemy_shot"
	case EventFuelShot:
		return "fuel_shot"
	case EventFuelCollected:
		return "fuel_collected"
	case EventPlayerDied:
		return "player_died"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for sound cues and logging.
type Event struct {
	Kind EventKind
	At   core.Location
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	Events []Event
	Status PlayerStatus
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Bullet hit box: one line of tolerance above and below, none sideways.
const (
	bulletMarginTop    = 1
	bulletMarginRight  = 0
	bulletMarginBottom = 1
	bulletMarginLeft   = 0
)

// Bullets at or above this line are removed.
const bulletCeiling = 2

// Step advances the world by one tick. Nothing happens while paused.
func (w *World) Step() StepResult {
	var res StepResult
	if w.Paused {
		res.Status = w.Player.Status
		return res
	}

	w.Ticks++

	w.checkPlayer(&res)
	w.resolveEnemies(&res)
	w.resolveFuels(&res)

	w.Corridor.Scroll(w.rng)

	w.spawnEnemy()
	w.spawnFuel()

	w.moveEnemies()
	w.moveFuels()
	w.moveBullets()

	w.Player.Burn()

	if w.God && w.Player.Status.State == PlayerDead {
		w.Player.Revive()
	}

	res.Status = w.Player.Status
	return res
}

// kill marks the player dead and records the event.
func (w *World) kill(res *StepResult, cause DeathCause) {
	if w.Player.Kill(cause) {
		res.Events = append(res.Events, Event{Kind: EventPlayerDied, At: w.Player.Location})
	}
}

// checkPlayer kills the player for leaving the river or running dry.
// Ground is checked first and wins when both apply.
func (w *World) checkPlayer(res *StepResult) {
	p := w.Player.Location
	if !w.Corridor.Row(p.L).Contains(p.C) {
		w.kill(res, CauseGround)
	}
	if w.Player.Gas == 0 {
		w.kill(res, CauseFuel)
	}
}

// bulletHits counts the bullets whose hit box covers loc.
func (w *World) bulletHits(loc core.Location) int {
	hits := 0
	for _, bullet := range w.Bullets {
		if bullet.Location.HitWithMargin(loc, bulletMarginTop, bulletMarginRight, bulletMarginBottom, bulletMarginLeft) {
			hits++
		}
	}
	return hits
}

// resolveEnemies drops dead enemies, then checks the rest against the
// player and the bullets, newest enemy first.
//
// The bullet check runs whatever the enemy's status, so a wreck still in range
// of a bullet is credited again before it is dropped.
func (w *World) resolveEnemies(res *StepResult) {
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e Enemy) bool {
		return e.Status() == Dead
	})

	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := &w.Enemies[i]
		switch e.Status() {
		case Alive:
			if w.Player.Location.Hit(e.Location) {
				w.kill(res, CauseEnemy)
			}
		case DeadBody:
			e.Expire()
		}

		for n := w.bulletHits(e.Location); n > 0; n-- {
			e.Destroy()
			w.Player.AddScore(EnemyPoints)
			res.Events = append(res.Events, Event{Kind: EventEnemyShot, At: e.Location})
		}
	}
}

// resolveFuels drops spent fuel tanks, then lets the player collect them and
// the bullets destroy them. Same two-phase pattern as enemies.
func (w *World) resolveFuels(res *StepResult) {
	w.Fuels = slices.DeleteFunc(w.Fuels, func(f Fuel) bool {
		return f.Status() == Dead
	})

	for i := len(w.Fuels) - 1; i >= 0; i-- {
		f := &w.Fuels[i]
		switch f.Status() {
		case Alive:
			if w.Player.Location.Hit(f.Location) {
				f.Destroy()
				w.Player.AddGas(FuelRefill)
				res.Events = append(res.Events, Event{Kind: EventFuelCollected, At: f.Location})
			}
		case DeadBody:
			f.Expire()
		}

		for n := w.bulletHits(f.Location); n > 0; n-- {
			f.Destroy()
			w.Player.AddScore(FuelPoints)
			res.Events = append(res.Events, Event{Kind: EventFuelShot, At: f.Location})
		}
	}
}

// spawnColumn picks a column on the water of the top line.
func (w *World) spawnColumn() int {
	top := w.Corridor.Top()
	return top.Left + w.rng.Intn(top.Width())
}

// spawnEnemy maybe launches an enemy at the top of the river.
func (w *World) spawnEnemy() {
	if w.rng.Intn(100) < EnemySpawnChance {
		w.Enemies = append(w.Enemies, NewEnemy(w.spawnColumn(), 0))
	}
}

// spawnFuel maybe launches a fuel tank at the top of the river.
func (w *World) spawnFuel() {
	if w.rng.Intn(100) < FuelSpawnChance {
		w.Fuels = append(w.Fuels, NewFuel(w.spawnColumn(), 0))
	}
}

// moveEnemies drifts enemies down one line; those leaving the screen are
// removed without becoming wrecks.
func (w *World) moveEnemies() {
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e Enemy) bool {
		return e.Location.L+1 >= w.MaxL
	})
	for i := range w.Enemies {
		w.Enemies[i].Location.L++
	}
}

// moveFuels drifts fuel tanks down one line, same as enemies.
func (w *World) moveFuels() {
	w.Fuels = slices.DeleteFunc(w.Fuels, func(f Fuel) bool {
		return f.Location.L+1 >= w.MaxL
	})
	for i := range w.Fuels {
		w.Fuels[i].Location.L++
	}
}

// moveBullets climbs every bullet and removes those that are spent, near the
// top of the screen, or absorbed by a bank.
func (w *World) moveBullets() {
	w.Bullets = slices.DeleteFunc(w.Bullets, func(b Bullet) bool {
		return b.Energy == 0 || b.Location.L <= bulletCeiling
	})

	for i := range w.Bullets {
		w.Bullets[i].Location.L -= BulletSpeed
		w.Bullets[i].Energy--
	}

	w.Bullets = slices.DeleteFunc(w.Bullets, func(b Bullet) bool {
		if b.Energy == 0 || b.Location.L <= bulletCeiling {
			return true
		}
		return !w.Corridor.Row(b.Location.L).Contains(b.Location.C)
	})
}
