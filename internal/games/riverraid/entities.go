package riverraid

import (
	"math"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// EntityStatus is the lifecycle shared by enemies and fuel tanks.
// Entities only ever move forward: Alive -> DeadBody -> Dead.
type EntityStatus int

const (
	Alive    EntityStatus = iota // Default on spawn
	DeadBody                     // Destroyed, still drawn and collidable for one tick
	Dead                         // Dropped at the next status check
)

// String returns the status name.
func (s EntityStatus) String() string {
	switch s {
	case Alive:
		return "alive"
	case DeadBody:
		return "dead_body"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Lifecycle holds an entity status and enforces forward-only transitions.
type Lifecycle struct {
	status EntityStatus
}

// Status returns the current status.
func (l Lifecycle) Status() EntityStatus {
	return l.status
}

// Destroy flags the entity as a dead body.
// An entity already further along keeps its status.
func (l *Lifecycle) Destroy() {
	l.advanceTo(DeadBody)
}

// Expire moves a dead body to Dead.
func (l *Lifecycle) Expire() {
	if l.status == DeadBody {
		l.status = Dead
	}
}

func (l *Lifecycle) advanceTo(s EntityStatus) {
	if s > l.status {
		l.status = s
	}
}

// Enemy is a boat drifting down the river.
type Enemy struct {
	Location core.Location
	Lifecycle
}

// NewEnemy creates a live enemy at the given cell.
func NewEnemy(c, l int) Enemy {
	return Enemy{Location: core.NewLocation(c, l)}
}

// Fuel is a fuel tank drifting down the river.
type Fuel struct {
	Location core.Location
	Lifecycle
}

// NewFuel creates a live fuel tank at the given cell.
func NewFuel(c, l int) Fuel {
	return Fuel{Location: core.NewLocation(c, l)}
}

// Bullet is the player's shot. Energy is the number of moves it has left.
type Bullet struct {
	Location core.Location
	Energy   uint16
}

// NewBullet creates a bullet at the given cell.
func NewBullet(c, l int, energy uint16) Bullet {
	return Bullet{Location: core.NewLocation(c, l), Energy: energy}
}

// DeathCause tells why the player died.
type DeathCause int

const (
	CauseNone   DeathCause = iota
	CauseGround            // Left the river
	CauseEnemy             // Rammed an enemy
	CauseFuel              // Ran out of gas
)

// String returns the cause name.
func (c DeathCause) String() string {
	switch c {
	case CauseGround:
		return "ground"
	case CauseEnemy:
		return "enemy"
	case CauseFuel:
		return "fuel"
	default:
		return "none"
	}
}

// PlayerState is the player's top-level status.
type PlayerState int

const (
	PlayerAlive PlayerState = iota
	PlayerDead
	PlayerQuit
)

// String returns the state name.
func (s PlayerState) String() string {
	switch s {
	case PlayerAlive:
		return "alive"
	case PlayerDead:
		return "dead"
	case PlayerQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// PlayerStatus is Alive, Quit, or Dead with exactly one cause.
type PlayerStatus struct {
	State PlayerState
	Cause DeathCause // Set only when State is PlayerDead
}

// IsAlive reports whether the player is still flying.
func (s PlayerStatus) IsAlive() bool {
	return s.State == PlayerAlive
}

// IsTerminal reports whether the run is over.
func (s PlayerStatus) IsTerminal() bool {
	return s.State != PlayerAlive
}

// String returns a compact description, e.g. "dead(ground)".
func (s PlayerStatus) String() string {
	if s.State == PlayerDead {
		return "dead(" + s.Cause.String() + ")"
	}
	return s.State.String()
}

// Player is the plane flown by the user.
type Player struct {
	Location core.Location
	Status   PlayerStatus
	Gas      uint16 // Fuel units, drained by one per tick
	Score    uint16 // Never decreases
}

// Kill marks the player dead. Only the first cause is kept.
func (p *Player) Kill(cause DeathCause) bool {
	if !p.Status.IsAlive() {
		return false
	}
	p.Status = PlayerStatus{State: PlayerDead, Cause: cause}
	return true
}

// Quit ends the run at the user's request.
func (p *Player) Quit() {
	p.Status = PlayerStatus{State: PlayerQuit}
}

// Revive restores a dead player. Used by god mode.
func (p *Player) Revive() {
	if p.Status.State == PlayerDead {
		p.Status = PlayerStatus{State: PlayerAlive}
	}
}

// AddScore credits points, saturating at the counter limit.
func (p *Player) AddScore(points uint16) {
	p.Score = saturatingAdd(p.Score, points)
}

// AddGas refuels, saturating at the counter limit.
func (p *Player) AddGas(units uint16) {
	p.Gas = saturatingAdd(p.Gas, units)
}

// Burn drains one unit of gas, never going below zero.
func (p *Player) Burn() {
	if p.Gas > 0 {
		p.Gas--
	}
}

func saturatingAdd(a, b uint16) uint16 {
	if a > math.MaxUint16-b {
		return math.MaxUint16
	}
	return a + b
}
