// Package riverraid implements a River Raid-style game.
// The river scrolls toward the player, who must stay on the water, shoot
// enemies and collect fuel before the gas runs out.
package riverraid

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// Game rules
const (
	StartGas         = 1700 // Gas at the start of a run
	FuelRefill       = 200  // Gas granted by flying over a fuel tank
	EnemyPoints      = 10   // Score for shooting an enemy
	FuelPoints       = 20   // Score for shooting a fuel tank
	EnemySpawnChance = 10   // Percent chance per tick to spawn an enemy
	FuelSpawnChance  = 1    // Percent chance per tick to spawn a fuel tank
	BulletSpeed      = 2    // Lines a bullet climbs per tick
)

// Smallest screen the game can be played on.
const (
	MinScreenW = 20
	MinScreenH = 10
)

// ErrScreenTooSmall is returned when the terminal cannot fit the river.
var ErrScreenTooSmall = errors.New("riverraid: screen too small")

// World is the complete game state.
// It is owned by the game loop and mutated only by Step and Apply.
type World struct {
	MaxC, MaxL int // Screen width and height

	Player   Player
	Corridor *Corridor
	Enemies  []Enemy
	Fuels    []Fuel
	Bullets  []Bullet

	Paused bool   // Physics is frozen while set
	God    bool   // Player is revived after every step
	Ticks  uint64 // Physics steps executed

	rng Rand
}

// NewWorld creates a fresh run for the given screen, seeded from cfg.Seed.
func NewWorld(cfg core.RuntimeConfig) (*World, error) {
	return NewWorldWithRand(cfg, rand.New(rand.NewSource(cfg.Seed)))
}

// NewWorldWithRand creates a fresh run using the given random source.
func NewWorldWithRand(cfg core.RuntimeConfig, rng Rand) (*World, error) {
	if cfg.ScreenW < MinScreenW || cfg.ScreenH < MinScreenH {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrScreenTooSmall, cfg.ScreenW, cfg.ScreenH, MinScreenW, MinScreenH)
	}

	w := &World{
		MaxC:     cfg.ScreenW,
		MaxL:     cfg.ScreenH,
		Corridor: NewCorridor(cfg.ScreenW, cfg.ScreenH),
		God:      cfg.God,
		rng:      rng,
	}
	w.Player = Player{
		Location: core.NewLocation(cfg.ScreenW/2, cfg.ScreenH-1),
		Status:   PlayerStatus{State: PlayerAlive},
		Gas:      StartGas,
	}
	return w, nil
}

// BulletEnergy returns the distance budget of a new bullet.
func (w *World) BulletEnergy() uint16 {
	return uint16(w.MaxL / 4)
}
