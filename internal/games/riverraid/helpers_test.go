package riverraid

import (
	"testing"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// quietRand always answers n-1: no spawns, no target re-rolls.
type quietRand struct{}

func (quietRand) Intn(n int) int { return n - 1 }

// scriptRand replays fixed answers, then falls back to quietRand.
type scriptRand struct {
	values []int
}

func (r *scriptRand) Intn(n int) int {
	if len(r.values) == 0 {
		return n - 1
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

// newTestWorld creates a world that never spawns anything on its own.
func newTestWorld(t *testing.T, w, h int) *World {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.ScreenW = w
	cfg.ScreenH = h
	world, err := NewWorldWithRand(cfg, quietRand{})
	if err != nil {
		t.Fatalf("NewWorldWithRand() error = %v", err)
	}
	return world
}
