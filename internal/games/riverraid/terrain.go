package riverraid

import (
	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// Terrain generator constants
const (
	StartHalfWidth  = 5  // Initial channel is centre +/- this
	TargetHalfWidth = 7  // Initial bank targets are centre +/- this
	MinChannelWidth = 3  // Narrowest river the generator produces
	RerollWindow    = 5  // New targets are drawn within +/- this of the old one
	RerollChance    = 30 // Percent chance to re-roll a target once reached
)

// Rand is the random source used by the simulation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Bank is the navigable column range [Left, Right) of the river at one line.
type Bank struct {
	Left, Right int
}

// Contains reports whether column c is on the water.
func (b Bank) Contains(c int) bool {
	return c >= b.Left && c < b.Right
}

// Width returns the number of navigable columns.
func (b Bank) Width() int {
	return b.Right - b.Left
}

// Corridor is the scrolling river: one Bank per screen line, index 0 at the top.
// Its length always equals the screen height.
type Corridor struct {
	rows      []Bank
	maxc      int
	nextLeft  int // Column the top-left bank is walking toward
	nextRight int // Column the top-right bank is walking toward
}

// NewCorridor creates a straight channel centred on a screen of maxc x maxl.
func NewCorridor(maxc, maxl int) *Corridor {
	mid := maxc / 2
	rows := make([]Bank, maxl)
	for i := range rows {
		rows[i] = Bank{Left: mid - StartHalfWidth, Right: mid + StartHalfWidth}
	}
	return &Corridor{
		rows:      rows,
		maxc:      maxc,
		nextLeft:  mid - TargetHalfWidth,
		nextRight: mid + TargetHalfWidth,
	}
}

// Len returns the number of rows (the screen height).
func (c *Corridor) Len() int {
	return len(c.rows)
}

// Row returns the banks at line l.
// Lines outside the screen report an empty bank, so nothing is on the water there.
func (c *Corridor) Row(l int) Bank {
	if l < 0 || l >= len(c.rows) {
		return Bank{}
	}
	return c.rows[l]
}

// Top returns the banks of the top-most line.
func (c *Corridor) Top() Bank {
	return c.rows[0]
}

// Set overrides the banks at line l. Out-of-range lines are ignored.
func (c *Corridor) Set(l int, b Bank) {
	if l < 0 || l >= len(c.rows) {
		return
	}
	c.rows[l] = b
}

// Rows returns a copy of all rows, top first.
func (c *Corridor) Rows() []Bank {
	out := make([]Bank, len(c.rows))
	copy(out, c.rows)
	return out
}

// Targets returns the columns the top banks are walking toward.
func (c *Corridor) Targets() (left, right int) {
	return c.nextLeft, c.nextRight
}

// SetTargets overrides the walk targets.
func (c *Corridor) SetTargets(left, right int) {
	c.nextLeft = left
	c.nextRight = right
}

// Scroll moves the river down by one line.
// The bottom row is dropped and a new top row is derived from the old one,
// each bank stepping at most one column toward its target. A target that has
// been reached may be re-rolled; the pair is then repaired so the channel
// stays navigable.
func (c *Corridor) Scroll(rng Rand) {
	top := c.rows[0]
	left := top.Left + core.Sign(c.nextLeft-top.Left)
	right := top.Right + core.Sign(c.nextRight-top.Right)

	if left == c.nextLeft && rng.Intn(100) < RerollChance {
		c.nextLeft += rng.Intn(2*RerollWindow) - RerollWindow
		if c.nextLeft < 1 {
			c.nextLeft = 1
		}
	}

	if right == c.nextRight && rng.Intn(100) < RerollChance {
		c.nextRight += rng.Intn(2*RerollWindow) - RerollWindow
		if c.nextRight >= c.maxc {
			c.nextRight = c.maxc - 1
		}
	}

	c.repairTargets()

	copy(c.rows[1:], c.rows[:len(c.rows)-1])
	c.rows[0] = Bank{Left: left, Right: right}
}

// repairTargets widens a target channel that came out too narrow.
// The usual fix pushes the right target out; crossed targets and a right
// target pushed off screen need a harder correction.
func (c *Corridor) repairTargets() {
	if c.nextRight-c.nextLeft < MinChannelWidth {
		c.nextRight += MinChannelWidth
	}
	if c.nextRight-c.nextLeft < MinChannelWidth {
		c.nextRight = c.nextLeft + MinChannelWidth
	}
	if c.nextRight > c.maxc {
		c.nextRight = c.maxc
		c.nextLeft = min(c.nextLeft, c.maxc-MinChannelWidth)
	}
}
