// Package audio plays short synthesized cues for game events.
// Audio is optional: every method is safe to call when the speaker could not
// be initialised.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-riverraid/internal/games/riverraid"
)

const sampleRate = beep.SampleRate(44100)

// Cue describes one sound effect.
type Cue struct {
	Freq     float64       // Base frequency in Hz
	Slide    float64       // Frequency change over the cue, in Hz
	Duration time.Duration // Total length
}

// cues maps step events to their sound.
var cues = map[riverraid.EventKind]Cue{
	riverraid.EventEnemyShot:     {Freq: 660, Slide: -440, Duration: 120 * time.Millisecond},
	riverraid.EventFuelShot:      {Freq: 520, Slide: -320, Duration: 160 * time.Millisecond},
	riverraid.EventFuelCollected: {Freq: 440, Slide: 440, Duration: 150 * time.Millisecond},
	riverraid.EventPlayerDied:    {Freq: 220, Slide: -180, Duration: 500 * time.Millisecond},
}

// CueFor returns the cue played for an event kind.
func CueFor(kind riverraid.EventKind) (Cue, bool) {
	c, ok := cues[kind]
	return c, ok
}

// SoundManager mixes cues onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a silent sound manager. Call Initialize to open the speaker.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues the cue for kind. Unknown kinds and an uninitialised speaker are ignored.
func (sm *SoundManager) Play(kind riverraid.EventKind) {
	cue, ok := cues[kind]
	if !ok {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	sm.mixer.Add(beep.Take(sampleRate.N(cue.Duration), NewToneGenerator(sampleRate, cue)))
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// ToneGenerator is a sine sweep with a short attack and a linear release.
type ToneGenerator struct {
	sr    beep.SampleRate
	cue   Cue
	total int
	pos   int
	phase float64
}

// NewToneGenerator creates a generator for cue at the given sample rate.
func NewToneGenerator(sr beep.SampleRate, cue Cue) *ToneGenerator {
	return &ToneGenerator{sr: sr, cue: cue, total: max(sr.N(cue.Duration), 1)}
}

// Stream fills samples; it never runs dry, beep.Take bounds its length.
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(g.sr.N(5 * time.Millisecond))
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := g.cue.Freq + g.cue.Slide*progress

		envelope := math.Min(float64(g.pos)/attack, 1) * (1 - progress)
		sample := 0.25 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (g *ToneGenerator) Err() error {
	return nil
}
